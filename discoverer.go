//go:build darwin || linux

package vlc

import "github.com/sirupsen/logrus"

// MediaDiscoverer wraps a libvlc media discoverer handle. A discoverer scans
// a service (mDNS renderers, UPnP servers, disc drives) and publishes what it
// finds through a read-only media list.
type MediaDiscoverer struct {
	discoverer uintptr
}

// NewMediaDiscoverer creates a discoverer for the named service, e.g.
// "upnp". The discoverer does nothing until Start is called.
func NewMediaDiscoverer(inst *Instance, name string) (*MediaDiscoverer, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	discoverer := vlcDiscovererNew(inst.instance, name)
	if discoverer == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaDiscoverer",
			"name":     name,
			"error":    lastEngineError(),
		}).Warn("libvlc_media_discoverer_new failed")
		return nil, ErrInvalidHandle
	}
	return &MediaDiscoverer{discoverer: discoverer}, nil
}

// Start begins scanning. Items appear in the discoverer's media list as the
// engine finds them; subscribe to the list's event manager to observe them.
func (d *MediaDiscoverer) Start() error {
	if d.discoverer == 0 {
		return ErrInvalidHandle
	}
	if vlcDiscovererStart(d.discoverer) != 0 {
		return ErrInvalidHandle
	}
	return nil
}

// Stop ends scanning. The media list keeps the items found so far.
func (d *MediaDiscoverer) Stop() {
	if d.discoverer != 0 {
		vlcDiscovererStop(d.discoverer)
	}
}

// IsRunning reports whether the discoverer is currently scanning.
func (d *MediaDiscoverer) IsRunning() bool {
	if d.discoverer == 0 {
		return false
	}
	return vlcDiscovererIsRunning(d.discoverer) != 0
}

// Release drops the wrapper's engine reference. The discoverer must be
// stopped first.
func (d *MediaDiscoverer) Release() {
	if d.discoverer != 0 {
		vlcDiscovererRelease(d.discoverer)
		d.discoverer = 0
	}
}

// MediaList returns the discoverer's list of found items. The list is
// read-only: user-level mutation fails with ErrMediaListReadOnly. The
// returned list holds its own engine reference and must be released.
func (d *MediaDiscoverer) MediaList() (*MediaList, error) {
	if d.discoverer == 0 {
		return nil, ErrInvalidHandle
	}
	list := vlcDiscovererMediaList(d.discoverer)
	if list == 0 {
		return nil, ErrInvalidHandle
	}
	return &MediaList{list: list}, nil
}
