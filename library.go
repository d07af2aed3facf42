//go:build darwin || linux

package vlc

import "github.com/sirupsen/logrus"

// MediaLibrary wraps a libvlc media library handle, the engine's persistent
// collection of known media.
type MediaLibrary struct {
	library uintptr
}

// NewMediaLibrary creates a media library bound to the instance. Call Load
// before reading its list.
func NewMediaLibrary(inst *Instance) (*MediaLibrary, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	library := vlcLibraryNew(inst.instance)
	if library == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaLibrary",
			"error":    lastEngineError(),
		}).Warn("libvlc_media_library_new failed")
		return nil, ErrInvalidHandle
	}
	return &MediaLibrary{library: library}, nil
}

// Load populates the library from the engine's backing store.
func (ml *MediaLibrary) Load() error {
	if ml.library == 0 {
		return ErrInvalidHandle
	}
	if vlcLibraryLoad(ml.library) != 0 {
		return ErrInvalidHandle
	}
	return nil
}

// Retain increments the engine's reference count on the library.
func (ml *MediaLibrary) Retain() {
	if ml.library != 0 {
		vlcLibraryRetain(ml.library)
	}
}

// Release decrements the engine's reference count.
func (ml *MediaLibrary) Release() {
	if ml.library != 0 {
		vlcLibraryRelease(ml.library)
		ml.library = 0
	}
}

// MediaList returns the library's item list. The returned list holds its own
// engine reference and must be released.
func (ml *MediaLibrary) MediaList() (*MediaList, error) {
	if ml.library == 0 {
		return nil, ErrInvalidHandle
	}
	list := vlcLibraryMediaList(ml.library)
	if list == 0 {
		return nil, ErrInvalidHandle
	}
	return &MediaList{list: list}, nil
}
