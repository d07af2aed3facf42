//go:build darwin || linux

package vlc

import (
	"time"

	"github.com/sirupsen/logrus"
)

// MetaKey identifies a media metadata field (libvlc_meta_t).
type MetaKey int32

const (
	MetaTitle MetaKey = iota
	MetaArtist
	MetaGenre
	MetaCopyright
	MetaAlbum
	MetaTrackNumber
	MetaDescription
	MetaRating
	MetaDate
	MetaSetting
	MetaURL
	MetaLanguage
	MetaNowPlaying
	MetaPublisher
	MetaEncodedBy
	MetaArtworkURL
	MetaTrackID
)

// MediaState mirrors libvlc_state_t.
type MediaState int32

const (
	StateNothingSpecial MediaState = iota
	StateOpening
	StateBuffering
	StatePlaying
	StatePaused
	StateStopped
	StateEnded
	StateError
)

func (s MediaState) String() string {
	switch s {
	case StateNothingSpecial:
		return "idle"
	case StateOpening:
		return "opening"
	case StateBuffering:
		return "buffering"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateEnded:
		return "ended"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Media wraps a libvlc media descriptor handle. The engine reference-counts
// the descriptor; the wrapper only forwards Retain/Release.
type Media struct {
	media uintptr
}

// NewMediaFromPath creates a media descriptor for a local file path.
func NewMediaFromPath(inst *Instance, path string) (*Media, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	media := vlcMediaNewPath(inst.instance, path)
	if media == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaFromPath",
			"path":     path,
			"error":    lastEngineError(),
		}).Warn("libvlc_media_new_path failed")
		return nil, ErrInvalidHandle
	}
	return &Media{media: media}, nil
}

// NewMediaFromURL creates a media descriptor for an MRL such as
// "https://host/stream" or "file:///tmp/a.mp3".
func NewMediaFromURL(inst *Instance, mrl string) (*Media, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	media := vlcMediaNewLocation(inst.instance, mrl)
	if media == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaFromURL",
			"mrl":      mrl,
			"error":    lastEngineError(),
		}).Warn("libvlc_media_new_location failed")
		return nil, ErrInvalidHandle
	}
	return &Media{media: media}, nil
}

// Equal reports whether both wrappers reference the identical engine
// descriptor. This is handle identity, not content comparison.
func (m *Media) Equal(other *Media) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.media == other.media
}

// Retain increments the engine's reference count on the descriptor.
func (m *Media) Retain() {
	if m.media != 0 {
		vlcMediaRetain(m.media)
	}
}

// Release decrements the engine's reference count. The descriptor is freed by
// the engine once all references are dropped.
func (m *Media) Release() {
	if m.media != 0 {
		vlcMediaRelease(m.media)
		m.media = 0
	}
}

// MRL returns the media resource locator of the descriptor.
func (m *Media) MRL() string {
	if m.media == 0 {
		return ""
	}
	return goStringFromOwnedPtr(vlcMediaGetMRL(m.media))
}

// Duration returns the media duration, or 0 when not yet known. The engine
// only knows the duration after the media has been parsed or played.
func (m *Media) Duration() time.Duration {
	if m.media == 0 {
		return 0
	}
	ms := vlcMediaGetDuration(m.media)
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Meta returns the value of a metadata field, or "" when unset.
func (m *Media) Meta(key MetaKey) string {
	if m.media == 0 {
		return ""
	}
	return goStringFromOwnedPtr(vlcMediaGetMeta(m.media, int32(key)))
}

// State returns the current engine state of the media.
func (m *Media) State() MediaState {
	if m.media == 0 {
		return StateNothingSpecial
	}
	return MediaState(vlcMediaGetState(m.media))
}

// SubItems returns the media's sub-item list. For container media (a playlist
// file, a stream with variants) the engine populates this list after parsing.
// The returned list holds its own engine reference and must be released.
func (m *Media) SubItems() (*MediaList, error) {
	if m.media == 0 {
		return nil, ErrInvalidHandle
	}
	list := vlcMediaSubitems(m.media)
	if list == 0 {
		return nil, ErrInvalidHandle
	}
	return &MediaList{list: list}, nil
}

// EventManager returns the notification channel for this descriptor. The
// manager is owned by the engine and lives as long as the media does.
func (m *Media) EventManager() (*EventManager, error) {
	if m.media == 0 {
		return nil, ErrInvalidHandle
	}
	manager := vlcMediaEventManager(m.media)
	if manager == 0 {
		return nil, ErrInvalidHandle
	}
	return &EventManager{manager: manager}, nil
}
