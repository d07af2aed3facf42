//go:build darwin || linux

package vlc

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// MediaList wraps a libvlc media list handle. All list state, including the
// read-only flag and the list's internal lock, lives in the engine; the
// wrapper forwards calls and maps the engine's sentinel codes to errors.
//
// Most operations require the list lock to be held (see Lock and Locked).
// This is an engine convention the wrapper does not enforce.
type MediaList struct {
	list uintptr

	evOnce sync.Once
	evm    *EventManager
	evErr  error
}

// NewMediaList creates an empty, writable media list.
func NewMediaList(inst *Instance) (*MediaList, error) {
	if inst == nil || inst.instance == 0 {
		return nil, ErrInvalidHandle
	}
	list := vlcMediaListNew(inst.instance)
	if list == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewMediaList",
			"error":    lastEngineError(),
		}).Warn("libvlc_media_list_new failed")
		return nil, ErrInvalidHandle
	}
	return &MediaList{list: list}, nil
}

// Equal reports whether both wrappers reference the identical engine list.
// Two wrappers obtained from the same underlying list compare equal even
// though they are distinct Go values.
func (l *MediaList) Equal(other *MediaList) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.list == other.list
}

// Retain increments the engine's reference count on the list.
func (l *MediaList) Retain() {
	if l.list != 0 {
		vlcMediaListRetain(l.list)
	}
}

// Release decrements the engine's reference count. Which copy releases last
// does not matter; the engine's count decides the actual teardown.
func (l *MediaList) Release() {
	if l.list != 0 {
		vlcMediaListRelease(l.list)
		l.list = 0
	}
}

// SetMedia associates a media descriptor with the list, replacing and
// releasing any previously associated one. The list lock must NOT be held
// when calling. The engine reports no status for this operation.
func (l *MediaList) SetMedia(m *Media) {
	if l.list == 0 || m == nil || m.media == 0 {
		return
	}
	vlcMediaListSetMedia(l.list, m.media)
}

// AddMedia appends a reference to the given media. The list lock must be
// held. Returns ErrMediaListReadOnly if the list cannot be mutated.
func (l *MediaList) AddMedia(m *Media) error {
	if l.list == 0 || m == nil || m.media == 0 {
		return ErrInvalidHandle
	}
	if vlcMediaListAddMedia(l.list, m.media) != 0 {
		return ErrMediaListReadOnly
	}
	return nil
}

// InsertMedia inserts a reference to the given media at a zero-based
// position. The list lock must be held. Returns ErrMediaListReadOnly if the
// list cannot be mutated.
func (l *MediaList) InsertMedia(m *Media, pos int) error {
	if l.list == 0 || m == nil || m.media == 0 {
		return ErrInvalidHandle
	}
	if vlcMediaListInsertMedia(l.list, m.media, int32(pos)) != 0 {
		return ErrMediaListReadOnly
	}
	return nil
}

// RemoveIndex removes the entry at a zero-based position. The list lock must
// be held. On failure the engine does not distinguish a read-only list from
// an out-of-range position, so both surface as ErrMediaListActionFailed.
func (l *MediaList) RemoveIndex(pos int) error {
	if l.list == 0 {
		return ErrInvalidHandle
	}
	if vlcMediaListRemoveIndex(l.list, int32(pos)) != 0 {
		return ErrMediaListActionFailed
	}
	return nil
}

// Count returns the number of items in the list. The list lock must be held
// for the value to be consistent with a following read.
func (l *MediaList) Count() int {
	if l.list == 0 {
		return 0
	}
	return int(vlcMediaListCount(l.list))
}

// ItemAtIndex returns the media at a zero-based position, or ErrMediaNotFound
// when the position is out of range. The engine retains the returned
// descriptor, so it stays valid independent of later list mutation; the
// caller owns that reference and must Release it.
func (l *MediaList) ItemAtIndex(pos int) (*Media, error) {
	if l.list == 0 {
		return nil, ErrInvalidHandle
	}
	media := vlcMediaListItemAtIndex(l.list, int32(pos))
	if media == 0 {
		return nil, ErrMediaNotFound
	}
	return &Media{media: media}, nil
}

// IndexOfItem returns the position of the first entry referencing the given
// media, or (-1, ErrMediaNotFound) when absent. For lists holding duplicate
// references only the first match is reported. The list lock must be held.
func (l *MediaList) IndexOfItem(m *Media) (int, error) {
	if l.list == 0 || m == nil || m.media == 0 {
		return -1, ErrInvalidHandle
	}
	pos := vlcMediaListIndexOfItem(l.list, m.media)
	if pos < 0 {
		return -1, ErrMediaNotFound
	}
	return int(pos), nil
}

// IsReadOnly reports whether user-level mutation of the list is disallowed,
// as for a list backed by a live discovery source.
func (l *MediaList) IsReadOnly() bool {
	if l.list == 0 {
		return true
	}
	return vlcMediaListIsReadonly(l.list) != 0
}

// Lock acquires the engine's exclusive lock over the list contents. Any
// multi-step sequence that must observe a consistent snapshot (enumeration,
// read-modify) needs the lock held around it. Every Lock must be paired with
// exactly one Unlock on all exit paths; prefer Locked for that.
func (l *MediaList) Lock() {
	if l.list != 0 {
		vlcMediaListLock(l.list)
	}
}

// Unlock releases the engine's list lock. The lock must be held.
func (l *MediaList) Unlock() {
	if l.list != 0 {
		vlcMediaListUnlock(l.list)
	}
}

// Locked runs fn with the list lock held and guarantees the unlock on every
// exit path, including a panic inside fn. The error from fn is returned
// unchanged.
func (l *MediaList) Locked(fn func() error) error {
	l.Lock()
	defer l.Unlock()
	return fn()
}

// EventManager returns the list's notification channel, constructing the
// wrapper on first access and returning the same instance thereafter. The
// engine-side manager is immutable, so the lock need not be held. First
// access from concurrent goroutines is safe.
func (l *MediaList) EventManager() (*EventManager, error) {
	l.evOnce.Do(func() {
		if l.list == 0 {
			l.evErr = ErrInvalidHandle
			return
		}
		manager := vlcMediaListEventManager(l.list)
		if manager == 0 {
			l.evErr = ErrInvalidHandle
			return
		}
		l.evm = &EventManager{manager: manager}
	})
	return l.evm, l.evErr
}
