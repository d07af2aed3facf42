//go:build darwin || linux

package vlc

import (
	"runtime"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Instance wraps a libvlc instance handle. Every other object in this package
// is created from one. The zero value is not usable; construct with New.
type Instance struct {
	instance uintptr
}

// New creates a libvlc instance. Optional args are passed to the engine
// verbatim, the same flags the vlc binary accepts (e.g. "--no-video").
func New(args ...string) (*Instance, error) {
	if err := loadLibVLC(); err != nil {
		return nil, ErrEngineNotLoaded
	}

	var argv uintptr
	bufs, ptrs := cStringArray(args)
	if len(ptrs) > 0 {
		argv = uintptr(unsafe.Pointer(&ptrs[0]))
	}

	instance := vlcNew(int32(len(args)), argv)
	runtime.KeepAlive(bufs)
	runtime.KeepAlive(ptrs)
	if instance == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"args":     args,
		}).Warn("libvlc_new failed")
		return nil, ErrInvalidHandle
	}

	return &Instance{instance: instance}, nil
}

// Retain increments the engine's reference count on the instance.
func (i *Instance) Retain() {
	if i.instance != 0 {
		vlcRetain(i.instance)
	}
}

// Release decrements the engine's reference count. The engine frees the
// instance when the count reaches zero; the wrapper must not be used after
// its own Release.
func (i *Instance) Release() {
	if i.instance != 0 {
		vlcRelease(i.instance)
		i.instance = 0
	}
}

// LastError returns the engine's thread-local error message, or "" when no
// error is pending.
func (i *Instance) LastError() string {
	ptr := vlcErrmsg()
	if ptr == 0 {
		return ""
	}
	return goStringFromPtr(ptr)
}
