//go:build darwin || linux

// C string helpers shared by the libvlc bindings.

package vlc

import "unsafe"

// maxCStringLen bounds the scan for a NUL terminator so a corrupt pointer
// cannot walk arbitrary memory. MRLs and metadata values fit well below this.
const maxCStringLen = 4096

// goStringFromPtr copies a NUL-terminated C string into a Go string.
func goStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	var length int
	for {
		if *(*byte)(unsafe.Pointer(uintptr(p) + uintptr(length))) == 0 {
			break
		}
		length++
		if length > maxCStringLen {
			break
		}
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), length))
}

// goStringFromOwnedPtr copies an engine-allocated string and releases it with
// libvlc_free. Used for accessors like libvlc_media_get_mrl that transfer
// ownership of the buffer to the caller.
func goStringFromOwnedPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := goStringFromPtr(ptr)
	vlcFree(ptr)
	return s
}

// cStringArray builds a NUL-terminated copy of each argument plus an array of
// pointers to them, suitable for passing as a C char** for the duration of a
// single call. The backing slice must be kept alive across the call.
func cStringArray(args []string) ([][]byte, []uintptr) {
	if len(args) == 0 {
		return nil, nil
	}
	bufs := make([][]byte, len(args))
	ptrs := make([]uintptr, len(args))
	for i, arg := range args {
		buf := make([]byte, len(arg)+1)
		copy(buf, arg)
		bufs[i] = buf
		ptrs[i] = uintptr(unsafe.Pointer(&buf[0]))
	}
	return bufs, ptrs
}
