// Sentinel errors for the libvlc bindings.
//
// libvlc reports failure through sentinel return values (-1 status codes and
// NULL pointers). Each engine status maps to exactly one of these errors so
// callers can match with errors.Is. Where the engine conflates two causes in
// one code (remove on a read-only list vs. remove of a missing index) the
// conflation is preserved rather than guessed apart.

package vlc

import "errors"

var (
	// ErrEngineNotLoaded is returned when libvlc could not be loaded.
	ErrEngineNotLoaded = errors.New("libvlc not available")

	// ErrInvalidHandle is returned when an engine factory yields a NULL
	// handle, or an operation is attempted on a released wrapper.
	ErrInvalidHandle = errors.New("invalid libvlc handle")

	// ErrMediaListReadOnly is returned by mutations on a read-only media
	// list (for example one backed by a live discovery source).
	ErrMediaListReadOnly = errors.New("media list is read-only")

	// ErrMediaListActionFailed is returned by RemoveIndex when the engine
	// reports failure. The engine does not distinguish a read-only list
	// from an out-of-range index here.
	ErrMediaListActionFailed = errors.New("media list action failed")

	// ErrMediaNotFound is returned when an index is out of range or an
	// item is not present in the list.
	ErrMediaNotFound = errors.New("media not found in list")

	// ErrEventAttachFailed is returned when the engine rejects an event
	// subscription.
	ErrEventAttachFailed = errors.New("event attach failed")
)
