// Package vlc provides Go bindings for the libvlc media-list surface, loaded
// dynamically at runtime.
//
// Key pieces include:
//   - Instance: the engine handle every other object is created from
//   - Media: reference-counted media descriptors
//   - MediaList: the list-of-media abstraction with lock-guarded access
//   - MediaDiscoverer / MediaLibrary: sources of engine-populated lists
//   - MediaListPlayer: playback across a MediaList
//   - EventManager: subscriptions to engine notifications
//
// # Native Library
//
// Bindings load libvlc with purego (CGO_ENABLED=0); no C toolchain is needed.
// The library is resolved from the usual system locations, or set VLC_LIB_PATH
// to point at it directly. If the engine needs help finding its plugin
// directory, set VLC_PLUGIN_PATH before creating an Instance. IsAvailable
// reports whether loading succeeded.
//
// # Ownership
//
// libvlc reference-counts its objects. Wrapper types hold one engine
// reference and expose Retain/Release; the engine frees the object when the
// last reference anywhere is dropped, so release order across copies does not
// matter. Two wrappers referencing the same engine object compare equal by
// handle identity via their Equal methods.
//
// # Locking
//
// A MediaList carries an engine-side exclusive lock. The engine convention,
// preserved here, is that the caller holds the lock around any multi-step
// sequence that must see a consistent snapshot:
//
//	err := list.Locked(func() error {
//		for i := 0; i < list.Count(); i++ {
//			item, err := list.ItemAtIndex(i)
//			...
//		}
//		return nil
//	})
//
// SetMedia is the exception: the lock must NOT be held when calling it.
//
// # Errors
//
// The engine reports failure through sentinel codes. These map to sentinel
// errors (ErrMediaListReadOnly, ErrMediaNotFound, ...) matched with
// errors.Is; see errors.go for the taxonomy.
package vlc
