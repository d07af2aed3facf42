//go:build darwin || linux

// libvlc runtime loading via purego.
//
// The engine is loaded once with Dlopen and every libvlc entry point used by
// this package is registered into a package-level function variable. All
// wrapper types forward through these variables, so the whole binding shares a
// single symbol table.

package vlc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

var (
	libvlcOnce    sync.Once
	libvlcHandle  uintptr
	libvlcInitErr error
	libvlcLoaded  bool
)

// Core functions.
var (
	vlcNew        func(argc int32, argv uintptr) uintptr
	vlcRelease    func(instance uintptr)
	vlcRetain     func(instance uintptr)
	vlcGetVersion func() uintptr
	vlcErrmsg     func() uintptr
	vlcFree       func(ptr uintptr)
)

// Media functions.
var (
	vlcMediaNewPath      func(instance uintptr, path string) uintptr
	vlcMediaNewLocation  func(instance uintptr, mrl string) uintptr
	vlcMediaRetain       func(media uintptr)
	vlcMediaRelease      func(media uintptr)
	vlcMediaGetMRL       func(media uintptr) uintptr
	vlcMediaGetDuration  func(media uintptr) int64
	vlcMediaGetMeta      func(media uintptr, meta int32) uintptr
	vlcMediaGetState     func(media uintptr) int32
	vlcMediaSubitems     func(media uintptr) uintptr
	vlcMediaEventManager func(media uintptr) uintptr
)

// Media list functions.
var (
	vlcMediaListNew          func(instance uintptr) uintptr
	vlcMediaListRetain       func(list uintptr)
	vlcMediaListRelease      func(list uintptr)
	vlcMediaListSetMedia     func(list, media uintptr)
	vlcMediaListAddMedia     func(list, media uintptr) int32
	vlcMediaListInsertMedia  func(list, media uintptr, pos int32) int32
	vlcMediaListRemoveIndex  func(list uintptr, pos int32) int32
	vlcMediaListCount        func(list uintptr) int32
	vlcMediaListItemAtIndex  func(list uintptr, pos int32) uintptr
	vlcMediaListIndexOfItem  func(list, media uintptr) int32
	vlcMediaListIsReadonly   func(list uintptr) int32
	vlcMediaListLock         func(list uintptr)
	vlcMediaListUnlock       func(list uintptr)
	vlcMediaListEventManager func(list uintptr) uintptr
)

// Media discoverer functions.
var (
	vlcDiscovererNew       func(instance uintptr, name string) uintptr
	vlcDiscovererStart     func(discoverer uintptr) int32
	vlcDiscovererStop      func(discoverer uintptr)
	vlcDiscovererIsRunning func(discoverer uintptr) int32
	vlcDiscovererRelease   func(discoverer uintptr)
	vlcDiscovererMediaList func(discoverer uintptr) uintptr
)

// Media library functions.
var (
	vlcLibraryNew       func(instance uintptr) uintptr
	vlcLibraryLoad      func(library uintptr) int32
	vlcLibraryRetain    func(library uintptr)
	vlcLibraryRelease   func(library uintptr)
	vlcLibraryMediaList func(library uintptr) uintptr
)

// Event functions.
var (
	vlcEventAttach   func(manager uintptr, eventType int32, callback uintptr, userData uintptr) int32
	vlcEventDetach   func(manager uintptr, eventType int32, callback uintptr, userData uintptr)
	vlcEventTypeName func(eventType int32) uintptr
)

// Media list player functions.
var (
	vlcListPlayerNew             func(instance uintptr) uintptr
	vlcListPlayerRetain          func(player uintptr)
	vlcListPlayerRelease         func(player uintptr)
	vlcListPlayerSetMediaList    func(player, list uintptr)
	vlcListPlayerPlay            func(player uintptr)
	vlcListPlayerStop            func(player uintptr)
	vlcListPlayerPlayItemAtIndex func(player uintptr, pos int32) int32
	vlcListPlayerNext            func(player uintptr) int32
	vlcListPlayerPrevious        func(player uintptr) int32
	vlcListPlayerIsPlaying       func(player uintptr) int32
	vlcListPlayerGetState        func(player uintptr) int32
	vlcListPlayerSetPlaybackMode func(player uintptr, mode int32)
	vlcListPlayerEventManager    func(player uintptr) uintptr
)

// loadLibVLC loads the libvlc shared library exactly once.
func loadLibVLC() error {
	libvlcOnce.Do(func() {
		libvlcInitErr = loadLibVLCLib()
		if libvlcInitErr == nil {
			libvlcLoaded = true
		}
	})
	return libvlcInitErr
}

func loadLibVLCLib() error {
	paths := getLibVLCPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			libvlcHandle = handle
			registerLibVLCSymbols()
			logrus.WithFields(logrus.Fields{
				"function": "loadLibVLCLib",
				"path":     path,
			}).Debug("libvlc loaded")
			return nil
		}
		lastErr = err
	}

	logrus.WithFields(logrus.Fields{
		"function": "loadLibVLCLib",
		"tried":    len(paths),
		"error":    lastErr,
	}).Warn("libvlc not found")

	if lastErr != nil {
		return fmt.Errorf("failed to load libvlc: %w", lastErr)
	}
	return errors.New("libvlc not found in any standard location")
}

func getLibVLCPaths() []string {
	var paths []string

	libName := "libvlc.so"
	if runtime.GOOS == "darwin" {
		libName = "libvlc.dylib"
	}

	// Environment variable overrides
	if envPath := os.Getenv("VLC_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath, filepath.Join(envPath, libName))
	}

	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"libvlc.dylib",
			"/Applications/VLC.app/Contents/MacOS/lib/libvlc.dylib",
			"/usr/local/lib/libvlc.dylib",
			"/opt/homebrew/lib/libvlc.dylib",
		)
	case "linux":
		paths = append(paths,
			"libvlc.so.5",
			"libvlc.so",
			"/usr/lib/libvlc.so.5",
			"/usr/local/lib/libvlc.so.5",
			"/usr/lib/x86_64-linux-gnu/libvlc.so.5",
			"/usr/lib/aarch64-linux-gnu/libvlc.so.5",
		)
	}

	return paths
}

func registerLibVLCSymbols() {
	// Core
	purego.RegisterLibFunc(&vlcNew, libvlcHandle, "libvlc_new")
	purego.RegisterLibFunc(&vlcRelease, libvlcHandle, "libvlc_release")
	purego.RegisterLibFunc(&vlcRetain, libvlcHandle, "libvlc_retain")
	purego.RegisterLibFunc(&vlcGetVersion, libvlcHandle, "libvlc_get_version")
	purego.RegisterLibFunc(&vlcErrmsg, libvlcHandle, "libvlc_errmsg")
	purego.RegisterLibFunc(&vlcFree, libvlcHandle, "libvlc_free")

	// Media
	purego.RegisterLibFunc(&vlcMediaNewPath, libvlcHandle, "libvlc_media_new_path")
	purego.RegisterLibFunc(&vlcMediaNewLocation, libvlcHandle, "libvlc_media_new_location")
	purego.RegisterLibFunc(&vlcMediaRetain, libvlcHandle, "libvlc_media_retain")
	purego.RegisterLibFunc(&vlcMediaRelease, libvlcHandle, "libvlc_media_release")
	purego.RegisterLibFunc(&vlcMediaGetMRL, libvlcHandle, "libvlc_media_get_mrl")
	purego.RegisterLibFunc(&vlcMediaGetDuration, libvlcHandle, "libvlc_media_get_duration")
	purego.RegisterLibFunc(&vlcMediaGetMeta, libvlcHandle, "libvlc_media_get_meta")
	purego.RegisterLibFunc(&vlcMediaGetState, libvlcHandle, "libvlc_media_get_state")
	purego.RegisterLibFunc(&vlcMediaSubitems, libvlcHandle, "libvlc_media_subitems")
	purego.RegisterLibFunc(&vlcMediaEventManager, libvlcHandle, "libvlc_media_event_manager")

	// Media list
	purego.RegisterLibFunc(&vlcMediaListNew, libvlcHandle, "libvlc_media_list_new")
	purego.RegisterLibFunc(&vlcMediaListRetain, libvlcHandle, "libvlc_media_list_retain")
	purego.RegisterLibFunc(&vlcMediaListRelease, libvlcHandle, "libvlc_media_list_release")
	purego.RegisterLibFunc(&vlcMediaListSetMedia, libvlcHandle, "libvlc_media_list_set_media")
	purego.RegisterLibFunc(&vlcMediaListAddMedia, libvlcHandle, "libvlc_media_list_add_media")
	purego.RegisterLibFunc(&vlcMediaListInsertMedia, libvlcHandle, "libvlc_media_list_insert_media")
	purego.RegisterLibFunc(&vlcMediaListRemoveIndex, libvlcHandle, "libvlc_media_list_remove_index")
	purego.RegisterLibFunc(&vlcMediaListCount, libvlcHandle, "libvlc_media_list_count")
	purego.RegisterLibFunc(&vlcMediaListItemAtIndex, libvlcHandle, "libvlc_media_list_item_at_index")
	purego.RegisterLibFunc(&vlcMediaListIndexOfItem, libvlcHandle, "libvlc_media_list_index_of_item")
	purego.RegisterLibFunc(&vlcMediaListIsReadonly, libvlcHandle, "libvlc_media_list_is_readonly")
	purego.RegisterLibFunc(&vlcMediaListLock, libvlcHandle, "libvlc_media_list_lock")
	purego.RegisterLibFunc(&vlcMediaListUnlock, libvlcHandle, "libvlc_media_list_unlock")
	purego.RegisterLibFunc(&vlcMediaListEventManager, libvlcHandle, "libvlc_media_list_event_manager")

	// Media discoverer
	purego.RegisterLibFunc(&vlcDiscovererNew, libvlcHandle, "libvlc_media_discoverer_new")
	purego.RegisterLibFunc(&vlcDiscovererStart, libvlcHandle, "libvlc_media_discoverer_start")
	purego.RegisterLibFunc(&vlcDiscovererStop, libvlcHandle, "libvlc_media_discoverer_stop")
	purego.RegisterLibFunc(&vlcDiscovererIsRunning, libvlcHandle, "libvlc_media_discoverer_is_running")
	purego.RegisterLibFunc(&vlcDiscovererRelease, libvlcHandle, "libvlc_media_discoverer_release")
	purego.RegisterLibFunc(&vlcDiscovererMediaList, libvlcHandle, "libvlc_media_discoverer_media_list")

	// Media library
	purego.RegisterLibFunc(&vlcLibraryNew, libvlcHandle, "libvlc_media_library_new")
	purego.RegisterLibFunc(&vlcLibraryLoad, libvlcHandle, "libvlc_media_library_load")
	purego.RegisterLibFunc(&vlcLibraryRetain, libvlcHandle, "libvlc_media_library_retain")
	purego.RegisterLibFunc(&vlcLibraryRelease, libvlcHandle, "libvlc_media_library_release")
	purego.RegisterLibFunc(&vlcLibraryMediaList, libvlcHandle, "libvlc_media_library_media_list")

	// Events
	purego.RegisterLibFunc(&vlcEventAttach, libvlcHandle, "libvlc_event_attach")
	purego.RegisterLibFunc(&vlcEventDetach, libvlcHandle, "libvlc_event_detach")
	purego.RegisterLibFunc(&vlcEventTypeName, libvlcHandle, "libvlc_event_type_name")

	// Media list player
	purego.RegisterLibFunc(&vlcListPlayerNew, libvlcHandle, "libvlc_media_list_player_new")
	purego.RegisterLibFunc(&vlcListPlayerRetain, libvlcHandle, "libvlc_media_list_player_retain")
	purego.RegisterLibFunc(&vlcListPlayerRelease, libvlcHandle, "libvlc_media_list_player_release")
	purego.RegisterLibFunc(&vlcListPlayerSetMediaList, libvlcHandle, "libvlc_media_list_player_set_media_list")
	purego.RegisterLibFunc(&vlcListPlayerPlay, libvlcHandle, "libvlc_media_list_player_play")
	purego.RegisterLibFunc(&vlcListPlayerStop, libvlcHandle, "libvlc_media_list_player_stop")
	purego.RegisterLibFunc(&vlcListPlayerPlayItemAtIndex, libvlcHandle, "libvlc_media_list_player_play_item_at_index")
	purego.RegisterLibFunc(&vlcListPlayerNext, libvlcHandle, "libvlc_media_list_player_next")
	purego.RegisterLibFunc(&vlcListPlayerPrevious, libvlcHandle, "libvlc_media_list_player_previous")
	purego.RegisterLibFunc(&vlcListPlayerIsPlaying, libvlcHandle, "libvlc_media_list_player_is_playing")
	purego.RegisterLibFunc(&vlcListPlayerGetState, libvlcHandle, "libvlc_media_list_player_get_state")
	purego.RegisterLibFunc(&vlcListPlayerSetPlaybackMode, libvlcHandle, "libvlc_media_list_player_set_playback_mode")
	purego.RegisterLibFunc(&vlcListPlayerEventManager, libvlcHandle, "libvlc_media_list_player_event_manager")
}

// IsAvailable checks if libvlc can be loaded.
func IsAvailable() bool {
	if err := loadLibVLC(); err != nil {
		return false
	}
	return libvlcLoaded
}

// EngineVersion returns the libvlc version string, e.g. "3.0.20 Vetinari".
func EngineVersion() string {
	if !IsAvailable() {
		return ""
	}
	return goStringFromPtr(vlcGetVersion())
}

// lastEngineError returns libvlc's thread-local error message, if any.
func lastEngineError() string {
	ptr := vlcErrmsg()
	if ptr == 0 {
		return "unknown error"
	}
	return goStringFromPtr(ptr)
}
