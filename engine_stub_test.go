//go:build darwin || linux

package vlc

import (
	"sync"
	"testing"
	"unsafe"
)

// The binding forwards every call through package-level function variables,
// so tests can point those at an in-memory engine that mimics libvlc's
// media-list semantics: reference counting, read-only lists, the list lock,
// sentinel status codes, and item-added/-deleted notifications. This tests
// the wrapper contract without a VLC install; nothing here reimplements the
// engine for production use.

type stubMedia struct {
	refs int
	mrl  string
	subs uintptr // lazily created sub-item list
}

type stubList struct {
	refs     int
	items    []uintptr
	readonly bool
	backing  uintptr
	manager  uintptr
	lock     sync.Mutex
}

type stubSub struct {
	eventType EventType
}

type stubManager struct {
	subs map[uintptr]stubSub
}

type stubPlayer struct {
	list    uintptr
	current int
	playing bool
}

type stubEngine struct {
	mu       sync.Mutex
	nextPtr  uintptr
	media    map[uintptr]*stubMedia
	lists    map[uintptr]*stubList
	managers map[uintptr]*stubManager
	players  map[uintptr]*stubPlayer
	instance uintptr
}

func (e *stubEngine) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextPtr = 0x1000
	e.media = make(map[uintptr]*stubMedia)
	e.lists = make(map[uintptr]*stubList)
	e.managers = make(map[uintptr]*stubManager)
	e.players = make(map[uintptr]*stubPlayer)
	e.instance = 0
}

func (e *stubEngine) alloc() uintptr {
	ptr := e.nextPtr
	e.nextPtr += 0x10
	return ptr
}

func (e *stubEngine) newMedia(mrl string) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	ptr := e.alloc()
	e.media[ptr] = &stubMedia{refs: 1, mrl: mrl}
	return ptr
}

func (e *stubEngine) newList(readonly bool) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newListLocked(readonly)
}

func (e *stubEngine) newListLocked(readonly bool) uintptr {
	ptr := e.alloc()
	manager := e.alloc()
	e.lists[ptr] = &stubList{refs: 1, readonly: readonly, manager: manager}
	e.managers[manager] = &stubManager{subs: make(map[uintptr]stubSub)}
	return ptr
}

// notify dispatches an event to every matching subscription outside the
// engine mutex, mirroring libvlc delivering from its own thread.
func (e *stubEngine) notify(manager uintptr, eventType EventType, item uintptr, index int) {
	e.mu.Lock()
	m := e.managers[manager]
	var ids []uintptr
	if m != nil {
		for id, sub := range m.subs {
			if sub.eventType == eventType {
				ids = append(ids, id)
			}
		}
	}
	e.mu.Unlock()

	for _, id := range ids {
		ce := cEvent{
			etype: int32(eventType),
			obj:   manager,
			u:     [2]uintptr{item, uintptr(uint32(index))},
		}
		dispatchEvent(uintptr(unsafe.Pointer(&ce)), id)
	}
}

var (
	testEngine     = &stubEngine{}
	testEngineOnce sync.Once
)

// installStubEngine wires the package symbol table to the in-memory engine
// and resets its state. Stub tests must not run in parallel: the symbol
// table is package-global.
func installStubEngine(t *testing.T) *stubEngine {
	t.Helper()
	testEngineOnce.Do(wireStubEngine)
	testEngine.reset()
	return testEngine
}

func wireStubEngine() {
	e := testEngine

	// The loader must never run; mark it complete and available.
	libvlcOnce.Do(func() {})
	libvlcInitErr = nil
	libvlcLoaded = true

	vlcNew = func(argc int32, argv uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.instance = e.alloc()
		return e.instance
	}
	vlcRelease = func(instance uintptr) {}
	vlcRetain = func(instance uintptr) {}
	vlcGetVersion = func() uintptr { return 0 }
	vlcErrmsg = func() uintptr { return 0 }
	vlcFree = func(ptr uintptr) {}

	vlcMediaNewPath = func(_ uintptr, path string) uintptr { return e.newMedia(path) }
	vlcMediaNewLocation = func(_ uintptr, mrl string) uintptr { return e.newMedia(mrl) }
	vlcMediaRetain = func(media uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if m := e.media[media]; m != nil {
			m.refs++
		}
	}
	vlcMediaRelease = func(media uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		m := e.media[media]
		if m == nil {
			return
		}
		m.refs--
		if m.refs <= 0 {
			delete(e.media, media)
		}
	}
	vlcMediaGetMRL = func(media uintptr) uintptr { return 0 }
	vlcMediaGetDuration = func(media uintptr) int64 { return -1 }
	vlcMediaGetMeta = func(media uintptr, meta int32) uintptr { return 0 }
	vlcMediaGetState = func(media uintptr) int32 { return int32(StateNothingSpecial) }
	vlcMediaSubitems = func(media uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		m := e.media[media]
		if m == nil {
			return 0
		}
		if m.subs == 0 {
			m.subs = e.newListLocked(true)
		}
		e.lists[m.subs].refs++
		return m.subs
	}
	vlcMediaEventManager = func(media uintptr) uintptr { return 0 }

	vlcMediaListNew = func(_ uintptr) uintptr { return e.newList(false) }
	vlcMediaListRetain = func(list uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if l := e.lists[list]; l != nil {
			l.refs++
		}
	}
	vlcMediaListRelease = func(list uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil {
			return
		}
		l.refs--
		if l.refs <= 0 {
			for _, item := range l.items {
				if m := e.media[item]; m != nil {
					m.refs--
					if m.refs <= 0 {
						delete(e.media, item)
					}
				}
			}
			delete(e.managers, l.manager)
			delete(e.lists, list)
		}
	}
	vlcMediaListSetMedia = func(list, media uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil {
			return
		}
		if prev := e.media[l.backing]; prev != nil {
			prev.refs--
		}
		l.backing = media
		if m := e.media[media]; m != nil {
			m.refs++
		}
	}
	vlcMediaListAddMedia = func(list, media uintptr) int32 {
		e.mu.Lock()
		l := e.lists[list]
		if l == nil || l.readonly {
			e.mu.Unlock()
			return -1
		}
		l.items = append(l.items, media)
		if m := e.media[media]; m != nil {
			m.refs++
		}
		index := len(l.items) - 1
		manager := l.manager
		e.mu.Unlock()
		e.notify(manager, MediaListItemAdded, media, index)
		return 0
	}
	vlcMediaListInsertMedia = func(list, media uintptr, pos int32) int32 {
		e.mu.Lock()
		l := e.lists[list]
		if l == nil || l.readonly || pos < 0 || int(pos) > len(l.items) {
			e.mu.Unlock()
			return -1
		}
		l.items = append(l.items, 0)
		copy(l.items[pos+1:], l.items[pos:])
		l.items[pos] = media
		if m := e.media[media]; m != nil {
			m.refs++
		}
		manager := l.manager
		e.mu.Unlock()
		e.notify(manager, MediaListItemAdded, media, int(pos))
		return 0
	}
	vlcMediaListRemoveIndex = func(list uintptr, pos int32) int32 {
		e.mu.Lock()
		l := e.lists[list]
		if l == nil || l.readonly || pos < 0 || int(pos) >= len(l.items) {
			e.mu.Unlock()
			return -1
		}
		item := l.items[pos]
		l.items = append(l.items[:pos], l.items[pos+1:]...)
		if m := e.media[item]; m != nil {
			m.refs--
			if m.refs <= 0 {
				delete(e.media, item)
			}
		}
		manager := l.manager
		e.mu.Unlock()
		e.notify(manager, MediaListItemDeleted, item, int(pos))
		return 0
	}
	vlcMediaListCount = func(list uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil {
			return 0
		}
		return int32(len(l.items))
	}
	vlcMediaListItemAtIndex = func(list uintptr, pos int32) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil || pos < 0 || int(pos) >= len(l.items) {
			return 0
		}
		item := l.items[pos]
		if m := e.media[item]; m != nil {
			m.refs++
		}
		return item
	}
	vlcMediaListIndexOfItem = func(list, media uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil {
			return -1
		}
		for i, item := range l.items {
			if item == media {
				return int32(i)
			}
		}
		return -1
	}
	vlcMediaListIsReadonly = func(list uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l != nil && l.readonly {
			return 1
		}
		return 0
	}
	vlcMediaListLock = func(list uintptr) {
		e.mu.Lock()
		l := e.lists[list]
		e.mu.Unlock()
		if l != nil {
			l.lock.Lock()
		}
	}
	vlcMediaListUnlock = func(list uintptr) {
		e.mu.Lock()
		l := e.lists[list]
		e.mu.Unlock()
		if l != nil {
			l.lock.Unlock()
		}
	}
	vlcMediaListEventManager = func(list uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		l := e.lists[list]
		if l == nil {
			return 0
		}
		return l.manager
	}

	vlcDiscovererNew = func(_ uintptr, name string) uintptr {
		if name == "" {
			return 0
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		// A discoverer handle doubling as the key to its read-only list.
		ptr := e.alloc()
		e.lists[ptr] = &stubList{refs: 1, readonly: true, manager: e.alloc()}
		e.managers[e.lists[ptr].manager] = &stubManager{subs: make(map[uintptr]stubSub)}
		return ptr
	}
	vlcDiscovererStart = func(discoverer uintptr) int32 { return 0 }
	vlcDiscovererStop = func(discoverer uintptr) {}
	vlcDiscovererIsRunning = func(discoverer uintptr) int32 { return 0 }
	vlcDiscovererRelease = func(discoverer uintptr) {}
	vlcDiscovererMediaList = func(discoverer uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		if l := e.lists[discoverer]; l != nil {
			l.refs++
			return discoverer
		}
		return 0
	}

	vlcLibraryNew = func(_ uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		ptr := e.alloc()
		e.lists[ptr] = &stubList{refs: 1, manager: e.alloc()}
		e.managers[e.lists[ptr].manager] = &stubManager{subs: make(map[uintptr]stubSub)}
		return ptr
	}
	vlcLibraryLoad = func(library uintptr) int32 { return 0 }
	vlcLibraryRetain = func(library uintptr) {}
	vlcLibraryRelease = func(library uintptr) {}
	vlcLibraryMediaList = func(library uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		if l := e.lists[library]; l != nil {
			l.refs++
			return library
		}
		return 0
	}

	vlcEventAttach = func(manager uintptr, eventType int32, callback uintptr, userData uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		m := e.managers[manager]
		if m == nil {
			return -1
		}
		m.subs[userData] = stubSub{eventType: EventType(eventType)}
		return 0
	}
	vlcEventDetach = func(manager uintptr, eventType int32, callback uintptr, userData uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if m := e.managers[manager]; m != nil {
			delete(m.subs, userData)
		}
	}
	vlcEventTypeName = func(eventType int32) uintptr { return 0 }

	vlcListPlayerNew = func(_ uintptr) uintptr {
		e.mu.Lock()
		defer e.mu.Unlock()
		ptr := e.alloc()
		e.players[ptr] = &stubPlayer{current: -1}
		return ptr
	}
	vlcListPlayerRetain = func(player uintptr) {}
	vlcListPlayerRelease = func(player uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.players, player)
	}
	vlcListPlayerSetMediaList = func(player, list uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if p := e.players[player]; p != nil {
			p.list = list
		}
	}
	vlcListPlayerPlay = func(player uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		p := e.players[player]
		if p == nil {
			return
		}
		if l := e.lists[p.list]; l != nil && len(l.items) > 0 {
			if p.current < 0 {
				p.current = 0
			}
			p.playing = true
		}
	}
	vlcListPlayerStop = func(player uintptr) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if p := e.players[player]; p != nil {
			p.playing = false
			p.current = -1
		}
	}
	vlcListPlayerPlayItemAtIndex = func(player uintptr, pos int32) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		p := e.players[player]
		if p == nil {
			return -1
		}
		l := e.lists[p.list]
		if l == nil || pos < 0 || int(pos) >= len(l.items) {
			return -1
		}
		p.current = int(pos)
		p.playing = true
		return 0
	}
	vlcListPlayerNext = func(player uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		p := e.players[player]
		if p == nil {
			return -1
		}
		l := e.lists[p.list]
		if l == nil || p.current+1 >= len(l.items) {
			return -1
		}
		p.current++
		p.playing = true
		return 0
	}
	vlcListPlayerPrevious = func(player uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		p := e.players[player]
		if p == nil {
			return -1
		}
		if l := e.lists[p.list]; l == nil || p.current <= 0 {
			return -1
		}
		p.current--
		p.playing = true
		return 0
	}
	vlcListPlayerIsPlaying = func(player uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		if p := e.players[player]; p != nil && p.playing {
			return 1
		}
		return 0
	}
	vlcListPlayerGetState = func(player uintptr) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		if p := e.players[player]; p != nil && p.playing {
			return int32(StatePlaying)
		}
		return int32(StateStopped)
	}
	vlcListPlayerSetPlaybackMode = func(player uintptr, mode int32) {}
	vlcListPlayerEventManager = func(player uintptr) uintptr { return 0 }
}

// mediaRefs reports the engine refcount of a media handle, 0 if freed.
func (e *stubEngine) mediaRefs(media uintptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if m := e.media[media]; m != nil {
		return m.refs
	}
	return 0
}

// listRefs reports the engine refcount of a list handle, 0 if freed.
func (e *stubEngine) listRefs(list uintptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if l := e.lists[list]; l != nil {
		return l.refs
	}
	return 0
}
