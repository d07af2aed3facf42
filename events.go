//go:build darwin || linux

// Event subscription bridging.
//
// libvlc delivers events by invoking a C function pointer with an event
// struct and a user-data pointer. A single purego trampoline serves every
// subscription; the user-data pointer carries a registry id (see handles.go)
// that resolves back to the Go callback. Callbacks run on an engine thread,
// not on a goroutine owned by the caller.

package vlc

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// EventType mirrors libvlc_event_e for the objects bound by this package.
type EventType int32

const (
	// Media events
	MediaMetaChanged     EventType = 0
	MediaSubItemAdded    EventType = 1
	MediaDurationChanged EventType = 2
	MediaParsedChanged   EventType = 3
	MediaFreed           EventType = 4
	MediaStateChanged    EventType = 5

	// Media list events
	MediaListItemAdded      EventType = 0x200
	MediaListWillAddItem    EventType = 0x201
	MediaListItemDeleted    EventType = 0x202
	MediaListWillDeleteItem EventType = 0x203
	MediaListEndReached     EventType = 0x204

	// Media list player events
	MediaListPlayerPlayed      EventType = 0x400
	MediaListPlayerNextItemSet EventType = 0x401
	MediaListPlayerStopped     EventType = 0x402

	// Media discoverer events
	MediaDiscovererStarted EventType = 0x500
	MediaDiscovererEnded   EventType = 0x501
)

// Event is the decoded payload delivered to an EventCallback.
type Event struct {
	// Type identifies the event.
	Type EventType

	// Media is the affected descriptor for list and sub-item events, nil
	// for events without one. The handle is only guaranteed valid for the
	// duration of the callback; Retain it to keep it longer.
	Media *Media

	// Index is the list position for media list events, -1 otherwise.
	Index int
}

// EventCallback receives decoded events. It is invoked on an engine thread
// and must not block; in particular it must not take the list lock of the
// list that emitted the event.
type EventCallback func(Event)

// EventID identifies one attached subscription.
type EventID uintptr

// EventManager wraps a libvlc event manager handle. Managers are owned by
// the engine object they belong to and live exactly as long as it does.
type EventManager struct {
	manager uintptr
}

type eventRegistration struct {
	manager   uintptr
	eventType EventType
	callback  EventCallback
}

// cEvent mirrors the head of libvlc_event_t: the type tag, the emitting
// object, and the payload union. Two pointer-sized words cover every union
// variant decoded here.
type cEvent struct {
	etype int32
	obj   uintptr
	u     [2]uintptr
}

var (
	trampolineOnce sync.Once
	trampolinePtr  uintptr
)

// eventTrampoline returns the shared C callback pointer, creating it on
// first use. One trampoline serves all subscriptions so the process never
// exhausts purego's callback slots.
func eventTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampolinePtr = purego.NewCallback(dispatchEvent)
	})
	return trampolinePtr
}

// dispatchEvent is the trampoline body: resolve the registration by its
// user-data id and deliver the decoded event.
func dispatchEvent(event uintptr, userData uintptr) {
	reg, ok := lookupHandle(userData).(*eventRegistration)
	if !ok {
		// Detached between engine dispatch and delivery.
		return
	}
	reg.callback(decodeEvent(event))
}

func decodeEvent(ptr uintptr) Event {
	ce := (*cEvent)(unsafe.Pointer(ptr))
	ev := Event{Type: EventType(ce.etype), Index: -1}
	switch ev.Type {
	case MediaListItemAdded, MediaListWillAddItem, MediaListItemDeleted, MediaListWillDeleteItem:
		if ce.u[0] != 0 {
			ev.Media = &Media{media: ce.u[0]}
		}
		ev.Index = int(int32(ce.u[1]))
	case MediaSubItemAdded, MediaListPlayerNextItemSet:
		if ce.u[0] != 0 {
			ev.Media = &Media{media: ce.u[0]}
		}
	}
	return ev
}

// Attach subscribes cb to one event type and returns the subscription id.
func (em *EventManager) Attach(eventType EventType, cb EventCallback) (EventID, error) {
	if em == nil || em.manager == 0 {
		return 0, ErrInvalidHandle
	}
	if cb == nil {
		return 0, ErrEventAttachFailed
	}

	id := registerHandle(&eventRegistration{
		manager:   em.manager,
		eventType: eventType,
		callback:  cb,
	})
	if vlcEventAttach(em.manager, int32(eventType), eventTrampoline(), id) != 0 {
		unregisterHandle(id)
		logrus.WithFields(logrus.Fields{
			"function":   "Attach",
			"event_type": eventType,
		}).Warn("libvlc_event_attach failed")
		return 0, ErrEventAttachFailed
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Attach",
		"event_type": eventType,
		"event_id":   id,
	}).Debug("event subscription attached")
	return EventID(id), nil
}

// Detach cancels a subscription. Detaching an unknown or already-detached id
// is a no-op.
func (em *EventManager) Detach(id EventID) {
	reg, ok := lookupHandle(uintptr(id)).(*eventRegistration)
	if !ok {
		return
	}
	vlcEventDetach(reg.manager, int32(reg.eventType), eventTrampoline(), uintptr(id))
	unregisterHandle(uintptr(id))

	logrus.WithFields(logrus.Fields{
		"function": "Detach",
		"event_id": id,
	}).Debug("event subscription detached")
}

// EventTypeName returns the engine's name for an event type, e.g.
// "MediaListItemAdded", or "" when the engine is not loaded.
func EventTypeName(eventType EventType) string {
	if !libvlcLoaded {
		return ""
	}
	return goStringFromPtr(vlcEventTypeName(int32(eventType)))
}
