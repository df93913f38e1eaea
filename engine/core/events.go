package core

import "sync"

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x04
	// A watched asset changed on disk. Data: *AssetEvent
	EVENT_CODE_ASSET_CHANGED EventCode = 0x05

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type AssetEvent struct {
	Path string
}

// Should return true if handled, which stops propagation to later listeners.
type FnOnEvent func(context EventContext) bool

type eventSystemState struct {
	mu         sync.RWMutex
	registered [MAX_EVENT_CODE + 1][]FnOnEvent
}

var eventState *eventSystemState

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{}
	return true
}

func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister appends a listener for the given code. Listeners are invoked
// in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil || code > MAX_EVENT_CODE || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire dispatches synchronously on the calling goroutine.
func EventFire(context EventContext) bool {
	if eventState == nil || context.Type > MAX_EVENT_CODE {
		return false
	}
	eventState.mu.RLock()
	listeners := append([]FnOnEvent(nil), eventState.registered[context.Type]...)
	eventState.mu.RUnlock()

	for _, l := range listeners {
		if l(context) {
			return true
		}
	}
	return false
}
