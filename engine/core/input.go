package core

import "sync"

type KeyCode uint16

const (
	KEY_UNKNOWN KeyCode = 0x00
	KEY_ENTER   KeyCode = 0x0D
	KEY_ESCAPE  KeyCode = 0x1B
	KEY_SPACE   KeyCode = 0x20
	KEY_F       KeyCode = 0x46
	KEY_L       KeyCode = 0x4C
	KEY_P       KeyCode = 0x50
	KEY_R       KeyCode = 0x52

	KEYS_MAX_KEYS KeyCode = 0xFF
)

type KeyboardState struct {
	Keys [KEYS_MAX_KEYS + 1]bool
}

// Input state structure that holds current and previous keyboard states
type InputState struct {
	mu               sync.Mutex
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
}

var inputState *InputState

func InputInitialize() error {
	inputState = &InputState{}
	LogDebug("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputState = nil
	return nil
}

// InputUpdate copies current states to previous states. Call once per frame,
// after everything that reads input.
func InputUpdate(deltaTime float64) {
	if inputState == nil {
		return
	}
	inputState.mu.Lock()
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	inputState.mu.Unlock()
}

func InputIsKeyDown(key KeyCode) bool {
	if inputState == nil || key > KEYS_MAX_KEYS {
		return false
	}
	inputState.mu.Lock()
	defer inputState.mu.Unlock()
	return inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	if inputState == nil || key > KEYS_MAX_KEYS {
		return false
	}
	inputState.mu.Lock()
	defer inputState.mu.Unlock()
	return inputState.KeyboardPrevious.Keys[key]
}

// InputProcessKey records the key state and fires a press/release event
// when the state changed.
func InputProcessKey(key KeyCode, pressed bool) {
	if inputState == nil || key > KEYS_MAX_KEYS {
		return
	}
	inputState.mu.Lock()
	changed := inputState.KeyboardCurrent.Keys[key] != pressed
	inputState.KeyboardCurrent.Keys[key] = pressed
	inputState.mu.Unlock()
	if !changed {
		return
	}

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{KeyCode: key},
	})
}
