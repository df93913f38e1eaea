package core

import (
	"io"
	"testing"
	"time"
)

func init() {
	SetLogOutput(io.Discard)
}

func TestClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := &Clock{now: func() time.Time { return now }}

	c.Update()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() on non-started clock = %v, want 0", c.Elapsed())
	}

	c.Start()
	now = base.Add(1500 * time.Millisecond)
	c.Update()
	if c.Elapsed() != 1.5 {
		t.Errorf("Elapsed() = %v, want 1.5", c.Elapsed())
	}

	c.Stop()
	now = base.Add(5 * time.Second)
	c.Update()
	if c.Elapsed() != 1.5 {
		t.Errorf("Elapsed() after Stop = %v, want 1.5", c.Elapsed())
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 61; i++ {
		m.Update(1.0 / 60.0)
	}
	if ft := m.FrameTime(); ft < 16.6 || ft > 16.7 {
		t.Errorf("FrameTime() = %v, want ~16.67", ft)
	}
	if fps := m.FPS(); fps < 59 || fps > 61 {
		t.Errorf("FPS() = %v, want ~60", fps)
	}
}

func TestEventFire(t *testing.T) {
	EventSystemShutdown()
	if !EventSystemInitialize() {
		t.Fatal("EventSystemInitialize() = false")
	}
	defer EventSystemShutdown()

	var order []int
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) bool {
		order = append(order, 1)
		return false
	})
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) bool {
		order = append(order, 2)
		return true
	})
	EventRegister(EVENT_CODE_APPLICATION_QUIT, func(EventContext) bool {
		order = append(order, 3)
		return false
	})

	if !EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}) {
		t.Error("EventFire() = false, want handled")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listeners ran %v, want [1 2]", order)
	}
	if EventFire(EventContext{Type: EVENT_CODE_RESIZED}) {
		t.Error("EventFire() with no listeners = true")
	}
}

func TestInputProcessKey(t *testing.T) {
	EventSystemShutdown()
	EventSystemInitialize()
	defer EventSystemShutdown()
	if err := InputInitialize(); err != nil {
		t.Fatal(err)
	}
	defer InputShutdown()

	var pressed, released int
	EventRegister(EVENT_CODE_KEY_PRESSED, func(ctx EventContext) bool {
		if ke, ok := ctx.Data.(*KeyEvent); ok && ke.KeyCode == KEY_ESCAPE {
			pressed++
		}
		return true
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, func(EventContext) bool {
		released++
		return true
	})

	InputProcessKey(KEY_ESCAPE, true)
	InputProcessKey(KEY_ESCAPE, true)
	if pressed != 1 {
		t.Errorf("pressed events = %d, want 1", pressed)
	}
	if !InputIsKeyDown(KEY_ESCAPE) || InputWasKeyDown(KEY_ESCAPE) {
		t.Error("unexpected key state before InputUpdate")
	}
	InputUpdate(0)
	if !InputWasKeyDown(KEY_ESCAPE) {
		t.Error("InputWasKeyDown() = false after InputUpdate")
	}
	InputProcessKey(KEY_ESCAPE, false)
	if released != 1 {
		t.Errorf("released events = %d, want 1", released)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"", InfoLevel, false},
		{"debug", DebugLevel, false},
		{"WARN", WarnLevel, false},
		{"nope", InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
