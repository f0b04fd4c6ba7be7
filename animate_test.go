package textyle

import (
	"strings"
	"testing"
	"time"
)

func collectKeys(t *testing.T, input string) []Event {
	t.Helper()
	out := make(chan Event, 32)
	done := make(chan struct{})
	defer close(done)
	go readKeys(strings.NewReader(input), out, done)

	var events []Event
	for ev := range out {
		events = append(events, ev)
	}
	return events
}

func TestReadKeys(t *testing.T) {
	t.Run("Runes", func(t *testing.T) {
		events := collectKeys(t, "ab")
		if len(events) != 2 {
			t.Fatalf("got %d events", len(events))
		}
		if events[0].Rune != 'a' || events[1].Rune != 'b' {
			t.Errorf("got %+v", events)
		}
	})

	t.Run("Utf8", func(t *testing.T) {
		events := collectKeys(t, "é")
		if len(events) != 1 || events[0].Rune != 'é' {
			t.Errorf("got %+v", events)
		}
	})

	t.Run("NamedKeys", func(t *testing.T) {
		events := collectKeys(t, "\r\t")
		if len(events) != 2 {
			t.Fatalf("got %d events", len(events))
		}
		if events[0].Name != "Enter" || events[1].Name != "Tab" {
			t.Errorf("got %+v", events)
		}
	})

	t.Run("ArrowSequence", func(t *testing.T) {
		events := collectKeys(t, "\x1b[Aq")
		if len(events) != 2 {
			t.Fatalf("got %d events: %+v", len(events), events)
		}
		if events[0].Name != "Up" || events[1].Rune != 'q' {
			t.Errorf("got %+v", events)
		}
	})

	t.Run("BareEscape", func(t *testing.T) {
		events := collectKeys(t, "\x1b")
		if len(events) != 1 || events[0].Name != "Esc" {
			t.Errorf("got %+v", events)
		}
	})
}

func TestFrameQuit(t *testing.T) {
	f := &Frame[int]{}
	if f.quit {
		t.Fatal("fresh frame already quitting")
	}
	f.Quit()
	if !f.quit {
		t.Error("Quit had no effect")
	}
}

func TestAnimatorOptions(t *testing.T) {
	layout := func(f *Frame[int]) *Layout[Frame[int], Grapheme] {
		return Textf[Frame[int]]("%d", f.State)
	}

	a := NewAnimator(layout).FPS(0)
	if a.fps != 1 {
		t.Errorf("fps = %d, want clamp to 1", a.fps)
	}

	a.FPS(60)
	if a.fps != 60 {
		t.Errorf("fps = %d", a.fps)
	}

	called := false
	a.Update(func(f *Frame[int]) { called = true })
	a.update(&Frame[int]{})
	if !called {
		t.Error("update callback not installed")
	}
}

func TestFrameLayout(t *testing.T) {
	// The frame context threads through rendering like any other Ctx.
	layout := func(f *Frame[string]) *Layout[Frame[string], Grapheme] {
		return Text[Frame[string]](f.State)
	}

	frame := &Frame[string]{State: "ok", Delta: 16 * time.Millisecond}
	surface := NewSurface[Grapheme](Size{Width: 2, Height: 1})
	if err := Render(layout(frame), surface, frame); err != nil {
		t.Fatal(err)
	}
	if got := surface.String(); got != "ok" {
		t.Errorf("got %q", got)
	}
}
