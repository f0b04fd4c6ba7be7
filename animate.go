package textyle

import (
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// EventKind distinguishes frame events.
type EventKind uint8

const (
	// EventKey is a key press forwarded from the terminal.
	EventKey EventKind = iota
	// EventResize reports a new terminal size.
	EventResize
)

// Event is an input event delivered to the frame context. the engine
// core never sees these; they exist for the host's layout and update
// callbacks.
type Event struct {
	Kind EventKind
	Rune rune   // EventKey
	Name string // EventKey: "Esc", "Enter", "Tab", ... empty for plain runes
	Size Size   // EventResize
}

// Frame is the per-frame context handed to layout callbacks when a
// tree is driven by an Animator. It carries host state plus frame
// bookkeeping, and is the Ctx type parameter of the animated tree.
type Frame[State any] struct {
	Count  int           // frames rendered so far
	Delta  time.Duration // time since the previous frame
	State  State
	Events []Event // events since the previous frame

	quit bool
}

// Quit asks the loop to stop after the current frame.
func (f *Frame[State]) Quit() {
	f.quit = true
}

// Animator drives a layout-producing callback at a fixed frame rate
// against a Screen, forwarding input and resize events through the
// frame context. Esc and Ctrl-C always stop the loop.
type Animator[State any] struct {
	layout LayoutFunc[Frame[State], Grapheme]
	update func(*Frame[State])
	fps    int
	input  io.Reader
	logger *log.Logger
}

// NewAnimator creates an animator for the given layout provider.
func NewAnimator[State any](layout LayoutFunc[Frame[State], Grapheme]) *Animator[State] {
	return &Animator[State]{
		layout: layout,
		update: func(*Frame[State]) {},
		fps:    30,
		input:  os.Stdin,
		logger: log.Default(),
	}
}

// Update sets a callback invoked before each frame is laid out.
func (a *Animator[State]) Update(fn func(*Frame[State])) *Animator[State] {
	a.update = fn
	return a
}

// FPS sets the target frame rate. Values below 1 are clamped to 1.
func (a *Animator[State]) FPS(fps int) *Animator[State] {
	if fps < 1 {
		fps = 1
	}
	a.fps = fps
	return a
}

// Input overrides the event source (defaults to os.Stdin).
func (a *Animator[State]) Input(r io.Reader) *Animator[State] {
	a.input = r
	return a
}

// Logger overrides the diagnostics logger.
func (a *Animator[State]) Logger(l *log.Logger) *Animator[State] {
	a.logger = l
	return a
}

// Run takes over the terminal and drives the loop until a frame asks
// to quit, Esc or Ctrl-C is pressed, or the input source closes. The
// terminal is restored before returning.
func (a *Animator[State]) Run(state State) error {
	screen, err := NewScreen(nil)
	if err != nil {
		return err
	}
	if err := screen.EnterRawMode(); err != nil {
		return err
	}
	defer screen.ExitRawMode()

	return a.loop(state, screen)
}

func (a *Animator[State]) loop(state State, screen *Screen) error {
	keys := make(chan Event, 16)
	done := make(chan struct{})
	defer close(done)
	go readKeys(a.input, keys, done)

	surface := NewSurface[Grapheme](screen.Size())

	frame := &Frame[State]{State: state}

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		a.update(frame)
		if frame.quit {
			return nil
		}

		frame.Delta = time.Since(last)
		last = time.Now()

		surface.Reset()
		if err := Render(a.layout(frame), surface, frame); err != nil {
			// Contract violations are host bugs; skip the frame so
			// the loop survives them.
			a.logger.Warn("frame skipped", "err", err)
		} else {
			screen.Flush(surface)
		}

		frame.Events = frame.Events[:0]
		frame.Count++

	wait:
		for {
			select {
			case <-ticker.C:
				break wait
			case size := <-screen.ResizeChan():
				surface = NewSurface[Grapheme](size)
				frame.Events = append(frame.Events, Event{Kind: EventResize, Size: size})
			case ev, ok := <-keys:
				if !ok {
					return nil
				}
				if ev.Name == "Esc" || ev.Rune == 0x03 {
					return nil
				}
				frame.Events = append(frame.Events, ev)
			}
		}
	}
}

// readKeys translates raw terminal bytes into key events. Escape
// sequences beyond a bare Esc are delivered as named arrow keys where
// recognized and dropped otherwise.
func readKeys(r io.Reader, out chan<- Event, done <-chan struct{}) {
	defer close(out)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		for i := 0; i < n; {
			b := buf[i]
			switch {
			case b == 0x1b:
				if i+2 < n && buf[i+1] == '[' {
					name := ""
					switch buf[i+2] {
					case 'A':
						name = "Up"
					case 'B':
						name = "Down"
					case 'C':
						name = "Right"
					case 'D':
						name = "Left"
					}
					i += 3
					if name == "" {
						continue
					}
					select {
					case out <- Event{Kind: EventKey, Name: name}:
					case <-done:
						return
					}
					continue
				}
				i++
				select {
				case out <- Event{Kind: EventKey, Name: "Esc"}:
				case <-done:
					return
				}
			case b == '\r' || b == '\n':
				i++
				select {
				case out <- Event{Kind: EventKey, Rune: '\n', Name: "Enter"}:
				case <-done:
					return
				}
			case b == '\t':
				i++
				select {
				case out <- Event{Kind: EventKey, Rune: '\t', Name: "Tab"}:
				case <-done:
					return
				}
			default:
				ru, size := utf8.DecodeRune(buf[i:n])
				i += size
				select {
				case out <- Event{Kind: EventKey, Rune: ru}:
				case <-done:
					return
				}
			}
		}
	}
}
