package textyle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
)

// Screen owns the real terminal: raw mode, the alternate buffer, and
// double-buffered diff flushing of grapheme surfaces. It is a driver
// collaborator of the engine, not part of the layout core — the core
// never performs I/O.
type Screen struct {
	front  *Surface[Grapheme] // What's currently displayed
	writer io.Writer          // Output destination (usually os.Stdout)
	fd     int                // File descriptor for terminal operations

	width  int
	height int

	// Terminal state
	origTermios *unix.Termios
	inRawMode   bool

	// Resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	// Rendering state
	lastStyle Style        // Last style we emitted (for optimization)
	buf       bytes.Buffer // Reusable buffer for building output

	// Protects buffers against the asynchronous resize signal.
	mu sync.Mutex
}

// NewScreen creates a screen writing to the given writer. Pass nil to
// use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := terminalSize(fd)
	if err != nil {
		// Default fallback
		width, height = 80, 24
	}

	return &Screen{
		front:      NewSurface[Grapheme](Size{Width: width, Height: height}),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}, nil
}

// terminalSize returns the current terminal dimensions.
func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Size{Width: s.width, Height: s.height}
}

// ResizeChan returns a channel that receives size updates on terminal
// resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode for full-screen
// operation: alternate buffer, hidden cursor, resize notifications.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	s.inRawMode = true

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")     // Clear screen (front buffer matches actual screen)
	s.writeString("\x1b[H")      // Move cursor to home position
	s.writeString("\x1b[?25l")   // Hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")   // Show cursor
	s.writeString("\x1b[?1049l") // Exit alternate screen

	signal.Stop(s.sigChan)

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals processes resize signals.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := terminalSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(Size{Width: width, Height: height})
			// Drop stale content so the next flush repaints fully.
			s.front.Reset()
			s.writeString("\x1b[2J")
			s.mu.Unlock()
			// Non-blocking send (outside lock to avoid potential deadlock)
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// Flush writes a frame to the terminal using a per-cell diff against
// what is already displayed. Only cells that actually changed are
// written, with cursor positioning per run. The frame should match
// the screen size; anything outside is ignored.
func (s *Screen) Flush(frame *Surface[Grapheme]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()

	changed := 0
	cursorX, cursorY := -1, -1

	height := s.height
	if frame.Height() < height {
		height = frame.Height()
	}
	width := s.width
	if frame.Width() < width {
		width = frame.Width()
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := frame.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			changed++

			// Position cursor if not already there
			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				s.writeIntToBuf(y + 1)
				s.buf.WriteByte(';')
				s.writeIntToBuf(x + 1)
				s.buf.WriteByte('H')
			}

			s.writeCell(&s.buf, cell)
			s.front.Write(cell, x, y)

			// Cursor advances by the display width of the cluster.
			rw := runewidth.StringWidth(cell.String())
			if rw == 0 {
				rw = 1 // zero-width clusters still advance the cursor
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed > 0 {
		s.buf.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
	}

	if s.buf.Len() > 0 {
		s.writer.Write(s.buf.Bytes())
	}
}

// FlushFull does a complete redraw without diffing.
func (s *Screen) FlushFull(frame *Surface[Grapheme]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.buf.WriteString("\x1b[2J\x1b[H")

	height := s.height
	if frame.Height() < height {
		height = frame.Height()
	}
	width := s.width
	if frame.Width() < width {
		width = frame.Width()
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := frame.Get(x, y)
			s.writeCell(&s.buf, cell)
			s.front.Write(cell, x, y)
		}
		if y < height-1 {
			s.buf.WriteString("\r\n")
		}
	}

	s.buf.WriteString("\x1b[0m")
	s.lastStyle = DefaultStyle()

	s.writer.Write(s.buf.Bytes())
}

// writeCell writes a cell's style and cluster to the buffer.
func (s *Screen) writeCell(buf *bytes.Buffer, cell Grapheme) {
	// Only emit style changes
	if cell.Style != s.lastStyle {
		s.writeStyle(buf, cell.Style)
		s.lastStyle = cell.Style
	}
	buf.WriteString(cell.String())
}

// writeStyle writes ANSI escape codes for the given style.
func (s *Screen) writeStyle(buf *bytes.Buffer, style Style) {
	// Reset first if we need to turn off attributes
	buf.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		buf.WriteString(";4")
	}
	if style.Attr.Has(AttrBlink) {
		buf.WriteString(";5")
	}
	if style.Attr.Has(AttrInverse) {
		buf.WriteString(";7")
	}
	if style.Attr.Has(AttrStrikethrough) {
		buf.WriteString(";9")
	}

	s.writeColor(buf, style.FG, true)
	s.writeColor(buf, style.BG, false)

	buf.WriteString("m")
}

// writeColor writes the ANSI escape code for a color.
func (s *Screen) writeColor(buf *bytes.Buffer, c Color, fg bool) {
	switch c.Mode {
	case ColorUnset:
		if fg {
			buf.WriteString(";39")
		} else {
			buf.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			// Bright colors
			base += 60
			buf.WriteByte(';')
			s.writeIntToBuf(base + int(c.Index-8))
		} else {
			buf.WriteByte(';')
			s.writeIntToBuf(base + int(c.Index))
		}
	case Color256:
		if fg {
			buf.WriteString(";38;5;")
		} else {
			buf.WriteString(";48;5;")
		}
		s.writeIntToBuf(int(c.Index))
	case ColorRGB:
		if fg {
			buf.WriteString(";38;2;")
		} else {
			buf.WriteString(";48;2;")
		}
		s.writeIntToBuf(int(c.R))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.G))
		buf.WriteByte(';')
		s.writeIntToBuf(int(c.B))
	}
}

// writeIntToBuf writes an integer to the buffer without allocation.
func (s *Screen) writeIntToBuf(n int) {
	if n == 0 {
		s.buf.WriteByte('0')
		return
	}
	if n < 0 {
		s.buf.WriteByte('-')
		n = -n
	}

	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	s.buf.Write(scratch[i:])
}

// writeString is a helper to write a string directly to the terminal.
func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}
