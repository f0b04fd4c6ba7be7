package textyle

import "strings"

// Surface is a mutable 2D buffer of cells, the final rendering target
// for one frame. It is the only component in the engine that performs
// bounds-checked, side-effecting mutation; everything upstream is
// pure tree transformation.
type Surface[C Cell] struct {
	size  Size
	cells []C
}

// NewSurface creates a surface of blank (zero value) cells.
func NewSurface[C Cell](size Size) *Surface[C] {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return &Surface[C]{
		size:  size,
		cells: make([]C, size.Width*size.Height),
	}
}

// Size returns the surface dimensions.
func (s *Surface[C]) Size() Size {
	return s.size
}

// Width returns the surface width.
func (s *Surface[C]) Width() int {
	return s.size.Width
}

// Height returns the surface height.
func (s *Surface[C]) Height() int {
	return s.size.Height
}

// Bounds returns the surface rectangle at the origin.
func (s *Surface[C]) Bounds() Rect {
	return s.size.Rect()
}

// InBounds returns true if the given coordinates are on the surface.
func (s *Surface[C]) InBounds(x, y int) bool {
	return x >= 0 && x < s.size.Width && y >= 0 && y < s.size.Height
}

// index converts x,y coordinates to a slice index.
func (s *Surface[C]) index(x, y int) int {
	return y*s.size.Width + x
}

// Get returns the cell at the given coordinates, or the blank cell if
// out of bounds.
func (s *Surface[C]) Get(x, y int) C {
	if !s.InBounds(x, y) {
		var blank C
		return blank
	}
	return s.cells[s.index(x, y)]
}

// Write sets the cell at the given coordinates. Does nothing if out
// of bounds.
func (s *Surface[C]) Write(c C, x, y int) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[s.index(x, y)] = c
}

// FillRect fills a rectangular region with the given cell, clipped to
// the surface.
func (s *Surface[C]) FillRect(bounds Rect, c C) {
	for y := bounds.Y; y < bounds.MaxY(); y++ {
		if y < 0 || y >= s.size.Height {
			continue
		}
		for x := bounds.X; x < bounds.MaxX(); x++ {
			if x < 0 || x >= s.size.Width {
				continue
			}
			s.cells[s.index(x, y)] = c
		}
	}
}

// StrokeRect draws filled strips of the given thickness along the
// selected edges of the rectangle, clipped to the surface.
func (s *Surface[C]) StrokeRect(bounds Rect, thickness int, c C, edges Edges) {
	if edges.Has(EdgeTop) {
		s.FillRect(NewRect(bounds.X, bounds.Y, bounds.Width, thickness), c)
	}
	if edges.Has(EdgeRight) {
		s.FillRect(NewRect(bounds.MaxX()-thickness, bounds.Y, thickness, bounds.Height), c)
	}
	if edges.Has(EdgeBottom) {
		s.FillRect(NewRect(bounds.X, bounds.MaxY()-thickness, bounds.Width, thickness), c)
	}
	if edges.Has(EdgeLeft) {
		s.FillRect(NewRect(bounds.X, bounds.Y, thickness, bounds.Height), c)
	}
}

// Clear fills the whole surface with the given cell.
func (s *Surface[C]) Clear(c C) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Reset restores every cell to the blank value.
func (s *Surface[C]) Reset() {
	var blank C
	s.Clear(blank)
}

// Paste composites another surface at the given bounds. The source
// size must equal the bounds size; anything else is a contract
// violation, never a silent truncation. Transparent source cells are
// skipped so whatever is underneath shows through.
func (s *Surface[C]) Paste(other *Surface[C], bounds Rect) error {
	if other.size != bounds.Size() {
		return &ContractError{Op: "paste", Err: ErrPasteSize, Bounds: bounds, Got: other.size}
	}
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			c := other.Get(x, y)
			if c.Transparent() {
				continue
			}
			s.Write(c, bounds.X+x, bounds.Y+y)
		}
	}
	return nil
}

// Apply executes a draw-command list in order.
func (s *Surface[C]) Apply(commands []DrawCommand[C]) {
	for _, cmd := range commands {
		switch cmd.Kind {
		case CommandText:
			for dy, row := range cmd.Lines {
				for dx, c := range row {
					if c.Transparent() {
						continue
					}
					s.Write(c, cmd.Bounds.X+dx, cmd.Bounds.Y+dy)
				}
			}
		case CommandFillRect:
			s.FillRect(cmd.Bounds, cmd.Cell)
		case CommandStrokeRect:
			s.StrokeRect(cmd.Bounds, cmd.Thickness, cmd.Cell, cmd.Edges)
		}
	}
}

// Rows returns the surface contents as rows of cells. The rows alias
// the surface storage.
func (s *Surface[C]) Rows() [][]C {
	rows := make([][]C, s.size.Height)
	for y := 0; y < s.size.Height; y++ {
		rows[y] = s.cells[y*s.size.Width : (y+1)*s.size.Width]
	}
	return rows
}

// Resize changes the surface dimensions, preserving content that
// still fits.
func (s *Surface[C]) Resize(size Size) {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	if size == s.size {
		return
	}

	cells := make([]C, size.Width*size.Height)
	minW := s.size.Width
	if size.Width < minW {
		minW = size.Width
	}
	minH := s.size.Height
	if size.Height < minH {
		minH = size.Height
	}
	for y := 0; y < minH; y++ {
		copy(cells[y*size.Width:y*size.Width+minW], s.cells[y*s.size.Width:y*s.size.Width+minW])
	}

	s.cells = cells
	s.size = size
}

// String serializes the surface to a printable form, one row per
// line, using each cell's String representation.
func (s *Surface[C]) String() string {
	var b strings.Builder
	for y := 0; y < s.size.Height; y++ {
		for x := 0; x < s.size.Width; x++ {
			b.WriteString(s.cells[s.index(x, y)].String())
		}
		if y < s.size.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
