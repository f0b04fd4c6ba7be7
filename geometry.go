package textyle

import "math"

// Rect is an axis-aligned rectangle in surface coordinates.
// The origin may go negative during intermediate layout math
// (centering a child larger than its container, for example);
// the surface clips when commands are executed.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle at the given origin and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// SizedRect creates a rectangle at the origin with the given size.
func SizedRect(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Size represents dimensions. The zero value is an empty size.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Rect returns a rectangle of this size at the origin.
func (s Size) Rect() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Vec is a 2D vector.
type Vec struct {
	X, Y int
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{X: a.X - b.X, Y: a.Y - b.Y}
}

// Magnitude returns the vector's length.
func (a Vec) Magnitude() float64 {
	return math.Sqrt(float64(a.X*a.X + a.Y*a.Y))
}

// Matrix is a dense row-major 2D container. Used by Grid to lay
// out tabular content.
type Matrix[T any] struct {
	cols, rows int
	data       []T
}

// NewMatrix creates a cols×rows matrix of zero values.
func NewMatrix[T any](cols, rows int) *Matrix[T] {
	return &Matrix[T]{
		cols: cols,
		rows: rows,
		data: make([]T, cols*rows),
	}
}

// MatrixOf wraps existing row-major data. The data length must be
// a multiple of cols.
func MatrixOf[T any](cols int, data []T) *Matrix[T] {
	rows := 0
	if cols > 0 {
		rows = len(data) / cols
	}
	return &Matrix[T]{cols: cols, rows: rows, data: data}
}

// Shape returns the number of columns and rows.
func (m *Matrix[T]) Shape() (cols, rows int) {
	return m.cols, m.rows
}

// At returns a pointer to the element at column x, row y.
// Returns nil if out of bounds.
func (m *Matrix[T]) At(x, y int) *T {
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
		return nil
	}
	return &m.data[y*m.cols+x]
}

// Set stores v at column x, row y. Does nothing if out of bounds.
func (m *Matrix[T]) Set(x, y int, v T) {
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
		return
	}
	m.data[y*m.cols+x] = v
}

// Data returns the underlying row-major slice.
func (m *Matrix[T]) Data() []T {
	return m.data
}
