package textyle

import "math"

// SizingMode distinguishes the two sizing variants.
type SizingMode uint8

const (
	// SizingStatic is a fixed, non-negotiable size on an axis.
	SizingStatic SizingMode = iota
	// SizingGreedy expands to fill available space, carrying a
	// non-negotiable minimum.
	SizingGreedy
)

// Sizing is one axis of a node's resolved size: either an exact
// extent or a willingness to grow from a minimum. A Static value is
// never altered once produced for a given bounds; a Greedy value's
// payload is a lower bound, never a cap.
type Sizing struct {
	Mode SizingMode
	Size int
}

// Static returns an exact sizing.
func Static(n int) Sizing {
	if n < 0 {
		n = 0
	}
	return Sizing{Mode: SizingStatic, Size: n}
}

// Greedy returns an elastic sizing with the given minimum.
func Greedy(min int) Sizing {
	if min < 0 {
		min = 0
	}
	return Sizing{Mode: SizingGreedy, Size: min}
}

// IsGreedy reports whether the sizing wants to grow.
func (s Sizing) IsGreedy() bool {
	return s.Mode == SizingGreedy
}

// Min returns the scalar payload regardless of variant: the exact
// size for Static, the minimum for Greedy.
func (s Sizing) Min() int {
	return s.Size
}

// ClampedAdd grows the sizing by n, saturating instead of
// overflowing.
func (s *Sizing) ClampedAdd(n int) {
	s.Size = satAdd(s.Size, n)
}

// Accumulate merges a sibling's sizing into a running total. A
// Static accumulator adopts the sibling's variant with its own value
// added, so a running total turns Greedy as soon as any sibling is
// Greedy. A Greedy accumulator simply grows by the sibling's minimum.
func (s *Sizing) Accumulate(other Sizing) {
	switch s.Mode {
	case SizingStatic:
		result := other
		result.ClampedAdd(s.Size)
		*s = result
	case SizingGreedy:
		s.Size = satAdd(s.Size, other.Min())
	}
}

// ItemSizing is a node's resolved sizing on both axes.
type ItemSizing struct {
	Horizontal Sizing
	Vertical   Sizing
}

// FitInto resolves the sizing against concrete bounds: each axis is
// the exact value for Static and max(bound, min) for Greedy. The
// result keeps the bounds' origin.
func (s ItemSizing) FitInto(bounds Rect) Rect {
	width := s.Horizontal.Size
	if s.Horizontal.IsGreedy() && bounds.Width > width {
		width = bounds.Width
	}

	height := s.Vertical.Size
	if s.Vertical.IsGreedy() && bounds.Height > height {
		height = bounds.Height
	}

	return Rect{X: bounds.X, Y: bounds.Y, Width: width, Height: height}
}

// satAdd adds without overflowing, clamping the result to [0, MaxInt].
func satAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// satSub subtracts, clamping at zero.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
