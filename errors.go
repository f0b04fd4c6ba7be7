package textyle

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. Both indicate caller bugs
// rather than runtime conditions; they are reported instead of
// tolerated so drivers can decide whether to skip a frame or stop.
var (
	// ErrCanvasSize is returned when a Canvas callback produces a
	// surface whose size does not match the bounds it was given.
	ErrCanvasSize = errors.New("canvas result size does not match bounds")

	// ErrPasteSize is returned when a pasted surface's size does not
	// match the destination bounds.
	ErrPasteSize = errors.New("pasted surface size does not match bounds")
)

// ContractError carries the details of a contract violation: the
// operation, the bounds it was asked to honor, and the size it
// actually received.
type ContractError struct {
	Op     string
	Err    error
	Bounds Rect
	Got    Size
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("textyle: %s: %v (bounds %dx%d at %d,%d, got %dx%d)",
		e.Op, e.Err, e.Bounds.Width, e.Bounds.Height, e.Bounds.X, e.Bounds.Y, e.Got.Width, e.Got.Height)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
