package textyle

// Render resolves the tree's sizing against the surface's current
// size, positions it, and executes the resulting draw commands into
// the surface. The context is handed to WithContext and Canvas
// callbacks by reference and never retained beyond the call.
//
// Sizing degradations (padding or borders asking for more room than
// exists) are handled internally; the only errors that surface are
// contract violations, wrapped in *ContractError.
func Render[Ctx any, C Cell](tree *Layout[Ctx, C], surface *Surface[C], ctx *Ctx) error {
	bounds := surface.Bounds()
	sized := tree.ResolveSize(bounds, ctx)
	frame := sized.Sizing.FitInto(bounds)

	// The surface is a hard limit for a greedy root. Its minimum still
	// governs layout inside; whatever cannot fit is clipped.
	if sized.Sizing.Horizontal.IsGreedy() && frame.Width > bounds.Width {
		frame.Width = bounds.Width
	}
	if sized.Sizing.Vertical.IsGreedy() && frame.Height > bounds.Height {
		frame.Height = bounds.Height
	}

	commands, err := sized.DrawCommands(frame, ctx)
	if err != nil {
		return err
	}

	surface.Apply(commands)
	return nil
}
