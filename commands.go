package textyle

// CommandKind identifies a primitive draw operation.
type CommandKind uint8

const (
	// CommandText places rows of cells at a rectangle's origin,
	// skipping transparent cells.
	CommandText CommandKind = iota
	// CommandFillRect fills a rectangle with one cell.
	CommandFillRect
	// CommandStrokeRect draws filled strips of the given thickness
	// along the selected edges of a rectangle.
	CommandStrokeRect
)

// DrawCommand is one entry of the flat, order-significant operation
// list the positioner emits. Later commands may overdraw earlier ones
// within the same region, which is how backgrounds end up underneath
// content.
type DrawCommand[C Cell] struct {
	Kind      CommandKind
	Bounds    Rect
	Cell      C     // fill and stroke
	Thickness int   // stroke
	Edges     Edges // stroke
	Lines     [][]C // text rows
}

// DrawCommands walks the sized tree top-down against a concrete
// target rectangle, distributing available space and emitting
// absolute-positioned primitive operations. Call it with the
// rectangle obtained from fitting the root's sizing into the surface
// bounds.
//
// The only error condition is a contract violation: a Canvas callback
// returning a surface whose size does not match its bounds.
func (s *SizedLayout[Ctx, C]) DrawCommands(bounds Rect, ctx *Ctx) ([]DrawCommand[C], error) {
	switch s.kind {
	case nodeContent:
		return []DrawCommand[C]{{
			Kind:   CommandText,
			Bounds: bounds,
			Lines:  wrapContent(s.lines, bounds.Width),
		}}, nil

	case nodeWidth, nodeHeight:
		frame := s.child.Sizing.FitInto(bounds)
		return s.child.DrawCommands(frame, ctx)

	case nodeVCenter:
		frame := s.child.Sizing.FitInto(bounds)
		frame.Y = bounds.Y + bounds.Height/2 - frame.Height/2
		return s.child.DrawCommands(frame, ctx)

	case nodeHCenter:
		frame := s.child.Sizing.FitInto(bounds)
		frame.X = bounds.X + bounds.Width/2 - frame.Width/2
		return s.child.DrawCommands(frame, ctx)

	case nodeVBottomAlign:
		frame := s.child.Sizing.FitInto(bounds)
		frame.Y = bounds.MaxY() - frame.Height
		return s.child.DrawCommands(frame, ctx)

	case nodeHRightAlign:
		frame := s.child.Sizing.FitInto(bounds)
		frame.X = bounds.MaxX() - frame.Width
		return s.child.DrawCommands(frame, ctx)

	case nodeVTopAlign, nodeHLeftAlign:
		frame := s.child.Sizing.FitInto(bounds)
		return s.child.DrawCommands(frame, ctx)

	case nodeTopPadding:
		avail := bounds
		avail.Height = satSub(avail.Height, s.n)
		frame := s.child.Sizing.FitInto(avail)
		frame.X = bounds.X
		frame.Y = bounds.Y + s.n
		return s.child.DrawCommands(frame, ctx)

	case nodeBottomPadding:
		avail := bounds
		avail.Height = satSub(avail.Height, s.n)
		frame := s.child.Sizing.FitInto(avail)
		frame.X = bounds.X
		frame.Y = bounds.Y
		return s.child.DrawCommands(frame, ctx)

	case nodeLeftPadding:
		avail := bounds
		avail.Width = satSub(avail.Width, s.n)
		frame := s.child.Sizing.FitInto(avail)
		frame.X = bounds.X + s.n
		frame.Y = bounds.Y
		return s.child.DrawCommands(frame, ctx)

	case nodeRightPadding:
		frame := s.child.Sizing.FitInto(bounds)
		frame.X = bounds.X
		frame.Y = bounds.Y
		// Trim whatever the free width cannot hold off the right side.
		free := satSub(bounds.Width, s.n)
		frame.Width = satSub(frame.Width, satSub(frame.Width, free))
		return s.child.DrawCommands(frame, ctx)

	case nodeBackground:
		frame := s.child.Sizing.FitInto(bounds)
		frame.X = bounds.X
		frame.Y = bounds.Y

		commands := []DrawCommand[C]{{Kind: CommandFillRect, Bounds: bounds, Cell: s.cell}}
		content, err := s.child.DrawCommands(frame, ctx)
		if err != nil {
			return nil, err
		}
		return append(commands, content...), nil

	case nodeBorder:
		return s.borderCommands(bounds, ctx)

	case nodeVStack:
		return s.vstackCommands(bounds, ctx)

	case nodeHStack:
		return s.hstackCommands(bounds, ctx)

	case nodeCanvas:
		result := s.drawFn(ctx, bounds)
		if result == nil || result.Size() != bounds.Size() {
			got := Size{}
			if result != nil {
				got = result.Size()
			}
			return nil, &ContractError{Op: "canvas", Err: ErrCanvasSize, Bounds: bounds, Got: got}
		}
		return []DrawCommand[C]{{
			Kind:   CommandText,
			Bounds: bounds,
			Lines:  result.Rows(),
		}}, nil
	}

	return nil, nil
}

// borderCommands shrinks the interior per selected edge, draws the
// content first, then the edge strips into the outer bounds so the
// frame is never occluded.
func (s *SizedLayout[Ctx, C]) borderCommands(bounds Rect, ctx *Ctx) ([]DrawCommand[C], error) {
	outer := bounds
	inner := bounds
	if s.edges.Has(EdgeTop) {
		inner.Height = satSub(inner.Height, s.n)
		inner.Y += s.n
	}
	if s.edges.Has(EdgeRight) {
		inner.Width = satSub(inner.Width, s.n)
	}
	if s.edges.Has(EdgeBottom) {
		inner.Height = satSub(inner.Height, s.n)
	}
	if s.edges.Has(EdgeLeft) {
		inner.Width = satSub(inner.Width, s.n)
		inner.X += s.n
	}

	frame := s.child.Sizing.FitInto(inner)
	frame.X = inner.X
	frame.Y = inner.Y

	commands, err := s.child.DrawCommands(frame, ctx)
	if err != nil {
		return nil, err
	}

	if s.edges == EdgesAll {
		return append(commands, DrawCommand[C]{
			Kind:      CommandStrokeRect,
			Bounds:    outer,
			Cell:      s.cell,
			Thickness: s.n,
			Edges:     EdgesAll,
		}), nil
	}

	if s.edges.Has(EdgeTop) {
		commands = append(commands, DrawCommand[C]{
			Kind:   CommandFillRect,
			Bounds: NewRect(outer.X, outer.Y, outer.Width, s.n),
			Cell:   s.cell,
		})
	}
	if s.edges.Has(EdgeRight) {
		commands = append(commands, DrawCommand[C]{
			Kind:   CommandFillRect,
			Bounds: NewRect(outer.MaxX()-s.n, outer.Y, s.n, outer.Height),
			Cell:   s.cell,
		})
	}
	if s.edges.Has(EdgeBottom) {
		commands = append(commands, DrawCommand[C]{
			Kind:   CommandFillRect,
			Bounds: NewRect(outer.X, outer.MaxY()-s.n, outer.Width, s.n),
			Cell:   s.cell,
		})
	}
	if s.edges.Has(EdgeLeft) {
		commands = append(commands, DrawCommand[C]{
			Kind:   CommandFillRect,
			Bounds: NewRect(outer.X, outer.Y, s.n, outer.Height),
			Cell:   s.cell,
		})
	}
	return commands, nil
}

// distribute converts the elastic children of a stack to concrete
// static sizes: each greedy child takes the floor share of the
// remaining budget, the last one also absorbs the division remainder,
// and every share is clamped to the child's declared minimum. sizing
// selects the primary axis.
func distribute[Ctx any, C Cell](children []*SizedLayout[Ctx, C], budget int, axis func(*SizedLayout[Ctx, C]) *Sizing) []*SizedLayout[Ctx, C] {
	greedyCount := 0
	static := 0
	for _, child := range children {
		if axis(child).IsGreedy() {
			greedyCount++
		} else {
			static += axis(child).Min()
		}
	}

	space := satSub(budget, static)
	share := 0
	if greedyCount != 0 {
		share = space / greedyCount
	}

	out := make([]*SizedLayout[Ctx, C], 0, len(children))
	for _, child := range children {
		sz := axis(child)
		if !sz.IsGreedy() {
			out = append(out, child)
			continue
		}

		space -= share
		size := share
		if space < share {
			// Last elastic child collects the remainder.
			size += space
			space = 0
		}
		if min := sz.Min(); size < min {
			size = min
		}

		// Copy so the sized tree itself stays untouched.
		downgraded := *child
		axis(&downgraded).Mode = SizingStatic
		axis(&downgraded).Size = size
		out = append(out, &downgraded)
	}
	return out
}

func (s *SizedLayout[Ctx, C]) vstackCommands(bounds Rect, ctx *Ctx) ([]DrawCommand[C], error) {
	spacingTotal := 0
	if len(s.children) > 0 {
		spacingTotal = s.n * (len(s.children) - 1)
	}
	budget := satSub(bounds.Height, spacingTotal)

	children := distribute(s.children, budget, func(n *SizedLayout[Ctx, C]) *Sizing {
		return &n.Sizing.Vertical
	})

	// First pass: sequential placement along the primary axis,
	// tracking the widest child for cross-axis alignment.
	maxWidth := 0
	var last Rect
	frames := make([]Rect, 0, len(children))
	for i, child := range children {
		size := child.Sizing.FitInto(bounds)

		offset := 0
		if i > 0 {
			offset = s.n
		}

		frame := NewRect(0, last.MaxY()+offset, size.Width, size.Height)
		last = frame
		if frame.Width > maxWidth {
			maxWidth = frame.Width
		}
		frames = append(frames, frame)
	}

	// Second pass: cross-axis alignment needs every sibling's extent.
	var commands []DrawCommand[C]
	for i, child := range children {
		frame := frames[i]
		switch s.halign {
		case HLeft:
			// Already aligned to the left.
		case HCenter:
			frame.X = maxWidth/2 - frame.Width/2
		case HRight:
			frame.X = maxWidth - frame.Width
		}

		frame.X += bounds.X
		frame.Y += bounds.Y

		sub, err := child.DrawCommands(frame, ctx)
		if err != nil {
			return nil, err
		}
		commands = append(commands, sub...)
	}
	return commands, nil
}

func (s *SizedLayout[Ctx, C]) hstackCommands(bounds Rect, ctx *Ctx) ([]DrawCommand[C], error) {
	spacingTotal := 0
	if len(s.children) > 0 {
		spacingTotal = s.n * (len(s.children) - 1)
	}
	budget := satSub(bounds.Width, spacingTotal)

	children := distribute(s.children, budget, func(n *SizedLayout[Ctx, C]) *Sizing {
		return &n.Sizing.Horizontal
	})

	maxHeight := 0
	var last Rect
	frames := make([]Rect, 0, len(children))
	for i, child := range children {
		size := child.Sizing.FitInto(bounds)

		offset := 0
		if i > 0 {
			offset = s.n
		}

		frame := NewRect(last.MaxX()+offset, 0, size.Width, size.Height)
		last = frame
		if frame.Height > maxHeight {
			maxHeight = frame.Height
		}
		frames = append(frames, frame)
	}

	var commands []DrawCommand[C]
	for i, child := range children {
		frame := frames[i]
		switch s.valign {
		case VTop:
			// Already aligned to the top.
		case VMiddle:
			frame.Y = maxHeight/2 - frame.Height/2
		case VBottom:
			frame.Y = maxHeight - frame.Height
		}

		frame.X += bounds.X
		frame.Y += bounds.Y

		sub, err := child.DrawCommands(frame, ctx)
		if err != nil {
			return nil, err
		}
		commands = append(commands, sub...)
	}
	return commands, nil
}
