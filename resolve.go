package textyle

// SizedLayout is a layout tree annotated with resolved intrinsic
// sizing. Produced fresh by ResolveSize each frame; positioning
// never mutates it, stacks work on per-child copies when they
// downgrade an elastic axis to a concrete size.
type SizedLayout[Ctx any, C Cell] struct {
	Sizing ItemSizing

	kind     nodeKind
	n        int
	cell     C
	edges    Edges
	halign   HAlign
	valign   VAlign
	lines    [][]C
	child    *SizedLayout[Ctx, C]
	children []*SizedLayout[Ctx, C]
	drawFn   DrawFunc[Ctx, C]
}

// sized wraps a resolved node with its sizing, carrying the source
// node's payload fields across.
func (l *Layout[Ctx, C]) sized(sizing ItemSizing, child *SizedLayout[Ctx, C], children []*SizedLayout[Ctx, C]) *SizedLayout[Ctx, C] {
	return &SizedLayout[Ctx, C]{
		Sizing:   sizing,
		kind:     l.kind,
		n:        l.n,
		cell:     l.cell,
		edges:    l.edges,
		halign:   l.halign,
		valign:   l.valign,
		lines:    l.lines,
		child:    child,
		children: children,
		drawFn:   l.drawFn,
	}
}

// ResolveSize walks the tree bottom-up and determines how much space
// every node needs and whether it wants to grow, against the given
// enclosing bounds. Padding, border, and alignment nodes resolve
// their child optimistically first and re-resolve once against
// reduced bounds only when the optimistic minimum does not fit; this
// bounds the extra work at one re-resolution per node per frame.
//
// The context is only touched where WithContext callbacks read or
// mutate it.
func (l *Layout[Ctx, C]) ResolveSize(bounds Rect, ctx *Ctx) *SizedLayout[Ctx, C] {
	switch l.kind {
	case nodeContent:
		sz := measureContent(l.lines, bounds.Width)
		return l.sized(ItemSizing{Horizontal: Static(sz.Width), Vertical: Static(sz.Height)}, nil, nil)

	case nodeWidth:
		inner := bounds
		inner.Width = l.n
		resolved := l.child.ResolveSize(inner, ctx)
		frame := resolved.Sizing
		frame.Horizontal = Static(l.n)
		return l.sized(frame, resolved, nil)

	case nodeHeight:
		inner := bounds
		inner.Height = l.n
		resolved := l.child.ResolveSize(inner, ctx)
		frame := resolved.Sizing
		frame.Vertical = Static(l.n)
		return l.sized(frame, resolved, nil)

	case nodeTopPadding, nodeBottomPadding:
		resolved := l.child.ResolveSize(bounds, ctx)
		frame := resolved.Sizing
		frame.Vertical.ClampedAdd(l.n)

		if frame.Vertical.Min() > bounds.Height {
			// Not enough room: shrink the content under the padding.
			reduced := bounds
			reduced.Height = satSub(bounds.Height, l.n)
			resolved = l.child.ResolveSize(reduced, ctx)
			frame = resolved.Sizing
			frame.Vertical.ClampedAdd(l.n)
		}
		return l.sized(frame, resolved, nil)

	case nodeLeftPadding, nodeRightPadding:
		resolved := l.child.ResolveSize(bounds, ctx)
		frame := resolved.Sizing
		frame.Horizontal.ClampedAdd(l.n)

		if frame.Horizontal.Min() > bounds.Width {
			reduced := bounds
			reduced.Width = satSub(bounds.Width, l.n)
			resolved = l.child.ResolveSize(reduced, ctx)
			frame = resolved.Sizing
			frame.Horizontal.ClampedAdd(l.n)
		}
		return l.sized(frame, resolved, nil)

	case nodeVCenter, nodeVTopAlign, nodeVBottomAlign:
		resolved := l.child.ResolveSize(bounds, ctx)
		content := resolved.Sizing
		sizing := ItemSizing{
			Horizontal: content.Horizontal,
			Vertical:   Greedy(content.Vertical.Min()),
		}
		return l.sized(sizing, resolved, nil)

	case nodeHCenter, nodeHLeftAlign, nodeHRightAlign:
		resolved := l.child.ResolveSize(bounds, ctx)
		content := resolved.Sizing
		sizing := ItemSizing{
			Horizontal: Greedy(content.Horizontal.Min()),
			Vertical:   content.Vertical,
		}
		return l.sized(sizing, resolved, nil)

	case nodeBackground:
		resolved := l.child.ResolveSize(bounds, ctx)
		return l.sized(resolved.Sizing, resolved, nil)

	case nodeBorder:
		vInset := 0
		if l.edges.Has(EdgeTop) {
			vInset += l.n
		}
		if l.edges.Has(EdgeBottom) {
			vInset += l.n
		}
		hInset := 0
		if l.edges.Has(EdgeLeft) {
			hInset += l.n
		}
		if l.edges.Has(EdgeRight) {
			hInset += l.n
		}

		resolved := l.child.ResolveSize(bounds, ctx)
		frame := resolved.Sizing
		frame.Vertical.ClampedAdd(vInset)

		if frame.Vertical.Min() > bounds.Height {
			reduced := bounds
			reduced.Height = satSub(bounds.Height, vInset)
			resolved = l.child.ResolveSize(reduced, ctx)
			frame = resolved.Sizing
			frame.Vertical.ClampedAdd(vInset)
		}

		frame.Horizontal.ClampedAdd(hInset)
		if frame.Horizontal.Min() > bounds.Width {
			reduced := bounds
			reduced.Width = satSub(bounds.Width, hInset)
			resolved = l.child.ResolveSize(reduced, ctx)
			frame = resolved.Sizing
			frame.Horizontal.ClampedAdd(hInset)
			frame.Vertical.ClampedAdd(vInset)
		}
		return l.sized(frame, resolved, nil)

	case nodeVStack:
		spacingTotal := 0
		if len(l.children) > 0 {
			spacingTotal = l.n * (len(l.children) - 1)
		}
		result := ItemSizing{Horizontal: Static(0), Vertical: Static(spacingTotal)}

		inner := bounds
		inner.Height = satSub(inner.Height, spacingTotal)

		children := make([]*SizedLayout[Ctx, C], 0, len(l.children))
		for _, node := range l.children {
			resolved := node.ResolveSize(inner, ctx)
			result.Horizontal = crossMerge(result.Horizontal, resolved.Sizing.Horizontal)
			result.Vertical.Accumulate(resolved.Sizing.Vertical)
			children = append(children, resolved)
		}
		return l.sized(result, nil, children)

	case nodeHStack:
		spacingTotal := 0
		if len(l.children) > 0 {
			spacingTotal = l.n * (len(l.children) - 1)
		}
		result := ItemSizing{Horizontal: Static(spacingTotal), Vertical: Static(0)}

		inner := bounds
		inner.Width = satSub(inner.Width, spacingTotal)

		children := make([]*SizedLayout[Ctx, C], 0, len(l.children))
		for _, node := range l.children {
			resolved := node.ResolveSize(inner, ctx)
			result.Vertical = crossMerge(result.Vertical, resolved.Sizing.Vertical)
			result.Horizontal.Accumulate(resolved.Sizing.Horizontal)
			children = append(children, resolved)
		}
		return l.sized(result, nil, children)

	case nodeCanvas:
		return l.sized(ItemSizing{Horizontal: Greedy(1), Vertical: Greedy(1)}, nil, nil)

	case nodeWithContext:
		return l.layoutFn(ctx).ResolveSize(bounds, ctx)
	}

	// Unknown kinds cannot be constructed through the public API.
	return l.sized(ItemSizing{Horizontal: Static(0), Vertical: Static(0)}, nil, nil)
}

// crossMerge combines two sizings on a stack's cross axis: the result
// is the maximum of the two, turning Greedy as soon as either side is
// Greedy.
func crossMerge(acc, other Sizing) Sizing {
	max := acc.Min()
	if other.Min() > max {
		max = other.Min()
	}
	if acc.IsGreedy() || other.IsGreedy() {
		return Greedy(max)
	}
	return Static(max)
}
