package textyle

// HAlign is the cross-axis alignment of a vertical stack.
type HAlign uint8

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

// VAlign is the cross-axis alignment of a horizontal stack.
type VAlign uint8

const (
	VTop VAlign = iota
	VMiddle
	VBottom
)

// Edges is a bit set of rectangle edges.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgesAll        = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
	EdgesHorizontal = EdgeLeft | EdgeRight
	EdgesVertical   = EdgeTop | EdgeBottom
)

// Has returns true if the set contains the given edge.
func (e Edges) Has(edge Edges) bool {
	return e&edge != 0
}

// nodeKind identifies a layout primitive.
type nodeKind uint8

const (
	nodeContent nodeKind = iota
	nodeWidth
	nodeHeight
	nodeTopPadding
	nodeRightPadding
	nodeBottomPadding
	nodeLeftPadding
	nodeVCenter
	nodeHCenter
	nodeVTopAlign
	nodeVBottomAlign
	nodeHLeftAlign
	nodeHRightAlign
	nodeBackground
	nodeBorder
	nodeVStack
	nodeHStack
	nodeCanvas
	nodeWithContext
)

// DrawFunc renders a custom sub-surface for a Canvas node. The
// returned surface's size must exactly equal the bounds argument.
type DrawFunc[Ctx any, C Cell] func(ctx *Ctx, bounds Rect) *Surface[C]

// LayoutFunc produces a layout subtree from live application state.
// Used by WithContext nodes at resolution time.
type LayoutFunc[Ctx any, C Cell] func(ctx *Ctx) *Layout[Ctx, C]

// Layout is a node in (and the root of) the declarative layout tree.
// It is generic over the application context Ctx, threaded through to
// callbacks, and the cell type C the tree draws with.
//
// Trees are immutable: the chainable wrapper methods return new nodes
// and never modify their receiver, so subtrees can be shared and
// rebuilt cheaply every frame.
type Layout[Ctx any, C Cell] struct {
	kind nodeKind

	n        int   // fixed size, padding, border thickness, or spacing
	cell     C     // background fill or border cell
	edges    Edges // border edge selection
	halign   HAlign
	valign   VAlign
	lines    [][]C // content leaf: cells per explicit line
	child    *Layout[Ctx, C]
	children []*Layout[Ctx, C]
	drawFn   DrawFunc[Ctx, C]
	layoutFn LayoutFunc[Ctx, C]
}

// Content creates a leaf from explicit lines of cells. Its intrinsic
// size is the natural extent of the lines, wrapped at the enclosing
// width during resolution.
func Content[Ctx any, C Cell](lines [][]C) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeContent, lines: lines}
}

// VStack composes nodes vertically, top to bottom, with the given
// cross-axis alignment and spacing between consecutive children. It
// occupies only the space its children use.
func VStack[Ctx any, C Cell](alignment HAlign, spacing int, children ...*Layout[Ctx, C]) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeVStack, halign: alignment, n: spacing, children: children}
}

// HStack composes nodes horizontally, left to right, with the given
// cross-axis alignment and spacing between consecutive children.
func HStack[Ctx any, C Cell](alignment VAlign, spacing int, children ...*Layout[Ctx, C]) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeHStack, valign: alignment, n: spacing, children: children}
}

// Canvas embeds imperative drawing inside the declarative tree. The
// node grows greedily; at draw time fn must return a surface exactly
// matching the bounds it is given, anything else is reported as a
// contract violation from Render.
func Canvas[Ctx any, C Cell](fn DrawFunc[Ctx, C]) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeCanvas, drawFn: fn}
}

// WithContext lets the tree depend on live application state: at
// resolution time the node is replaced by fn's return value and
// resolution continues there. It is not itself drawable.
func WithContext[Ctx any, C Cell](fn LayoutFunc[Ctx, C]) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeWithContext, layoutFn: fn}
}

// Grid composes the items of a matrix into a vertical stack of
// horizontal rows, centering each item in its slot, with uniform
// spacing between rows and columns.
func Grid[Ctx any, C Cell, T any](items *Matrix[T], spacing int, view func(*T) *Layout[Ctx, C]) *Layout[Ctx, C] {
	cols, _ := items.Shape()
	var rows []*Layout[Ctx, C]

	var row []*Layout[Ctx, C]
	for i := range items.Data() {
		row = append(row, view(&items.Data()[i]).Center())
		if len(row) == cols {
			rows = append(rows, HStack(VMiddle, spacing, row...))
			row = nil
		}
	}

	return VStack(HCenter, spacing, rows...)
}

// Width constrains the node to an exact horizontal extent. Takes
// priority over greedy sizing.
func (l *Layout[Ctx, C]) Width(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeWidth, n: n, child: l}
}

// Height constrains the node to an exact vertical extent.
func (l *Layout[Ctx, C]) Height(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeHeight, n: n, child: l}
}

// PaddingTop adds empty space above the node. If the container has no
// free space the content shrinks to fit the padding, never the
// reverse.
func (l *Layout[Ctx, C]) PaddingTop(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeTopPadding, n: n, child: l}
}

// PaddingRight adds empty space to the right of the node.
func (l *Layout[Ctx, C]) PaddingRight(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeRightPadding, n: n, child: l}
}

// PaddingBottom adds empty space below the node.
func (l *Layout[Ctx, C]) PaddingBottom(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeBottomPadding, n: n, child: l}
}

// PaddingLeft adds empty space to the left of the node.
func (l *Layout[Ctx, C]) PaddingLeft(n int) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeLeftPadding, n: n, child: l}
}

// PaddingHorizontal pads both left and right.
func (l *Layout[Ctx, C]) PaddingHorizontal(n int) *Layout[Ctx, C] {
	return l.PaddingLeft(n).PaddingRight(n)
}

// PaddingVertical pads both top and bottom.
func (l *Layout[Ctx, C]) PaddingVertical(n int) *Layout[Ctx, C] {
	return l.PaddingTop(n).PaddingBottom(n)
}

// Padding pads all four sides.
func (l *Layout[Ctx, C]) Padding(n int) *Layout[Ctx, C] {
	return l.PaddingTop(n).PaddingRight(n).PaddingBottom(n).PaddingLeft(n)
}

// CenterVertically expands to the full available height, keeping the
// node centered at its own size.
func (l *Layout[Ctx, C]) CenterVertically() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeVCenter, child: l}
}

// CenterHorizontally expands to the full available width, keeping the
// node centered at its own size.
func (l *Layout[Ctx, C]) CenterHorizontally() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeHCenter, child: l}
}

// Center centers the node on both axes.
func (l *Layout[Ctx, C]) Center() *Layout[Ctx, C] {
	return l.CenterHorizontally().CenterVertically()
}

// AlignTop expands vertically, keeping the node at the top.
func (l *Layout[Ctx, C]) AlignTop() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeVTopAlign, child: l}
}

// AlignBottom expands vertically, keeping the node at the bottom.
func (l *Layout[Ctx, C]) AlignBottom() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeVBottomAlign, child: l}
}

// AlignLeft expands horizontally, keeping the node at the left.
func (l *Layout[Ctx, C]) AlignLeft() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeHLeftAlign, child: l}
}

// AlignRight expands horizontally, keeping the node at the right.
func (l *Layout[Ctx, C]) AlignRight() *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeHRightAlign, child: l}
}

// Background fills the node's full bounds with the given cell before
// the content draws. Does not affect sizing.
func (l *Layout[Ctx, C]) Background(c C) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeBackground, cell: c, child: l}
}

// Border reserves thickness cells on each selected edge, shrinking
// the content into the interior, and draws filled strips on the outer
// bounds. Its spacing rules work exactly like padding.
func (l *Layout[Ctx, C]) Border(thickness int, c C, edges Edges) *Layout[Ctx, C] {
	return &Layout[Ctx, C]{kind: nodeBorder, n: thickness, cell: c, edges: edges, child: l}
}
