// Package textyle is a declarative layout and rendering engine for
// cell-addressable surfaces. An application describes its UI as an
// immutable tree of layout primitives; the engine resolves intrinsic
// sizes bottom-up, assigns concrete bounds top-down, and emits a flat
// list of draw commands that a Surface executes.
package textyle

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is the drawable unit a surface is made of: a grapheme cluster
// for terminal output, a color sample for pixel output, or any other
// value type the host supplies. Transparent cells advance the draw
// position without overwriting what is underneath.
type Cell interface {
	comparable
	Transparent() bool
	String() string
}

// Attribute represents text styling attributes that can be combined.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorUnset ColorMode = iota // Terminal default
	Color16                     // Basic 16 colors (0-15)
	Color256                    // 256 color palette (0-255)
	ColorRGB                    // 24-bit true color
)

// Color represents a terminal color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorUnset}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	// Bright variants
	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Style combines foreground, background colors and attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a new style with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Inverse returns a new style with inverse enabled.
func (s Style) Inverse() Style {
	s.Attr = s.Attr.With(AttrInverse)
	return s
}

// Grapheme is one terminal cell: a single grapheme cluster plus its
// style. The zero value and a plain space are transparent, so prior
// fills (backgrounds) show through them.
//
// Measurement policy: every grapheme cluster counts as exactly one
// column, regardless of East-Asian width. The terminal driver still
// accounts for display width when flushing.
type Grapheme struct {
	Cluster string
	Style   Style
}

// NewGrapheme creates a styled grapheme cell.
func NewGrapheme(cluster string, style Style) Grapheme {
	return Grapheme{Cluster: cluster, Style: style}
}

// Gr creates an unstyled grapheme cell from a rune.
func Gr(r rune) Grapheme {
	return Grapheme{Cluster: string(r)}
}

// Transparent reports whether the cell leaves the surface untouched.
func (g Grapheme) Transparent() bool {
	return g.Cluster == "" || g.Cluster == " "
}

// String returns the cluster, or a space for the blank cell.
func (g Grapheme) String() string {
	if g.Cluster == "" {
		return " "
	}
	return g.Cluster
}

// Pixel is one color sample for pixel-addressable surfaces, backed
// by go-colorful for color math. Alpha 0 is transparent.
type Pixel struct {
	Color colorful.Color
	Alpha float64
}

// NewPixel creates an opaque pixel from RGB components in [0, 1].
func NewPixel(r, g, b float64) Pixel {
	return Pixel{Color: colorful.Color{R: r, G: g, B: b}, Alpha: 1}
}

// ClearPixel returns the fully transparent pixel.
func ClearPixel() Pixel {
	return Pixel{}
}

// Transparent reports whether the pixel has zero alpha.
func (p Pixel) Transparent() bool {
	return p.Alpha == 0
}

// String returns the pixel as a hex color string.
func (p Pixel) String() string {
	return p.Color.Hex()
}
