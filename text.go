package textyle

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Text creates a grapheme content leaf from a string. Explicit line
// breaks are honored; everything else wraps at the enclosing width
// during resolution.
//
// Each grapheme cluster occupies exactly one cell. East-Asian width
// is deliberately not consulted here, so layout math and the surface
// grid always agree; the terminal driver compensates when flushing.
func Text[Ctx any](s string) *Layout[Ctx, Grapheme] {
	return TextStyled[Ctx](s, DefaultStyle())
}

// Textf creates a text leaf with printf-style formatting.
func Textf[Ctx any](format string, args ...any) *Layout[Ctx, Grapheme] {
	return Text[Ctx](fmt.Sprintf(format, args...))
}

// Lines creates a text leaf from explicit lines.
func Lines[Ctx any](lines ...string) *Layout[Ctx, Grapheme] {
	return Text[Ctx](strings.Join(lines, "\n"))
}

// TextStyled creates a text leaf with every cell carrying the given
// style.
func TextStyled[Ctx any](s string, style Style) *Layout[Ctx, Grapheme] {
	return Content[Ctx](graphemeLines(s, style))
}

// graphemeLines splits s into lines of grapheme cells. An empty
// string produces no lines at all, so an empty leaf takes no space.
func graphemeLines(s string, style Style) [][]Grapheme {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	lines := make([][]Grapheme, 0, len(raw))
	for _, line := range raw {
		var cells []Grapheme
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			cells = append(cells, Grapheme{Cluster: gr.Str(), Style: style})
		}
		lines = append(lines, cells)
	}
	return lines
}

// measureLine returns the extent of one explicit line of n cells
// wrapped at width w. Lines that fit stay one row tall; longer lines
// occupy the full width across multiple rows.
func measureLine(n, w int) (width, rows int) {
	rows = 1
	if w > 0 && n > w {
		rows = (n + w - 1) / w
	}
	if rows < 2 {
		return n, 1
	}
	return w, rows
}

// measureContent returns the natural extent of content lines wrapped
// at width w.
func measureContent[C Cell](lines [][]C, w int) Size {
	var sz Size
	for _, line := range lines {
		lw, rows := measureLine(len(line), w)
		if lw > sz.Width {
			sz.Width = lw
		}
		sz.Height += rows
	}
	return sz
}

// wrapContent re-chunks content lines into rows of at most w cells,
// honoring explicit breaks. With no positive width there is nothing
// to draw into.
func wrapContent[C Cell](lines [][]C, w int) [][]C {
	if w <= 0 {
		return nil
	}
	var rows [][]C
	for _, line := range lines {
		if len(line) <= w {
			rows = append(rows, line)
			continue
		}
		for start := 0; start < len(line); start += w {
			end := start + w
			if end > len(line) {
				end = len(line)
			}
			rows = append(rows, line[start:end])
		}
	}
	return rows
}
