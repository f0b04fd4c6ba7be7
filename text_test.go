package textyle

import "testing"

func TestGraphemeLines(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if lines := graphemeLines("", DefaultStyle()); lines != nil {
			t.Errorf("expected no lines, got %d", len(lines))
		}
	})

	t.Run("SingleLine", func(t *testing.T) {
		lines := graphemeLines("abc", DefaultStyle())
		if len(lines) != 1 || len(lines[0]) != 3 {
			t.Fatalf("got %d lines, first of %d cells", len(lines), len(lines[0]))
		}
		if lines[0][1].Cluster != "b" {
			t.Errorf("got %q, want %q", lines[0][1].Cluster, "b")
		}
	})

	t.Run("ExplicitBreaks", func(t *testing.T) {
		lines := graphemeLines("ab\ncdef", DefaultStyle())
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if len(lines[0]) != 2 || len(lines[1]) != 4 {
			t.Errorf("line lengths %d, %d", len(lines[0]), len(lines[1]))
		}
	})

	t.Run("Clusters", func(t *testing.T) {
		// Combining accent and an emoji each stay one cell.
		lines := graphemeLines("éx\U0001F44D", DefaultStyle())
		if len(lines[0]) != 3 {
			t.Fatalf("got %d cells, want 3", len(lines[0]))
		}
		if lines[0][0].Cluster != "é" {
			t.Errorf("cluster split: %q", lines[0][0].Cluster)
		}
	})

	t.Run("LinesBuilder", func(t *testing.T) {
		var ctx struct{}
		sized := Lines[struct{}]("ab", "cdef").ResolveSize(SizedRect(40, 10), &ctx)
		want := ItemSizing{Horizontal: Static(4), Vertical: Static(2)}
		if sized.Sizing != want {
			t.Errorf("got %+v, want %+v", sized.Sizing, want)
		}
	})

	t.Run("StyleCarried", func(t *testing.T) {
		style := DefaultStyle().Foreground(Red).Bold()
		lines := graphemeLines("hi", style)
		for _, c := range lines[0] {
			if c.Style != style {
				t.Errorf("cell %q lost its style", c.Cluster)
			}
		}
	})
}

func TestMeasureLine(t *testing.T) {
	tests := []struct {
		n, w      int
		wantWidth int
		wantRows  int
	}{
		{5, 10, 5, 1},   // fits
		{5, 5, 5, 1},    // exact fit
		{5, 0, 5, 1},    // unconstrained
		{11, 10, 10, 2}, // wraps once
		{10, 4, 4, 3},   // wraps twice, occupies full width
		{0, 10, 0, 1},   // empty line still takes a row
	}
	for _, tt := range tests {
		width, rows := measureLine(tt.n, tt.w)
		if width != tt.wantWidth || rows != tt.wantRows {
			t.Errorf("measureLine(%d, %d) = (%d, %d), want (%d, %d)",
				tt.n, tt.w, width, rows, tt.wantWidth, tt.wantRows)
		}
	}
}

func TestMeasureContent(t *testing.T) {
	lines := graphemeLines("hello\nhi\na longer line", DefaultStyle())

	t.Run("Unconstrained", func(t *testing.T) {
		sz := measureContent(lines, 0)
		if sz != (Size{Width: 13, Height: 3}) {
			t.Errorf("got %+v", sz)
		}
	})

	t.Run("Wrapped", func(t *testing.T) {
		// "a longer line" (13 cells) wraps to 3 rows of width 5.
		sz := measureContent(lines, 5)
		if sz != (Size{Width: 5, Height: 5}) {
			t.Errorf("got %+v", sz)
		}
	})
}

func TestWrapContent(t *testing.T) {
	lines := graphemeLines("abcdef", DefaultStyle())

	t.Run("NoWidth", func(t *testing.T) {
		if rows := wrapContent(lines, 0); rows != nil {
			t.Errorf("expected nil, got %d rows", len(rows))
		}
	})

	t.Run("Chunks", func(t *testing.T) {
		rows := wrapContent(lines, 4)
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if len(rows[0]) != 4 || len(rows[1]) != 2 {
			t.Errorf("row lengths %d, %d", len(rows[0]), len(rows[1]))
		}
	})

	t.Run("FitsUntouched", func(t *testing.T) {
		rows := wrapContent(lines, 10)
		if len(rows) != 1 || len(rows[0]) != 6 {
			t.Errorf("got %d rows, first of %d cells", len(rows), len(rows[0]))
		}
	})
}
