package textyle

import (
	"errors"
	"testing"
)

func renderString(t *testing.T, l *Layout[noCtx, Grapheme], w, h int) string {
	t.Helper()
	var ctx noCtx
	surface := NewSurface[Grapheme](Size{Width: w, Height: h})
	if err := Render(l, surface, &ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return surface.String()
}

func TestRender(t *testing.T) {
	t.Run("BorderedScene", func(t *testing.T) {
		tree := Text[noCtx]("Hi").
			Border(1, Gr('#'), EdgesAll).
			Center().
			Background(Gr('.'))

		want := "" +
			"..........\n" +
			"...####...\n" +
			"...#Hi#...\n" +
			"...####...\n" +
			".........."
		if got := renderString(t, tree, 10, 5); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("StacksAndAlignment", func(t *testing.T) {
		tree := VStack(HCenter, 0,
			Text[noCtx]("one"),
			Text[noCtx]("x"),
		).Center()

		want := "" +
			"        \n" +
			"   one  \n" +
			"    x   \n" +
			"        "
		if got := renderString(t, tree, 8, 4); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("TransparencyShowsBackground", func(t *testing.T) {
		tree := Text[noCtx]("a b").Background(Gr('-'))

		if got := renderString(t, tree, 3, 1); got != "a-b" {
			t.Errorf("got %q, want %q", got, "a-b")
		}
	})

	t.Run("WrappedText", func(t *testing.T) {
		tree := Text[noCtx]("abcdef").Width(3)

		want := "" +
			"abc\n" +
			"def"
		if got := renderString(t, tree, 3, 2); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		tree := VStack(HLeft, 1,
			Text[noCtx]("a").CenterVertically(),
			Text[noCtx]("b"),
		).Border(1, Gr('#'), EdgesAll)

		first := renderString(t, tree, 12, 8)
		second := renderString(t, tree, 12, 8)
		if first != second {
			t.Errorf("renders differ:\n%s\nvs\n%s", first, second)
		}
	})

	t.Run("OversizedContentClips", func(t *testing.T) {
		// Content taller than the surface is centered over it and
		// clipped on both sides, never an error.
		tree := Text[noCtx]("toolong").Center()
		if got := renderString(t, tree, 3, 1); got != "lon" {
			t.Errorf("got %q, want %q", got, "lon")
		}
	})

	t.Run("PaddedBorderedScene", func(t *testing.T) {
		// The decorations keep the surface edges even though the
		// vertical minimums (text + padding + border) exceed the five
		// available rows; the interior degrades instead.
		tree := Text[noCtx]("Hi").
			Center().
			Padding(2).
			Background(Gr('.')).
			Border(1, Gr('#'), EdgesAll)

		want := "" +
			"##########\n" +
			"#........#\n" +
			"#........#\n" +
			"#...Hi...#\n" +
			"##########"
		if got := renderString(t, tree, 10, 5); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("GreedyMiddleRow", func(t *testing.T) {
		// Two fixed 2-row children and one elastic child in 10 rows
		// with spacing 1: the middle gets 10-2-2-1-1 = 4.
		tree := VStack(HLeft, 1,
			Text[noCtx]("x\nx"),
			Text[noCtx]("mid").CenterVertically(),
			Text[noCtx]("y\ny"),
		)

		want := "" +
			"x  \n" +
			"x  \n" +
			"   \n" +
			"   \n" +
			"   \n" +
			"mid\n" +
			"   \n" +
			"   \n" +
			"y  \n" +
			"y  "
		if got := renderString(t, tree, 3, 10); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("CanvasError", func(t *testing.T) {
		tree := Canvas(func(ctx *noCtx, bounds Rect) *Surface[Grapheme] {
			return NewSurface[Grapheme](Size{Width: 1, Height: 1})
		})
		var ctx noCtx
		surface := NewSurface[Grapheme](Size{Width: 5, Height: 5})
		err := Render(tree, surface, &ctx)
		if !errors.Is(err, ErrCanvasSize) {
			t.Fatalf("got %v, want ErrCanvasSize", err)
		}
	})

	t.Run("CanvasDrawn", func(t *testing.T) {
		tree := Canvas(func(ctx *noCtx, bounds Rect) *Surface[Grapheme] {
			s := NewSurface[Grapheme](bounds.Size())
			s.FillRect(s.Bounds(), Gr('o'))
			return s
		})
		want := "" +
			"ooo\n" +
			"ooo"
		if got := renderString(t, tree, 3, 2); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
}

func TestRenderGrid(t *testing.T) {
	m := MatrixOf(2, []string{"a", "b", "c", "d"})
	tree := Grid(m, 1, func(s *string) *Layout[noCtx, Grapheme] {
		return Text[noCtx](*s)
	})

	want := "" +
		"a b\n" +
		"   \n" +
		"c d"
	if got := renderString(t, tree, 3, 3); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPixels(t *testing.T) {
	red := NewPixel(1, 0, 0)
	tree := Content[noCtx]([][]Pixel{{red}}).Center()

	var ctx noCtx
	surface := NewSurface[Pixel](Size{Width: 3, Height: 3})
	if err := Render(tree, surface, &ctx); err != nil {
		t.Fatal(err)
	}

	if got := surface.Get(1, 1); got != red {
		t.Errorf("center pixel %+v", got)
	}
	if !surface.Get(0, 0).Transparent() {
		t.Error("corner should stay blank")
	}
}
