package textyle

import (
	"math"
	"testing"
)

func TestSizing(t *testing.T) {
	t.Run("Constructors", func(t *testing.T) {
		if s := Static(5); s.IsGreedy() || s.Min() != 5 {
			t.Errorf("Static(5) = %+v", s)
		}
		if s := Greedy(3); !s.IsGreedy() || s.Min() != 3 {
			t.Errorf("Greedy(3) = %+v", s)
		}

		// Negative payloads clamp to zero.
		if s := Static(-1); s.Min() != 0 {
			t.Errorf("Static(-1).Min() = %d, want 0", s.Min())
		}
		if s := Greedy(-1); s.Min() != 0 {
			t.Errorf("Greedy(-1).Min() = %d, want 0", s.Min())
		}
	})

	t.Run("ClampedAdd", func(t *testing.T) {
		s := Static(5)
		s.ClampedAdd(3)
		if s.Min() != 8 {
			t.Errorf("got %d, want 8", s.Min())
		}

		s = Static(math.MaxInt)
		s.ClampedAdd(1)
		if s.Min() != math.MaxInt {
			t.Errorf("overflow not saturated: got %d", s.Min())
		}

		g := Greedy(2)
		g.ClampedAdd(4)
		if !g.IsGreedy() || g.Min() != 6 {
			t.Errorf("got %+v, want Greedy(6)", g)
		}
	})

	t.Run("Accumulate", func(t *testing.T) {
		tests := []struct {
			name       string
			acc, other Sizing
			want       Sizing
		}{
			{"static static", Static(3), Static(4), Static(7)},
			{"static greedy", Static(3), Greedy(4), Greedy(7)},
			{"greedy static", Greedy(3), Static(4), Greedy(7)},
			{"greedy greedy", Greedy(3), Greedy(4), Greedy(7)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				acc := tt.acc
				acc.Accumulate(tt.other)
				if acc != tt.want {
					t.Errorf("got %+v, want %+v", acc, tt.want)
				}
			})
		}
	})
}

func TestFitInto(t *testing.T) {
	bounds := NewRect(2, 3, 20, 10)

	tests := []struct {
		name   string
		sizing ItemSizing
		want   Rect
	}{
		{
			"static exact",
			ItemSizing{Horizontal: Static(5), Vertical: Static(4)},
			NewRect(2, 3, 5, 4),
		},
		{
			"static larger than bounds stays exact",
			ItemSizing{Horizontal: Static(30), Vertical: Static(15)},
			NewRect(2, 3, 30, 15),
		},
		{
			"greedy expands to bounds",
			ItemSizing{Horizontal: Greedy(5), Vertical: Greedy(4)},
			NewRect(2, 3, 20, 10),
		},
		{
			"greedy minimum wins when bounds are smaller",
			ItemSizing{Horizontal: Greedy(25), Vertical: Greedy(12)},
			NewRect(2, 3, 25, 12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sizing.FitInto(bounds)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	if got := satAdd(math.MaxInt, 5); got != math.MaxInt {
		t.Errorf("satAdd overflow: got %d", got)
	}
	if got := satAdd(2, 3); got != 5 {
		t.Errorf("satAdd(2,3) = %d", got)
	}
	if got := satSub(3, 5); got != 0 {
		t.Errorf("satSub(3,5) = %d, want 0", got)
	}
	if got := satSub(5, 3); got != 2 {
		t.Errorf("satSub(5,3) = %d, want 2", got)
	}
}
