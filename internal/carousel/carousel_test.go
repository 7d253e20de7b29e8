package carousel

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func indices[T any](cards []Card[T]) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Index
	}
	return out
}

func TestClampDepth(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {9, 5},
	}
	for _, tt := range tests {
		if got := ClampDepth(tt.in); got != tt.want {
			t.Errorf("ClampDepth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIndexWrapsBothWays(t *testing.T) {
	d := New([]string{"a", "b", "c"})

	d.Prev()
	if got := d.Index(); got != 2 {
		t.Errorf("Index after Prev = %d, want 2", got)
	}
	if got := d.Direction(); got != -1 {
		t.Errorf("Direction after Prev = %d, want -1", got)
	}

	for range 4 {
		d.Next()
	}
	if got := d.Index(); got != 0 {
		t.Errorf("Index after 4 Next = %d, want 0", got)
	}
	if got := d.Direction(); got != 1 {
		t.Errorf("Direction after Next = %d, want 1", got)
	}
}

func TestStack(t *testing.T) {
	items := []int{10, 11, 12, 13, 14}
	tests := []struct {
		name  string
		depth int
		start int
		want  []int
	}{
		{"default depth", DefaultDepth, 0, []int{0, 1, 2}},
		{"wraps", 3, 4, []int{4, 0, 1}},
		{"negative start", 2, -1, []int{4, 0}},
		{"depth clamped", 8, 1, []int{1, 2, 3, 4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := New(items, WithDepth(tt.depth)).Stack(tt.start)
			if got := indices(cards); !slices.Equal(got, tt.want) {
				t.Errorf("Stack(%d) = %v, want %v", tt.start, got, tt.want)
			}
			for pos, c := range cards {
				if c.Pos != pos || c.Item != items[c.Index] {
					t.Errorf("card %d = %+v", pos, c)
				}
			}
		})
	}
}

func TestStackShorterThanDepth(t *testing.T) {
	d := New([]string{"x", "y"}, WithDepth(4))
	if got := len(d.Stack(0)); got != 2 {
		t.Errorf("len(Stack) = %d, want 2", got)
	}
	if New([]string{}).Stack(0) != nil {
		t.Error("Stack of empty deck is not nil")
	}
}

func TestLanes(t *testing.T) {
	d := New([]int{0, 1, 2, 3}, WithDepth(2))
	d.Next()
	a, b := d.Lanes()
	if got := indices(a); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("first lane = %v, want [1 2]", got)
	}
	if got := indices(b); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("second lane = %v, want [2 3]", got)
	}
}

func TestAutoplay(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, false}, {2, false}, {3, true}, {5, true},
	}
	for _, tt := range tests {
		if got := New(make([]int, tt.n)).Autoplay(); got != tt.want {
			t.Errorf("Autoplay with %d items = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestInterval(t *testing.T) {
	if got := New([]int{1}).Interval(); got != DefaultInterval {
		t.Errorf("Interval = %v, want %v", got, DefaultInterval)
	}
	if got := New([]int{1}, WithInterval(4*time.Second)).Interval(); got != 4*time.Second {
		t.Errorf("Interval = %v, want 4s", got)
	}
	if got := New([]int{1}, WithInterval(-1)).Interval(); got != DefaultInterval {
		t.Errorf("Interval = %v, want default", got)
	}
}

func TestRun(t *testing.T) {
	d := New([]int{0, 1, 2})
	tick := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, tick) }()

	tick <- time.Now()
	tick <- time.Now()
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if got := d.Index(); got != 2 {
		t.Errorf("Index after 2 ticks = %d, want 2", got)
	}
}

func TestRunStillDeck(t *testing.T) {
	d := New([]int{0, 1})
	tick := make(chan time.Time, 2)
	tick <- time.Now()
	tick <- time.Now()
	close(tick)

	if err := d.Run(context.Background(), tick); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
	if got := d.Index(); got != 0 {
		t.Errorf("Index = %d, want 0", got)
	}
}
