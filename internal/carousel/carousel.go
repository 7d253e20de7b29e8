// Package carousel implements the stacked values carousel: a wrapping index
// over a fixed set of cards, shown as two lanes of stacked cards.
package carousel

import (
	"context"
	"sync"
	"time"
)

// Defaults of a Deck.
const (
	DefaultInterval = 3800 * time.Millisecond
	DefaultDepth    = 3
	MinDepth        = 1
	MaxDepth        = 5
)

// Card is one entry of a stack: the item, its index in the deck and its
// position in the stack (0 is on top).
type Card[T any] struct {
	Item  T
	Index int
	Pos   int
}

// Deck is a wrapping cursor over items. It is safe for concurrent use.
type Deck[T any] struct {
	mu        sync.Mutex
	items     []T
	index     int
	direction int
	depth     int
	interval  time.Duration
}

// Option configures a Deck.
type Option func(*config)

type config struct {
	depth    int
	interval time.Duration
}

// WithDepth sets the stack depth, clamped to [MinDepth, MaxDepth].
func WithDepth(n int) Option {
	return func(c *config) { c.depth = n }
}

// WithInterval sets the autoplay interval. Non-positive values keep the
// default.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// New creates a deck over items. The slice is not copied.
func New[T any](items []T, opts ...Option) *Deck[T] {
	c := config{depth: DefaultDepth, interval: DefaultInterval}
	for _, opt := range opts {
		opt(&c)
	}
	return &Deck[T]{
		items:     items,
		direction: 1,
		depth:     ClampDepth(c.depth),
		interval:  c.interval,
	}
}

// ClampDepth limits n to [MinDepth, MaxDepth].
func ClampDepth(n int) int {
	return max(MinDepth, min(MaxDepth, n))
}

// Len returns the number of items.
func (d *Deck[T]) Len() int { return len(d.items) }

// Depth returns the clamped stack depth.
func (d *Deck[T]) Depth() int { return d.depth }

// Interval returns the autoplay interval.
func (d *Deck[T]) Interval() time.Duration { return d.interval }

// Autoplay reports whether the deck advances on its own. Decks of two
// items or fewer show everything at once and stay still.
func (d *Deck[T]) Autoplay() bool { return len(d.items) > 2 }

// Index returns the current index wrapped into [0, Len).
func (d *Deck[T]) Index() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.safeIndex()
}

func (d *Deck[T]) safeIndex() int {
	n := len(d.items)
	if n == 0 {
		return 0
	}
	return ((d.index % n) + n) % n
}

// Direction returns 1 after Next and -1 after Prev.
func (d *Deck[T]) Direction() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.direction
}

// Next moves forward one card.
func (d *Deck[T]) Next() {
	d.mu.Lock()
	d.direction = 1
	d.index++
	d.mu.Unlock()
}

// Prev moves back one card.
func (d *Deck[T]) Prev() {
	d.mu.Lock()
	d.direction = -1
	d.index--
	d.mu.Unlock()
}

// Stack returns up to Depth cards starting at start, wrapping around.
func (d *Deck[T]) Stack(start int) []Card[T] {
	n := len(d.items)
	if n == 0 {
		return nil
	}
	count := min(d.depth, n)
	out := make([]Card[T], count)
	for pos := range count {
		i := ((start+pos)%n + n) % n
		out[pos] = Card[T]{Item: d.items[i], Index: i, Pos: pos}
	}
	return out
}

// Lanes returns the two stacks on screen: one starting at the current
// index and one at the card after it.
func (d *Deck[T]) Lanes() (first, second []Card[T]) {
	i := d.Index()
	return d.Stack(i), d.Stack(i + 1)
}

// Run calls Next on every tick while the deck autoplays. It returns when
// ctx is done or tick is closed.
func (d *Deck[T]) Run(ctx context.Context, tick <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-tick:
			if !ok {
				return nil
			}
			if d.Autoplay() {
				d.Next()
			}
		}
	}
}
