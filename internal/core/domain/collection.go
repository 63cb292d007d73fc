package domain

import "iter"

// Keyed is implemented by values that can derive a stable deduplication key
// from their full structural content.
type Keyed interface {
	DedupKey() string
}

// DeduplicatedCollection is an insertion-ordered set: duplicate values
// (by DedupKey, i.e. full structural equality) collapse to the first
// occurrence, and iteration retains insertion order.
type DeduplicatedCollection[T Keyed] struct {
	items []T
	seen  map[string]struct{}
}

// NewDeduplicatedCollection creates a collection seeded with the given items.
func NewDeduplicatedCollection[T Keyed](items ...T) *DeduplicatedCollection[T] {
	c := &DeduplicatedCollection[T]{seen: make(map[string]struct{})}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add inserts an item, reporting whether it was newly added.
func (c *DeduplicatedCollection[T]) Add(item T) bool {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	key := item.DedupKey()
	if _, dup := c.seen[key]; dup {
		return false
	}
	c.seen[key] = struct{}{}
	c.items = append(c.items, item)
	return true
}

// Len returns the number of distinct items.
func (c *DeduplicatedCollection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the distinct items in insertion order.
func (c *DeduplicatedCollection[T]) Items() []T {
	if c == nil {
		return nil
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// All returns an iterator over the distinct items in insertion order.
func (c *DeduplicatedCollection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}
