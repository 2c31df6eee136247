// Package collection provides an ordered, slice-backed sequence with the
// list-wide transforms the contact views are built from.
//
// Transforms (Filter, Map, Sorted, Reversed, Take) return new collections and
// never touch the receiver. Append, RemoveWhere and Replace mutate in place.
// A Collection is not safe for concurrent mutation; owners serialize access.
package collection

import (
	"iter"
	"slices"
)

// Collection is an ordered sequence of records of one type.
// The zero value is an empty, ready-to-use collection.
type Collection[T any] struct {
	items []T
}

// New returns an empty collection.
func New[T any]() *Collection[T] {
	return &Collection[T]{}
}

// From returns a collection holding a copy of items in the same order.
func From[T any](items []T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Append adds v at the tail.
func (c *Collection[T]) Append(v T) {
	c.items = append(c.items, v)
}

// At returns the element at position i.
func (c *Collection[T]) At(i int) (T, bool) {
	var zero T
	if c == nil || i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}

// Filter returns a new collection with the elements matching pred, in order.
func (c *Collection[T]) Filter(pred func(T) bool) *Collection[T] {
	out := New[T]()
	for v := range c.All() {
		if pred(v) {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Map returns a new collection of fn applied to every element.
func (c *Collection[T]) Map(fn func(T) T) *Collection[T] {
	return MapTo(c, fn)
}

// Sorted returns a new collection ordered by cmp. The sort is stable:
// elements cmp reports as equal keep their relative order.
func (c *Collection[T]) Sorted(cmp func(a, b T) int) *Collection[T] {
	out := c.Clone()
	slices.SortStableFunc(out.items, cmp)
	return out
}

// Reversed returns a new collection with the order inverted.
func (c *Collection[T]) Reversed() *Collection[T] {
	out := c.Clone()
	slices.Reverse(out.items)
	return out
}

// Take returns a new collection with at most the first n elements.
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n <= 0 {
		return New[T]()
	}
	if n > c.Len() {
		n = c.Len()
	}
	return From(c.items[:n])
}

// RemoveWhere deletes every element matching pred and returns how many were removed.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) int {
	before := c.Len()
	if before == 0 {
		return 0
	}
	c.items = slices.DeleteFunc(c.items, pred)
	return before - len(c.items)
}

// Replace substitutes fn(v) for every element matching pred and returns the
// number of elements replaced.
func (c *Collection[T]) Replace(pred func(T) bool, fn func(T) T) int {
	n := 0
	for i, v := range c.All2() {
		if pred(v) {
			c.items[i] = fn(v)
			n++
		}
	}
	return n
}

// Find returns the first element matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	if i := c.IndexOf(pred); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// IndexOf returns the position of the first element matching pred, or -1.
func (c *Collection[T]) IndexOf(pred func(T) bool) int {
	if c == nil {
		return -1
	}
	return slices.IndexFunc(c.items, pred)
}

// Any reports whether at least one element matches pred.
func (c *Collection[T]) Any(pred func(T) bool) bool {
	return c.IndexOf(pred) >= 0
}

// Clone returns a shallow copy.
func (c *Collection[T]) Clone() *Collection[T] {
	if c == nil {
		return New[T]()
	}
	return From(c.items)
}

// Items returns a copy of the elements as a slice. Never nil.
func (c *Collection[T]) Items() []T {
	if c == nil || len(c.items) == 0 {
		return []T{}
	}
	return slices.Clone(c.items)
}

// All iterates the elements in order.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// All2 iterates positions and elements in order.
func (c *Collection[T]) All2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if c == nil {
			return
		}
		for i, v := range c.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// MapTo returns a new collection of fn applied to every element of c.
func MapTo[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := &Collection[U]{items: make([]U, 0, c.Len())}
	for v := range c.All() {
		out.items = append(out.items, fn(v))
	}
	return out
}

// Reduce folds the elements of c into an accumulator, left to right.
func Reduce[T, A any](c *Collection[T], initial A, fn func(acc A, v T) A) A {
	acc := initial
	for v := range c.All() {
		acc = fn(acc, v)
	}
	return acc
}
