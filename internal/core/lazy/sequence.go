// Package lazy provides a single-pass, pull-driven sequence combinator.
//
// A Sequence produces its elements only while it is being ranged over. Map
// wraps a Sequence with a per-element transform; ranging over a chain of
// Maps pulls one source element through every transform before the next
// source element is requested. Nothing is buffered, and breaking out of the
// loop stops the remaining work.
package lazy

import (
	"iter"

	"go.trai.ch/zerr"
)

// ErrConsumed is yielded when a Sequence is ranged over a second time.
var ErrConsumed = zerr.New("sequence already consumed")

// Sequence is a lazily evaluated, single-pass sequence of T.
// It is not safe for concurrent use.
type Sequence[T any] struct {
	seq      iter.Seq2[T, error]
	consumed bool
}

// New wraps seq. The first error yielded by seq ends the sequence.
func New[T any](seq iter.Seq2[T, error]) *Sequence[T] {
	return &Sequence[T]{seq: seq}
}

// Of returns a Sequence over items.
func Of[T any](items ...T) *Sequence[T] {
	return New(func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	})
}

// Map returns a Sequence that applies fn to each element of src when it is pulled.
// fn runs at most once per element. Constructing the Sequence does not touch src.
func Map[T, U any](src *Sequence[T], fn func(T) (U, error)) *Sequence[U] {
	return New(func(yield func(U, error) bool) {
		var zero U
		for item, err := range src.All() {
			if err != nil {
				yield(zero, err)
				return
			}
			out, err := fn(item)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	})
}

// All returns an iterator over the elements. Iteration stops after the first
// error. The Sequence can be iterated once; later iterations yield ErrConsumed.
func (s *Sequence[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if s.consumed {
			var zero T
			yield(zero, zerr.Wrap(ErrConsumed, "build a new sequence to iterate again"))
			return
		}
		s.consumed = true
		for item, err := range s.seq {
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Collect drains the Sequence into a slice.
// On error it returns the elements produced before the failure.
func (s *Sequence[T]) Collect() ([]T, error) {
	var items []T
	for item, err := range s.All() {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Consumed reports whether iteration has started.
func (s *Sequence[T]) Consumed() bool {
	return s.consumed
}
