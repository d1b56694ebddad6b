package tree

import "iter"

// Filter reports whether a traversal candidate should appear in the output.
// Filters are expected to be stateless, side-effect-free, and cheap: a
// filter runs once per candidate per traversal.
type Filter[T any] func(T) bool

// Selector maps a candidate to a projected result. Same expectations as
// Filter.
type Selector[T, R any] func(T) R

// And returns a filter that passes when every given filter passes.
func And[T any](fs ...Filter[T]) Filter[T] {
	return func(v T) bool {
		for _, f := range fs {
			if !f(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a filter that passes when any given filter passes.
func Or[T any](fs ...Filter[T]) Filter[T] {
	return func(v T) bool {
		for _, f := range fs {
			if f(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts a filter.
func Not[T any](f Filter[T]) Filter[T] {
	return func(v T) bool {
		return !f(v)
	}
}

// Filtered restricts seq to candidates that pass keep. When seq is a
// traversal, filtering affects output membership only: the traversal still
// descends through non-matching nodes, so their descendants remain
// candidates.
func Filtered[T any](seq iter.Seq[T], keep Filter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Filtered2 is Filtered for key/value pair sequences, for predicates over
// keyed-tree pairs.
func Filtered2[K, V any](seq iter.Seq2[K, V], keep func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			if keep(k, v) && !yield(k, v) {
				return
			}
		}
	}
}

// Selected projects every element of seq through sel.
func Selected[T, R any](seq iter.Seq[T], sel Selector[T, R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(sel(v)) {
				return
			}
		}
	}
}

// FilterSelect filters first, then projects the survivors.
func FilterSelect[T, R any](seq iter.Seq[T], keep Filter[T], sel Selector[T, R]) iter.Seq[R] {
	return Selected(Filtered(seq, keep), sel)
}
