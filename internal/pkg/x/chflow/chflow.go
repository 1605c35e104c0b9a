// Package chflow holds small context-aware channel helpers: every blocking
// channel operation also returns as soon as the context is done.
package chflow

import "context"

// Receive reads one value from ch. ok is false when ctx is done first or ch
// is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send writes v to ch and reports whether it was delivered before ctx was
// done.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// Forward pipes the values of in to out through convert until in is closed
// or ctx is done. Values for which convert returns false are dropped. out is
// not closed.
func Forward[T, U any](ctx context.Context, in <-chan T, out chan<- U, convert func(T) (U, bool)) {
	for {
		v, ok := Receive(ctx, in)
		if !ok {
			return
		}

		converted, keep := convert(v)
		if !keep {
			continue
		}

		if !Send(ctx, out, converted) {
			return
		}
	}
}
