// Package fanout runs one function over a slice of items on a small pool of
// worker goroutines and returns the results in input order. The dashboard
// uses it to query every resource collection at once.
package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the Err of an item whose function panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: panic: %v", e.Value)
}

// Run calls fn for every item using at most maxWorkers goroutines; values
// below 1 mean a single worker. Items are handed out in input order.
//
// Once ctx is done, items not yet started are not passed to fn and record
// ctx.Err(). A panic inside fn is recovered and recorded as a *PanicError
// for that item only.
//
// Run blocks until every worker has exited, so no goroutine outlives the
// call. Empty input returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	// Go blocks while the limit is reached, so items start in input order.
	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			results[i] = call(ctx, item, fn)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if err := ctx.Err(); err != nil {
		return Result[R]{Err: err}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v}}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
