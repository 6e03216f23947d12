package usecase

import (
	"context"
	"fmt"
	"time"

	"conversational-assistant/internal/assistant"
)

type callResult[T any] struct {
	v   T
	err error
}

// callWithTimeout runs fn under a deadline and stops waiting once it passes,
// even when fn ignores its context.
func callWithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	ch := make(chan callResult[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				ch <- callResult[T]{v: zero, err: fmt.Errorf("%w: %v", assistant.ErrCollaboratorPanic, r)}
			}
		}()
		v, err := fn(ctx)
		ch <- callResult[T]{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
