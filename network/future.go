package network

import "context"

type futureResult[T any] struct {
	val T
	err error
}

// Future is a request running on its own goroutine. Scenes poll it from
// Update so results are applied on the game loop.
type Future[T any] struct {
	ch   chan futureResult[T]
	done bool
	val  T
	err  error
}

// Async runs fn in a goroutine.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{ch: make(chan futureResult[T], 1)}
	go func() {
		v, err := fn(ctx)
		f.ch <- futureResult[T]{val: v, err: err}
	}()
	return f
}

// Ready reports, without blocking, whether the result is available.
func (f *Future[T]) Ready() bool {
	if f == nil {
		return false
	}
	if f.done {
		return true
	}
	select {
	case r := <-f.ch:
		f.val, f.err, f.done = r.val, r.err, true
		return true
	default:
		return false
	}
}

// Result returns the value once Ready is true.
func (f *Future[T]) Result() (T, error) {
	return f.val, f.err
}
