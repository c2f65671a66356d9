package weld

import "context"

// Future is the value returned by async forwarding methods. It resolves to
// at most one value plus the call's error.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on its own goroutine and returns the future resolving to its
// result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Sync runs fn on the calling goroutine and returns an already-resolved
// future. Generated code uses it when the annotation confines the work to
// the caller.
func Sync[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.value, f.err = fn()
	close(f.done)
	return f
}

// Get blocks until the future resolves
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}

// GetContext blocks until the future resolves or the context is done
func (f *Future[T]) GetContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future resolves
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
