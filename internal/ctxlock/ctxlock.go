// Package ctxlock takes locks unless a context is done first.
package ctxlock

import "context"

/*
Acquire calls lock and returns nil once it returns, or the context error
if ctx is done first. In that case the lock is released with unlock as
soon as it is obtained, so callers only unlock after a nil error.
*/
func Acquire(ctx context.Context, lock, unlock func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locked := make(chan struct{})
	go func() {
		lock()
		select {
		case locked <- struct{}{}:
		case <-ctx.Done():
			unlock()
		}
	}()
	select {
	case <-locked:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
