package resilience

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Flight deduplicates concurrent loads of the same key, such as provider
// fetches for one route or cache fills for one entity.
type Flight[T any] struct {
	group singleflight.Group
}

// Do runs fn once per key among concurrent callers. A caller stops waiting
// when ctx is done; the in-flight call keeps running for the others. The
// bool reports whether the result was shared.
func (f *Flight[T]) Do(ctx context.Context, key string, fn func() (T, error)) (T, bool, error) {
	ch := f.group.DoChan(key, func() (any, error) {
		return fn()
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		out, _ := res.Val.(T)
		return out, res.Shared, nil
	}
}
