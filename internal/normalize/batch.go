package normalize

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
)

// Failure is one item that could not be mapped inside a batch.
type Failure struct {
	ID  string
	Err error
}

// Result holds the mapped items in input order together with the failures.
type Result[T any] struct {
	Items    []T
	Failures []Failure
}

// AllFailed reports whether a non-empty batch produced nothing.
func (r Result[T]) AllFailed() bool {
	return len(r.Items) == 0 && len(r.Failures) > 0
}

type slot[T any] struct {
	value T
	err   error
}

// collect maps every item, on the pool when one is configured. Output order
// always matches input order.
func collect[S, T any](pool *ants.Pool, items []S, id func(S) string, fn func(S) (T, error)) Result[T] {
	slots := make([]slot[T], len(items))

	if pool == nil || len(items) < 2 {
		for i, item := range items {
			slots[i].value, slots[i].err = fn(item)
		}
	} else {
		var wg sync.WaitGroup
		for i, item := range items {
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				slots[i].value, slots[i].err = fn(item)
			})
			if err != nil {
				wg.Done()
				slots[i].value, slots[i].err = fn(item)
			}
		}
		wg.Wait()
	}

	out := Result[T]{Items: make([]T, 0, len(items))}
	for i, s := range slots {
		if s.err != nil {
			out.Failures = append(out.Failures, Failure{ID: id(items[i]), Err: s.err})
			continue
		}
		out.Items = append(out.Items, s.value)
	}
	return out
}

func (m *Mapper) logFailures(ctx context.Context, entity string, failures []Failure) {
	for _, failure := range failures {
		kind, _ := KindOf(failure.Err)
		m.logger.WarnContext(ctx, "skipping unmappable "+entity,
			entity+"_id", failure.ID,
			"kind", string(kind),
			"error", failure.Err,
		)
	}
}

func failureSummary(failures []Failure) string {
	return fmt.Sprintf("%d mapping error(s) occurred", len(failures))
}

func firstCause(failures []Failure) error {
	if len(failures) == 0 {
		return nil
	}
	return failures[0].Err
}

// joinFailures folds batch failures into one error for the all-failed case.
func joinFailures(failures []Failure) error {
	errs := make([]error, 0, len(failures))
	for _, failure := range failures {
		errs = append(errs, failure.Err)
	}
	return crerr.Join(errs...)
}
