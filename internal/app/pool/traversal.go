package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// StepFunc processes the i-th window of an ordered traversal.
type StepFunc[T any] func(ctx context.Context, i int) (T, error)

// TraversalPolicy runs n steps and returns their results in index order. Any step error
// aborts the traversal; partial results are discarded.
type TraversalPolicy interface {
	Name() string
	Limit() int
}

// SequentialPolicy runs one step at a time.
type SequentialPolicy struct{}

// Name identifies the policy in logs.
func (SequentialPolicy) Name() string { return "sequential" }

// Limit is always one.
func (SequentialPolicy) Limit() int { return 1 }

// BoundedPolicy runs up to N steps concurrently and cancels the rest on the first error.
type BoundedPolicy struct {
	N int
}

// Name identifies the policy in logs.
func (BoundedPolicy) Name() string { return "bounded" }

// Limit returns the concurrency bound, never less than one.
func (p BoundedPolicy) Limit() int {
	if p.N < 1 {
		return 1
	}
	return p.N
}

// PolicyFor returns SequentialPolicy for limits <= 1, otherwise a BoundedPolicy.
func PolicyFor(limit int) TraversalPolicy {
	if limit <= 1 {
		return SequentialPolicy{}
	}
	return BoundedPolicy{N: limit}
}

// Traverse runs step for every index in [0, n) under policy and returns the results in
// index order.
func Traverse[T any](ctx context.Context, policy TraversalPolicy, n int, step StepFunc[T]) ([]T, error) {
	if policy == nil {
		policy = SequentialPolicy{}
	}
	results := make([]T, n)

	if policy.Limit() <= 1 {
		for i := 0; i < n; i++ {
			out, err := step(ctx, i)
			if err != nil {
				return nil, err
			}
			results[i] = out
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(policy.Limit())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := step(gctx, i)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
