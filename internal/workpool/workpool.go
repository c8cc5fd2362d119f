// SPDX-License-Identifier: MIT

// Package workpool runs independent tasks on a bounded set of goroutines
// and joins on all of them.
package workpool

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrBadWorkers is returned when the worker limit is not positive.
var ErrBadWorkers = errors.New("workpool: workers must be positive")

// Task is one unit of work. It should return promptly once ctx is done.
type Task func(ctx context.Context) error

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (s Span) Len() int { return s.Hi - s.Lo }

// Run executes tasks with at most workers running concurrently and blocks
// until every started task has returned. The first error cancels the
// context shared by the remaining tasks and is returned; tasks not yet
// started when ctx is cancelled are skipped.
//
// workers == 1 runs the tasks in order on the calling goroutine.
func Run(ctx context.Context, workers int, tasks ...Task) error {
	if workers <= 0 {
		return ErrBadWorkers
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers == 1 || len(tasks) <= 1 {
		for _, t := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := t(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return t(gctx)
		})
	}

	return g.Wait()
}

// Split partitions [0, total) into at most parts contiguous spans. The
// first total%parts spans hold one extra element; empty spans are omitted.
func Split(total, parts int) []Span {
	if total <= 0 || parts <= 0 {
		return nil
	}
	if parts > total {
		parts = total
	}
	per, rem := total/parts, total%parts
	spans := make([]Span, 0, parts)
	lo := 0
	for w := 0; w < parts; w++ {
		size := per
		if w < rem {
			size++
		}
		spans = append(spans, Span{Lo: lo, Hi: lo + size})
		lo += size
	}

	return spans
}
