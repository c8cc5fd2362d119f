// SPDX-License-Identifier: MIT

package workpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/internal/workpool"
)

func TestSplit(t *testing.T) {
	spans := workpool.Split(10, 3)
	require.Equal(t, []workpool.Span{{0, 4}, {4, 7}, {7, 10}}, spans)

	var lens []int
	for _, s := range workpool.Split(11, 4) {
		lens = append(lens, s.Len())
	}
	require.Equal(t, []int{3, 3, 3, 2}, lens, "the remainder goes to the leading spans")

	require.Len(t, workpool.Split(2, 5), 2)
	require.Nil(t, workpool.Split(0, 4))
	require.Nil(t, workpool.Split(4, 0))

	total := 0
	for _, s := range workpool.Split(1001, 7) {
		total += s.Len()
	}
	require.Equal(t, 1001, total)
}

func TestRun_AllTasksComplete(t *testing.T) {
	var sum atomic.Int64
	tasks := make([]workpool.Task, 50)
	for i := range tasks {
		i := i
		tasks[i] = func(context.Context) error {
			sum.Add(int64(i))
			return nil
		}
	}
	require.NoError(t, workpool.Run(context.Background(), 4, tasks...))
	require.Equal(t, int64(49*50/2), sum.Load())
}

func TestRun_LimitsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	tasks := make([]workpool.Task, 20)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			cur := running.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			running.Add(-1)
			return nil
		}
	}
	require.NoError(t, workpool.Run(context.Background(), 3, tasks...))
	require.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRun_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	err := workpool.Run(context.Background(), 2,
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
	)
	require.ErrorIs(t, err, boom)

	err = workpool.Run(context.Background(), 1,
		func(context.Context) error { return boom },
		func(context.Context) error { t.Fatal("must not run after failure"); return nil },
	)
	require.ErrorIs(t, err, boom)
}

func TestRun_BadWorkers(t *testing.T) {
	require.ErrorIs(t, workpool.Run(context.Background(), 0), workpool.ErrBadWorkers)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := workpool.Run(ctx, 1, func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
