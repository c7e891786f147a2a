// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/team-lock/internal/logger"
)

// blockingWorker counts starts and waits for cancellation.
type blockingWorker struct {
	started atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
}

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep() {
	c.calls.Add(1)
}

func TestWorkers_Run_StartsAllAndWaits(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run вернулся до отмены контекста")
	default:
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestWorkers_Run_Empty(t *testing.T) {
	// не должно зависать и паниковать
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

func TestThrottleSweeper_SweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewThrottleSweeper(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	wg.Wait()

	after := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sweeper.calls.Load())
}

func TestNewThrottleSweeper_DefaultInterval(t *testing.T) {
	s := NewThrottleSweeper(&countingSweeper{}, 0, logger.Nop())
	assert.Equal(t, defaultSweepInterval, s.interval)
}
