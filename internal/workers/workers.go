package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/team-lock/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

const defaultSweepInterval = time.Minute

// ThrottleSweeper periodically clears expired password-attempt records.
type ThrottleSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewThrottleSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *ThrottleSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ThrottleSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *ThrottleSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("throttle sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("throttle sweeper stopped")
			return
		case <-ticker.C:
			s.sweeper.Sweep()
		}
	}
}
