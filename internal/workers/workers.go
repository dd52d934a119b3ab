package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{workers: []Worker{
		NewSessionPurger(storages.SessionRepository, cfg.SessionPurgeInterval, logger),
	}}
}

// Run starts each worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
