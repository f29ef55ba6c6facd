package lifecycle

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
)

// Worker moves sandbox tournaments through their statuses as their dates pass.
type Worker struct {
	store     repositories.GameStore
	pollEvery time.Duration
	now       func() time.Time
}

func NewWorker(store repositories.GameStore, pollEvery time.Duration) *Worker {
	if pollEvery <= 0 {
		pollEvery = 30 * time.Second
	}
	return &Worker{store: store, pollEvery: pollEvery, now: time.Now}
}

// Run ticks until ctx is done. The first pass runs immediately.
func (w *Worker) Run(ctx context.Context) {
	log.Info().Dur("poll_every", w.pollEvery).Msg("lifecycle worker: started")
	t := time.NewTicker(w.pollEvery)
	defer t.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("lifecycle worker: stopping")
			return
		case <-t.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	changed, err := w.store.AdvanceTournaments(ctx, w.now())
	if err != nil {
		log.Error().Err(err).Msg("lifecycle worker: advance failed")
		return
	}
	if changed > 0 {
		log.Info().Int("changed", changed).Msg("lifecycle worker: tournaments advanced")
	}
}
