package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/playerdata/pkg/game/types"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/cbodonnell/playerdata/pkg/repositories"
)

// flushTimeout bounds the final save made after the worker is cancelled.
const flushTimeout = 5 * time.Second

// SavePlayerDataWorker persists profile snapshots off the game loop.
// Requests carry copies, so the worker never shares memory with the scene.
type SavePlayerDataWorker struct {
	repository   repositories.Repository
	saveDataChan <-chan SavePlayerDataRequest
	slot         string
	interval     time.Duration

	// pending is the newest snapshot not yet written.
	pending *types.PlayerData
}

type NewSavePlayerDataWorkerOptions struct {
	Repository   repositories.Repository
	SaveDataChan <-chan SavePlayerDataRequest
	Slot         string
	Interval     time.Duration
}

type SavePlayerDataRequest struct {
	Timestamp  int64
	// PlayerData is the snapshot to write. Nil discards the pending snapshot.
	PlayerData *types.PlayerData
	// Immediate writes the snapshot now instead of on the next tick.
	Immediate bool
}

// NewSavePlayerDataWorker creates a new SavePlayerDataWorker.
// The worker keeps the newest snapshot received from the game loop and
// periodically writes it to the repository.
func NewSavePlayerDataWorker(opts NewSavePlayerDataWorkerOptions) *SavePlayerDataWorker {
	return &SavePlayerDataWorker{
		repository:   opts.Repository,
		saveDataChan: opts.SaveDataChan,
		slot:         opts.Slot,
		interval:     opts.Interval,
	}
}

// Start blocks until ctx is cancelled, then writes any pending snapshot.
func (w *SavePlayerDataWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
			w.flush(flushCtx)
			cancel()
			return
		case saveRequest := <-w.saveDataChan:
			if saveRequest.PlayerData == nil {
				// a request without a snapshot drops the pending one
				w.pending = nil
				continue
			}
			w.pending = saveRequest.PlayerData
			if saveRequest.Immediate {
				w.flush(ctx)
			}
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *SavePlayerDataWorker) flush(ctx context.Context) {
	if w.pending == nil {
		return
	}
	if err := w.repository.SavePlayerData(ctx, w.slot, w.pending); err != nil {
		log.Error("Failed to save player data: %v", err)
		return
	}
	log.Debug("Autosaved player data %s", w.pending.ID)
	w.pending = nil
}
