package workers

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

type ProgressSaver interface {
	Save(ctx context.Context, userID string, progress domain.UserProgress) error
}

// SaveRetryWorker keeps the latest progress snapshot that could not be
// persisted for each user and retries it until the store accepts it.
type SaveRetryWorker struct {
	repo       ProgressSaver
	locks      *UserLocks
	interval   time.Duration
	maxPending int
	log        *zap.SugaredLogger

	mu      sync.Mutex
	pending map[string]domain.UserProgress
}

func NewSaveRetryWorker(repo ProgressSaver, locks *UserLocks, interval time.Duration, maxPending int, log *zap.SugaredLogger) *SaveRetryWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if maxPending <= 0 {
		maxPending = 1000
	}
	return &SaveRetryWorker{
		repo:       repo,
		locks:      locks,
		interval:   interval,
		maxPending: maxPending,
		log:        log,
		pending:    make(map[string]domain.UserProgress),
	}
}

func (w *SaveRetryWorker) Start(ctx context.Context) {
	go func() {
		w.log.Infow("save retry worker started", "interval", w.interval.String())
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Flush(ctx)
			case <-ctx.Done():
				if n := w.Len(); n > 0 {
					w.log.Warnw("save retry worker stopping with unsaved progress", "users", n)
				} else {
					w.log.Info("save retry worker shutting down")
				}
				return
			}
		}
	}()
}

// Enqueue records a snapshot to retry. A newer snapshot for the same user
// replaces the older one. Returns false when the queue is full.
func (w *SaveRetryWorker) Enqueue(userID string, progress domain.UserProgress) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.pending[userID]; !exists && len(w.pending) >= w.maxPending {
		w.log.Errorw("save retry queue full, dropping snapshot", "user_id", userID)
		return false
	}
	w.pending[userID] = progress
	return true
}

// Discard forgets a pending snapshot, used once a newer state was saved.
func (w *SaveRetryWorker) Discard(userID string) {
	w.mu.Lock()
	delete(w.pending, userID)
	w.mu.Unlock()
}

func (w *SaveRetryWorker) Pending(userID string) (domain.UserProgress, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.pending[userID]
	return p, ok
}

func (w *SaveRetryWorker) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Flush attempts every pending snapshot once and returns how many were saved.
func (w *SaveRetryWorker) Flush(ctx context.Context) int {
	w.mu.Lock()
	users := make([]string, 0, len(w.pending))
	for id := range w.pending {
		users = append(users, id)
	}
	w.mu.Unlock()
	sort.Strings(users)

	saved := 0
	for _, userID := range users {
		if ctx.Err() != nil {
			break
		}
		if w.retry(ctx, userID) {
			saved++
		}
	}
	return saved
}

func (w *SaveRetryWorker) retry(ctx context.Context, userID string) bool {
	w.locks.Lock(userID)
	defer w.locks.Unlock(userID)

	progress, ok := w.Pending(userID)
	if !ok {
		return false
	}

	if err := w.repo.Save(ctx, userID, progress); err != nil {
		w.log.Warnw("retrying progress save failed", "user_id", userID, "error", err)
		return false
	}

	w.mu.Lock()
	if cur, ok := w.pending[userID]; ok && cur.Equal(progress) {
		delete(w.pending, userID)
	}
	w.mu.Unlock()

	w.log.Infow("pending progress saved", "user_id", userID, "completed_days", progress.Len())
	return true
}
