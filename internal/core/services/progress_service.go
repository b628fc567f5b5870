package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/workers"
)

type ProgressService struct {
	repo   domain.ProgressRepository
	plans  *PlanService
	locks  *workers.UserLocks
	retry  *workers.SaveRetryWorker
	logger *zap.SugaredLogger
}

func NewProgressService(repo domain.ProgressRepository, plans *PlanService, locks *workers.UserLocks, retry *workers.SaveRetryWorker, logger *zap.SugaredLogger) *ProgressService {
	return &ProgressService{
		repo:   repo,
		plans:  plans,
		locks:  locks,
		retry:  retry,
		logger: logger,
	}
}

type ToggleResult struct {
	Progress  domain.UserProgress `json:"progress"`
	DayID     string              `json:"day_id"`
	Completed bool                `json:"completed"`
	Persisted bool                `json:"persisted"`
}

// Get returns the user's progress. A snapshot still waiting in the retry
// queue is newer than the store and wins.
func (s *ProgressService) Get(ctx context.Context, userID string) (domain.UserProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.UserProgress{}, domain.ErrInvalidUserID
	}

	if p, ok := s.retry.Pending(userID); ok {
		return p, nil
	}

	p, err := s.repo.Load(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, fmt.Errorf("progress service: load failed: %w", err)
	}
	return p, nil
}

// Toggle flips completion for one day and persists the result. A failed save
// keeps the new state in memory, queues it for retry and reports
// Persisted=false instead of an error.
func (s *ProgressService) Toggle(ctx context.Context, userID, dayID string) (*ToggleResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrInvalidUserID
	}
	dayID = strings.TrimSpace(dayID)
	if dayID == "" {
		return nil, domain.ErrInvalidDayID
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := domain.Toggle(current, dayID)
	result := &ToggleResult{
		Progress:  next,
		DayID:     dayID,
		Completed: next.Has(dayID),
		Persisted: true,
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		s.logger.Warnw("progress save failed, queued for retry",
			"user_id", userID, "day_id", dayID, "error", err)
		if !s.retry.Enqueue(userID, next) {
			return nil, fmt.Errorf("progress service: save failed: %w", err)
		}
		result.Persisted = false
		return result, nil
	}

	s.retry.Discard(userID)
	return result, nil
}

func (s *ProgressService) Stats(ctx context.Context, userID string, today time.Time) (*domain.ProgressStats, error) {
	progress, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeStats(s.plans.Plan(), progress, today)
	return &stats, nil
}
