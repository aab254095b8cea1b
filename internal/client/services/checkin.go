package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/client/repositories/checkins"
	"github.com/dmitrijs2005/mindful/internal/logging"
	"github.com/google/uuid"
)

// CheckInService stores and reads journal records.
type CheckInService interface {
	// Save validates c, assigns a fresh identifier (and the current time when
	// c.Timestamp is zero) and appends it. It returns the stored record.
	Save(ctx context.Context, c models.CheckIn) (models.CheckIn, error)

	// History returns the records of userID, newest first. Unreadable data
	// yields an empty history.
	History(ctx context.Context, userID string) ([]models.CheckIn, error)

	// SeedInitialData inserts sample records for a first-time user. It
	// reports whether anything was written.
	SeedInitialData(ctx context.Context, userID string) (bool, error)
}

type checkInService struct {
	repo   checkins.Repository
	scope  checkins.SeedScope
	delay  Latency
	now    func() time.Time
	logger logging.Logger
}

type CheckInOption func(*checkInService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CheckInOption {
	return func(s *checkInService) { s.now = now }
}

func WithSeedScope(scope checkins.SeedScope) CheckInOption {
	return func(s *checkInService) { s.scope = scope }
}

func NewCheckInService(repo checkins.Repository, delay Latency, logger logging.Logger, opts ...CheckInOption) CheckInService {
	s := &checkInService{
		repo:   repo,
		scope:  checkins.ScopeGlobal,
		delay:  delay,
		now:    time.Now,
		logger: logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *checkInService) Save(ctx context.Context, c models.CheckIn) (models.CheckIn, error) {
	if err := c.Validate(); err != nil {
		return models.CheckIn{}, err
	}
	if err := wait(ctx, s.delay.Save); err != nil {
		return models.CheckIn{}, err
	}

	c.ID = uuid.NewString()
	if c.Timestamp == 0 {
		c.Timestamp = models.Millis(s.now())
	}

	if err := s.repo.Append(ctx, c); err != nil {
		return models.CheckIn{}, fmt.Errorf("saving error: %w", err)
	}

	s.logger.Debug(ctx, "check-in saved", "id", c.ID, "uid", c.UserID)
	return c, nil
}

func (s *checkInService) History(ctx context.Context, userID string) ([]models.CheckIn, error) {
	if err := wait(ctx, s.delay.History); err != nil {
		return nil, err
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		s.logger.Warn(ctx, "check-in data unreadable, showing empty history", "error", err)
		return []models.CheckIn{}, nil
	}

	history := make([]models.CheckIn, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			history = append(history, c)
		}
	}

	slices.SortStableFunc(history, func(a, b models.CheckIn) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})
	return history, nil
}

func (s *checkInService) SeedInitialData(ctx context.Context, userID string) (bool, error) {
	seeded, err := s.repo.SeedIfEmpty(ctx, s.scope, userID, SampleCheckIns(userID, s.now()))
	if err != nil {
		return false, fmt.Errorf("seeding error: %w", err)
	}
	if seeded {
		s.logger.Info(ctx, "sample data seeded", "uid", userID, "scope", string(s.scope))
	}
	return seeded, nil
}
