package checkin

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kingchappers/arc-check-in/internal/database"
	"github.com/kingchappers/arc-check-in/internal/model"
)

const _defaultHistoryLimit = 50

// Store is the session log. *database.SessionDAO is the production
// implementation; tests substitute an in-memory one.
type Store interface {
	FindLatest(ctx context.Context, userID string) (model.Session, error)
	InsertOpen(ctx context.Context, dto database.InsertSessionDTO) (model.Session, error)
	Close(ctx context.Context, userID string, startedAt, endedAt time.Time) (model.Session, error)
	ScanOpen(ctx context.Context) ([]model.Session, error)
	ScanRange(ctx context.Context, from, to time.Time) ([]model.Session, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]model.Session, error)
}

// Attrs are display attributes captured when a session opens. They are for
// reporting only, not identity.
type Attrs struct {
	DisplayName string
	Email       string
}

// Status is the derived open/closed state of a user.
type Status struct {
	Open      bool
	StartedAt *time.Time
}

// Service implements the check-in state machine on top of a Store. It holds
// no session state of its own: open/closed is recomputed from the log on
// every call, so a cached copy can never go stale.
type Service struct {
	logger *slog.Logger
	store  Store
	now    func() time.Time
}

func NewService(logger *slog.Logger, store Store) *Service {
	return &Service{
		logger: logger.With("service", "checkin"),
		store:  store,
		now:    time.Now,
	}
}

// classify folds store I/O and timeout failures into model.ErrUnavailable.
// For mutations the outcome is ambiguous, so callers must re-resolve before
// retrying a toggle.
func classify(err error) error {
	if err != nil && database.IsUnavailable(err) {
		return model.NewError("store", model.ErrUnavailable)
	}
	return err
}

// resolve derives the user's current state from the latest log entry. A user
// with no history is closed.
func (s *Service) resolve(ctx context.Context, userID string) (model.Session, bool, error) {
	latest, err := s.store.FindLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, false, nil
		}
		return model.Session{}, false, classify(err)
	}

	return latest, latest.Open(), nil
}

// Status reports whether the user is currently checked in.
func (s *Service) Status(ctx context.Context, userID string) (Status, error) {
	latest, open, err := s.resolve(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	if !open {
		return Status{Open: false}, nil
	}

	return Status{Open: true, StartedAt: &latest.StartedAt}, nil
}

// Toggle flips the user's state with exactly one store mutation: an insert
// when closed, a conditional close when open. A losing concurrent close
// surfaces as model.ErrConflict and is never retried here; the caller must
// re-resolve before deciding to toggle again, otherwise a replayed request
// could flip the state an extra time.
func (s *Service) Toggle(ctx context.Context, userID string, attrs Attrs) (model.Session, error) {
	latest, open, err := s.resolve(ctx, userID)
	if err != nil {
		return model.Session{}, err
	}

	now := s.now().UTC().Truncate(time.Microsecond)

	if !open {
		session, err := s.store.InsertOpen(ctx, database.InsertSessionDTO{
			UserID:      userID,
			StartedAt:   now,
			DisplayName: attrs.DisplayName,
			Email:       attrs.Email,
		})
		if err != nil {
			if errors.Is(err, model.ErrExists) {
				// Start-time collided with an existing row (clock rounding or
				// a racing open). Same retryable class as a losing close.
				return model.Session{}, model.NewError("session", model.ErrConflict)
			}
			return model.Session{}, classify(err)
		}

		s.logger.Debug("session opened", "userId", userID, "startedAt", session.StartedAt)

		return session, nil
	}

	endedAt := now
	if endedAt.Before(latest.StartedAt) {
		// Clock skew between handlers must not produce ended_at < started_at.
		endedAt = latest.StartedAt
	}

	session, err := s.store.Close(ctx, userID, latest.StartedAt, endedAt)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Session{}, err
		}
		return model.Session{}, classify(err)
	}

	s.logger.Debug("session closed", "userId", userID, "startedAt", session.StartedAt, "endedAt", endedAt)

	return session, nil
}

// History returns the user's most recent sessions, newest first. A
// non-positive limit means the default of 50.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]model.Session, error) {
	if limit <= 0 {
		limit = _defaultHistoryLimit
	}

	sessions, err := s.store.FindByUser(ctx, userID, limit)
	return sessions, classify(err)
}

// ActiveRoster returns everyone currently checked in, newest first.
func (s *Service) ActiveRoster(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.store.ScanOpen(ctx)
	return sessions, classify(err)
}

// RangedHistory returns sessions started within [from, to] inclusive.
func (s *Service) RangedHistory(ctx context.Context, from, to time.Time) ([]model.Session, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil, model.NewError("range", model.ErrInvalidRange)
	}

	sessions, err := s.store.ScanRange(ctx, from, to)
	return sessions, classify(err)
}
