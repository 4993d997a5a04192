package checkin

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kingchappers/arc-check-in/internal/database"
	"github.com/kingchappers/arc-check-in/internal/model"
)

// memStore is a mutex-guarded in-memory Store with the same conditional
// semantics as the Postgres DAO: unique (user, startedAt) on insert, close
// applies only while the row is still open.
type memStore struct {
	mu       sync.Mutex
	nextID   model.ID
	sessions []model.Session
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) FindLatest(_ context.Context, userID string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *model.Session
	for i := range s.sessions {
		sess := &s.sessions[i]
		if sess.UserID != userID {
			continue
		}
		if latest == nil || sess.StartedAt.After(latest.StartedAt) {
			latest = sess
		}
	}

	if latest == nil {
		return model.Session{}, model.NewError("session", model.ErrNotFound)
	}
	return *latest, nil
}

func (s *memStore) InsertOpen(_ context.Context, dto database.InsertSessionDTO) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.UserID != dto.UserID {
			continue
		}
		// Same uniqueness rules as the migrations: one row per (user,
		// startedAt) and at most one open row per user.
		if sess.StartedAt.Equal(dto.StartedAt) || sess.EndedAt == nil {
			return model.Session{}, model.NewError("session", model.ErrExists)
		}
	}

	s.nextID++
	sess := model.Session{
		ID:          s.nextID,
		UserID:      dto.UserID,
		StartedAt:   dto.StartedAt,
		DisplayName: dto.DisplayName,
		Email:       dto.Email,
	}
	s.sessions = append(s.sessions, sess)

	return sess, nil
}

func (s *memStore) Close(_ context.Context, userID string, startedAt, endedAt time.Time) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		sess := &s.sessions[i]
		if sess.UserID == userID && sess.StartedAt.Equal(startedAt) && sess.EndedAt == nil {
			end := endedAt
			sess.EndedAt = &end
			return *sess, nil
		}
	}

	return model.Session{}, model.NewError("session", model.ErrConflict)
}

func (s *memStore) ScanOpen(_ context.Context) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := make([]model.Session, 0)
	for _, sess := range s.sessions {
		if sess.EndedAt == nil {
			open = append(open, sess)
		}
	}

	sort.Slice(open, func(i, j int) bool { return open[i].StartedAt.After(open[j].StartedAt) })

	return open, nil
}

func (s *memStore) ScanRange(_ context.Context, from, to time.Time) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.Session, 0)
	for _, sess := range s.sessions {
		if sess.StartedAt.Before(from) || sess.StartedAt.After(to) {
			continue
		}
		matched = append(matched, sess)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].StartedAt.After(matched[j].StartedAt) })

	return matched, nil
}

func (s *memStore) FindByUser(_ context.Context, userID string, limit int) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.Session, 0)
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			matched = append(matched, sess)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].StartedAt.After(matched[j].StartedAt) })

	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (s *memStore) openCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.EndedAt == nil {
			count++
		}
	}
	return count
}

// staleStore pins FindLatest to a fixed observation so two concurrent
// toggles can be forced to start from the same state.
type staleStore struct {
	Store
	observed model.Session
}

func (s *staleStore) FindLatest(context.Context, string) (model.Session, error) {
	return s.observed, nil
}

// failingStore returns the same error from every operation, standing in for
// a store that is down or timing out.
type failingStore struct {
	err error
}

func (s *failingStore) FindLatest(context.Context, string) (model.Session, error) {
	return model.Session{}, s.err
}

func (s *failingStore) InsertOpen(context.Context, database.InsertSessionDTO) (model.Session, error) {
	return model.Session{}, s.err
}

func (s *failingStore) Close(context.Context, string, time.Time, time.Time) (model.Session, error) {
	return model.Session{}, s.err
}

func (s *failingStore) ScanOpen(context.Context) ([]model.Session, error) {
	return nil, s.err
}

func (s *failingStore) ScanRange(context.Context, time.Time, time.Time) ([]model.Session, error) {
	return nil, s.err
}

func (s *failingStore) FindByUser(context.Context, string, int) ([]model.Session, error) {
	return nil, s.err
}
