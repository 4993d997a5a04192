package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/kingchappers/arc-check-in/internal/model"
)

type SessionDAO struct {
	Logger *slog.Logger
	*DB
}

func NewSessionDAO(logger *slog.Logger, db *DB) *SessionDAO {
	return &SessionDAO{
		Logger: logger.With("dao", "session"),
		DB:     db,
	}
}

// FindLatest returns the most recently started session for the user,
// open or not. model.ErrNotFound if the user has never checked in.
func (dao *SessionDAO) FindLatest(ctx context.Context, userID string) (model.Session, error) {
	logger := dao.Logger.With("query", "findLatest")

	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Session{}, err
	}

	return session, nil
}

type InsertSessionDTO struct {
	UserID      string
	StartedAt   time.Time
	DisplayName string
	Email       string
}

// InsertOpen creates a new open session. The unique (user_id, started_at)
// constraint catches start-time collisions and the partial unique index on
// open rows rejects a racing second open, so either race surfaces as
// model.ErrExists instead of a corrupted log.
func (dao *SessionDAO) InsertOpen(ctx context.Context, dto InsertSessionDTO) (model.Session, error) {
	logger := dao.Logger.With("query", "insertOpen")

	query, args, err := dao.Builder.
		Insert("sessions").
		Columns("user_id", "started_at", "display_name", "email").
		Values(dto.UserID, dto.StartedAt, dto.DisplayName, dto.Email).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return model.Session{}, model.NewError("session", model.ErrExists)
		}

		return model.Session{}, err
	}

	logger.Debug("success query execute", "insertId", session.ID)

	return session, nil
}

// Close sets ended_at on the identified session only if it is still open.
// The WHERE ended_at IS NULL predicate is the compare-and-set: a concurrent
// close makes the update match zero rows, reported as model.ErrConflict.
func (dao *SessionDAO) Close(ctx context.Context, userID string, startedAt, endedAt time.Time) (model.Session, error) {
	logger := dao.Logger.With("query", "close")

	query, args, err := dao.Builder.
		Update("sessions").
		SetMap(map[string]any{
			"ended_at":   endedAt,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"started_at": startedAt}).
		Where("ended_at IS NULL").
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var session model.Session
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&session); err != nil {
		if IsNoRows(err) {
			return model.Session{}, model.NewError("session", model.ErrConflict)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Session{}, err
	}

	logger.Debug("success query execute", "closeId", session.ID)

	return session, nil
}

// ScanOpen returns every session that has not been checked out, newest
// first.
func (dao *SessionDAO) ScanOpen(ctx context.Context) ([]model.Session, error) {
	logger := dao.Logger.With("query", "scanOpen")

	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where("ended_at IS NULL").
		OrderBy("started_at DESC").
		ToSql()
	if err != nil {
		return []model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	sessions := make([]model.Session, 0)
	if err := dao.SelectContext(ctx, &sessions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return []model.Session{}, err
	}

	logger.Debug("success query execute", "countSessions", len(sessions))

	return sessions, nil
}

// ScanRange returns sessions with started_at in [from, to], newest first.
func (dao *SessionDAO) ScanRange(ctx context.Context, from, to time.Time) ([]model.Session, error) {
	logger := dao.Logger.With("query", "scanRange")

	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.GtOrEq{"started_at": from}).
		Where(squirrel.LtOrEq{"started_at": to}).
		OrderBy("started_at DESC").
		ToSql()
	if err != nil {
		return []model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	sessions := make([]model.Session, 0)
	if err := dao.SelectContext(ctx, &sessions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return []model.Session{}, err
	}

	logger.Debug("success query execute", "countSessions", len(sessions))

	return sessions, nil
}

// FindByUser returns the user's most recent sessions, newest first.
func (dao *SessionDAO) FindByUser(ctx context.Context, userID string, limit int) ([]model.Session, error) {
	logger := dao.Logger.With("query", "findByUser")

	query, args, err := dao.Builder.
		Select("*").
		From("sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return []model.Session{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	sessions := make([]model.Session, 0, limit)
	if err := dao.SelectContext(ctx, &sessions, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return []model.Session{}, err
	}

	logger.Debug("success query execute", "countSessions", len(sessions))

	return sessions, nil
}
