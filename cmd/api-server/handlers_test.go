package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingchappers/arc-check-in/internal/checkin"
	"github.com/kingchappers/arc-check-in/internal/ctxstore"
	"github.com/kingchappers/arc-check-in/internal/database"
	"github.com/kingchappers/arc-check-in/internal/identity"
	"github.com/kingchappers/arc-check-in/internal/model"
)

// stubStore lets a handler test script each store operation. Unset
// operations report an empty log.
type stubStore struct {
	findLatest func(ctx context.Context, userID string) (model.Session, error)
	insertOpen func(ctx context.Context, dto database.InsertSessionDTO) (model.Session, error)
	close      func(ctx context.Context, userID string, startedAt, endedAt time.Time) (model.Session, error)
}

func (s *stubStore) FindLatest(ctx context.Context, userID string) (model.Session, error) {
	if s.findLatest == nil {
		return model.Session{}, model.NewError("session", model.ErrNotFound)
	}
	return s.findLatest(ctx, userID)
}

func (s *stubStore) InsertOpen(ctx context.Context, dto database.InsertSessionDTO) (model.Session, error) {
	if s.insertOpen == nil {
		return model.Session{UserID: dto.UserID, StartedAt: dto.StartedAt}, nil
	}
	return s.insertOpen(ctx, dto)
}

func (s *stubStore) Close(ctx context.Context, userID string, startedAt, endedAt time.Time) (model.Session, error) {
	if s.close == nil {
		return model.Session{}, model.NewError("session", model.ErrConflict)
	}
	return s.close(ctx, userID, startedAt, endedAt)
}

func (s *stubStore) ScanOpen(context.Context) ([]model.Session, error) {
	return []model.Session{}, nil
}

func (s *stubStore) ScanRange(context.Context, time.Time, time.Time) ([]model.Session, error) {
	return []model.Session{}, nil
}

func (s *stubStore) FindByUser(context.Context, string, int) ([]model.Session, error) {
	return []model.Session{}, nil
}

func (app *application) withStore(store checkin.Store) *application {
	app.newStore = func(*slog.Logger) checkin.Store { return store }
	return app
}

func identifiedRequest(method, target string, ident identity.Identity) *http.Request {
	r := tracedRequest(method, target, "")
	return r.WithContext(ctxstore.With(r.Context(), _identityKey, ident))
}

func TestHandleStatus(t *testing.T) {
	app := newTestApp()

	w := httptest.NewRecorder()
	app.handleStatus(w, tracedRequest(http.MethodGet, "/api/v1/status", ""))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}

func TestHandleHistoryRejectsBadLimit(t *testing.T) {
	app := newTestApp()
	ident := identity.Identity{Subject: "vol-1"}

	for _, limit := range []string{"-1", "9999"} {
		w := httptest.NewRecorder()
		r := identifiedRequest(http.MethodGet, "/api/v1/checkin/history?limit="+limit, ident)
		app.handleHistory(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "limit=%s", limit)
	}
}

func TestHandleRangedHistoryRejectsBadBounds(t *testing.T) {
	app := newTestApp().withStore(&stubStore{})
	ident := identity.Identity{Subject: "adm-1", Roles: []string{identity.RoleAdmin}}

	tests := []struct {
		name  string
		query url.Values
	}{
		{name: "missing both"},
		{
			name:  "missing end",
			query: url.Values{"start": {"2026-03-01 09:00:00 UTC"}},
		},
		{
			name:  "unparseable start",
			query: url.Values{"start": {"yesterday"}, "end": {"2026-03-01 09:00:00 UTC"}},
		},
		{
			name: "start after end",
			query: url.Values{
				"start": {"2026-03-02 09:00:00 UTC"},
				"end":   {"2026-03-01 09:00:00 UTC"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := identifiedRequest(http.MethodGet, "/api/v1/admin/history?"+tt.query.Encode(), ident)
			app.handleRangedHistory(w, r)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func identifiedJSONRequest(method, target, body string, ident identity.Identity) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r = r.WithContext(ctxstore.With(r.Context(), _traceIDKey, "test-trace"))
	return r.WithContext(ctxstore.With(r.Context(), _identityKey, ident))
}

func TestHandleToggleBodyOverridesClaims(t *testing.T) {
	ident := identity.Identity{Subject: "vol-1", Name: "Token Name", Email: "token@example.com"}

	var got database.InsertSessionDTO
	store := &stubStore{
		insertOpen: func(_ context.Context, dto database.InsertSessionDTO) (model.Session, error) {
			got = dto
			return model.Session{
				UserID:      dto.UserID,
				StartedAt:   dto.StartedAt,
				DisplayName: dto.DisplayName,
				Email:       dto.Email,
			}, nil
		},
	}

	app := newTestApp().withStore(store)

	w := httptest.NewRecorder()
	body := `{"displayName": "Front Desk", "email": "desk@example.com"}`
	app.handleToggle(w, identifiedJSONRequest(http.MethodPost, "/api/v1/checkin", body, ident))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vol-1", got.UserID)
	assert.Equal(t, "Front Desk", got.DisplayName)
	assert.Equal(t, "desk@example.com", got.Email)
}

func TestHandleToggleNoBodyUsesClaims(t *testing.T) {
	ident := identity.Identity{Subject: "vol-1", Name: "Token Name", Email: "token@example.com"}

	var got database.InsertSessionDTO
	store := &stubStore{
		insertOpen: func(_ context.Context, dto database.InsertSessionDTO) (model.Session, error) {
			got = dto
			return model.Session{UserID: dto.UserID, StartedAt: dto.StartedAt}, nil
		},
	}

	app := newTestApp().withStore(store)

	w := httptest.NewRecorder()
	app.handleToggle(w, identifiedRequest(http.MethodPost, "/api/v1/checkin", ident))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Token Name", got.DisplayName)
	assert.Equal(t, "token@example.com", got.Email)
}

func TestHandleToggleRejectsBadBody(t *testing.T) {
	ident := identity.Identity{Subject: "vol-1"}
	app := newTestApp().withStore(&stubStore{})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"displayName":`},
		{name: "unknown field", body: `{"badge": "B-17"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			app.handleToggle(w, identifiedJSONRequest(http.MethodPost, "/api/v1/checkin", tt.body, ident))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleToggleConflict(t *testing.T) {
	startedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	store := &stubStore{
		findLatest: func(context.Context, string) (model.Session, error) {
			return model.Session{UserID: "vol-1", StartedAt: startedAt}, nil
		},
		close: func(context.Context, string, time.Time, time.Time) (model.Session, error) {
			return model.Session{}, model.NewError("session", model.ErrConflict)
		},
	}

	app := newTestApp().withStore(store)
	ident := identity.Identity{Subject: "vol-1"}

	w := httptest.NewRecorder()
	app.handleToggle(w, identifiedRequest(http.MethodPost, "/api/v1/checkin", ident))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleCheckinStatusUnavailable(t *testing.T) {
	store := &stubStore{
		findLatest: func(context.Context, string) (model.Session, error) {
			return model.Session{}, context.DeadlineExceeded
		},
	}

	app := newTestApp().withStore(store)
	ident := identity.Identity{Subject: "vol-1"}

	w := httptest.NewRecorder()
	app.handleCheckinStatus(w, identifiedRequest(http.MethodGet, "/api/v1/checkin", ident))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
