package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kingchappers/arc-check-in/internal/checkin"
	"github.com/kingchappers/arc-check-in/internal/ctxstore"
	"github.com/kingchappers/arc-check-in/internal/model"
	"github.com/kingchappers/arc-check-in/internal/request"
	"github.com/kingchappers/arc-check-in/internal/response"
	"github.com/kingchappers/arc-check-in/internal/validator"
)

func (app *application) sessionService(logger *slog.Logger) *checkin.Service {
	return checkin.NewService(logger, app.newStore(logger))
}

func (app *application) requestLogger(r *http.Request) *slog.Logger {
	return app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](r.Context(), _traceIDKey),
	)
}

// Handle Status
// @Summary Server Status
// @Description Check if the server is up and running
// @Tags api
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Check-In Status
// @Summary Check-In Status
// @Description Whether the caller is currently checked in
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseStatus
// @Failure 401 {object} any "Not authenticated"
// @Failure 500 {object} any "Internal server error"
// @Router /checkin [get]
func (app *application) handleCheckinStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := identityFromRequest(r)

	svc := app.sessionService(app.requestLogger(r))

	status, err := svc.Status(ctx, ident.Subject)
	if err != nil {
		app.storeError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseStatus(status)); err != nil {
		app.serverError(w, r, err)
	}
}

type responseStatus struct {
	Open      bool       `json:"open"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
}

// Handle Toggle
// @Summary Toggle Check-In
// @Description Check the caller in, or out if they are already in
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body main.requestToggle false "Display attribute overrides"
// @Success 200 {object} main.responseToggle
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 409 {object} any "Concurrent toggle lost the race"
// @Failure 500 {object} any "Internal server error"
// @Router /checkin [post]
func (app *application) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := identityFromRequest(r)
	logger := app.requestLogger(r)

	// Display attributes default to the token claims; an optional body may
	// override them (e.g. a kiosk checking a volunteer in by name).
	attrs := checkin.Attrs{
		DisplayName: ident.Name,
		Email:       ident.Email,
	}

	if r.ContentLength != 0 {
		var input requestToggle
		if err := request.DecodeJSONStrict(w, r, &input); err != nil {
			app.badRequest(w, r, err)
			return
		}

		if input.DisplayName != nil {
			attrs.DisplayName = *input.DisplayName
		}
		if input.Email != nil {
			attrs.Email = *input.Email
		}
	}

	svc := app.sessionService(logger)

	session, err := svc.Toggle(ctx, ident.Subject, attrs)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Debug("toggle lost race", "userId", ident.Subject)
			app.conflict(w, r)
			return
		}

		app.storeError(w, r, err)
		return
	}

	resp := responseToggle{
		Open:      session.Open(),
		StartedAt: session.StartedAt,
		EndedAt:   session.EndedAt,
	}

	if err := response.JSON(w, http.StatusOK, resp); err != nil {
		app.serverError(w, r, err)
	}
}

type requestToggle struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
}

type responseToggle struct {
	Open      bool       `json:"open"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// Handle History
// @Summary Check-In History
// @Description The caller's most recent sessions, newest first
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} main.responseHistory
// @Failure 401 {object} any "Not authenticated"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /checkin/history [get]
func (app *application) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ident := identityFromRequest(r)

	limit := defaultIntQueryParams(r, "limit", 0)

	var v validator.Validator
	validateHistoryLimit(&v, limit)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	svc := app.sessionService(app.requestLogger(r))

	sessions, err := svc.History(ctx, ident.Subject, limit)
	if err != nil {
		app.storeError(w, r, err)
		return
	}

	entries := make([]historyEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, historyEntry{StartedAt: s.StartedAt, EndedAt: s.EndedAt})
	}

	if err := response.JSON(w, http.StatusOK, responseHistory{Sessions: entries}); err != nil {
		app.serverError(w, r, err)
	}
}

type historyEntry struct {
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

type responseHistory struct {
	Sessions []historyEntry `json:"sessions"`
}

// Handle Active Roster
// @Summary Active Roster
// @Description Everyone currently checked in
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} main.responseRoster
// @Failure 401 {object} any "Not authenticated"
// @Failure 403 {object} any "Not an admin"
// @Failure 500 {object} any "Internal server error"
// @Router /admin/roster [get]
func (app *application) handleActiveRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svc := app.sessionService(app.requestLogger(r))

	sessions, err := svc.ActiveRoster(ctx)
	if err != nil {
		app.storeError(w, r, err)
		return
	}

	entries := make([]rosterEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, rosterEntry{
			UserID:      s.UserID,
			DisplayName: s.DisplayName,
			Email:       s.Email,
			StartedAt:   s.StartedAt,
		})
	}

	if err := response.JSON(w, http.StatusOK, responseRoster{Volunteers: entries}); err != nil {
		app.serverError(w, r, err)
	}
}

type rosterEntry struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName,omitempty"`
	Email       string    `json:"email,omitempty"`
	StartedAt   time.Time `json:"startedAt"`
}

type responseRoster struct {
	Volunteers []rosterEntry `json:"volunteers"`
}

// Handle Ranged History
// @Summary Ranged History
// @Description All sessions started within [start, end]
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param start query string true "Range start"
// @Param end query string true "Range end"
// @Success 200 {object} main.responseRangedHistory
// @Failure 401 {object} any "Not authenticated"
// @Failure 403 {object} any "Not an admin"
// @Failure 422 {object} validator.Validator "Invalid range"
// @Failure 500 {object} any "Internal server error"
// @Router /admin/history [get]
func (app *application) handleRangedHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	start, hasStart, startErr := timeQueryParams(r, "start")
	end, hasEnd, endErr := timeQueryParams(r, "end")

	var v validator.Validator
	validateRangeBounds(&v, hasStart, startErr, hasEnd, endErr)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	svc := app.sessionService(app.requestLogger(r))

	sessions, err := svc.RangedHistory(ctx, start, end)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRange) {
			v.AddError("Start must not be after end")
			app.failedValidation(w, r, v)
			return
		}

		app.storeError(w, r, err)
		return
	}

	entries := make([]rangedHistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, rangedHistoryEntry{
			UserID:      s.UserID,
			DisplayName: s.DisplayName,
			Email:       s.Email,
			StartedAt:   s.StartedAt,
			EndedAt:     s.EndedAt,
		})
	}

	if err := response.JSON(w, http.StatusOK, responseRangedHistory{Sessions: entries}); err != nil {
		app.serverError(w, r, err)
	}
}

type rangedHistoryEntry struct {
	UserID      string     `json:"userId"`
	DisplayName string     `json:"displayName,omitempty"`
	Email       string     `json:"email,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
}

type responseRangedHistory struct {
	Sessions []rangedHistoryEntry `json:"sessions"`
}
