package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/kingchappers/arc-check-in/internal/ctxstore"
	"github.com/kingchappers/arc-check-in/internal/model"
	"github.com/kingchappers/arc-check-in/internal/response"
	"github.com/kingchappers/arc-check-in/internal/validator"
)

func (app *application) reportServerError(r *http.Request, err error) {
	var (
		method = r.Method
		url    = r.URL.String()
		tid, _ = ctxstore.From[string](r.Context(), _traceIDKey)
	)

	requestAttrs := slog.Group("request", "method", method, "url", url, _traceIDKey.String(), tid)
	app.logger.Error(err.Error(), requestAttrs, "trace", string(debug.Stack()))
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	message = strings.ToUpper(message[:1]) + message[1:]

	err := response.JSONWithHeaders(w, status, response.JSONObject{"error": message}, headers)
	if err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorMessage(w, r, http.StatusInternalServerError, message, nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource could not be found"
	app.errorMessage(w, r, http.StatusNotFound, message, nil)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorMessage(w, r, http.StatusMethodNotAllowed, message, nil)
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (app *application) failedValidation(w http.ResponseWriter, r *http.Request, v validator.Validator) {
	err := response.JSON(w, http.StatusUnprocessableEntity, v)
	if err != nil {
		app.serverError(w, r, err)
	}
}

// storeError maps service-layer failures that are not handler-specific:
// transient store outages become 503, anything else is a server error.
func (app *application) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrUnavailable) {
		app.reportServerError(r, err)

		message := "The service is temporarily unavailable, please retry later"
		app.errorMessage(w, r, http.StatusServiceUnavailable, message, nil)
		return
	}

	app.serverError(w, r, err)
}

func (app *application) conflict(w http.ResponseWriter, r *http.Request) {
	message := "The session changed under you, please retry"
	app.errorMessage(w, r, http.StatusConflict, message, nil)
}

func (app *application) authenticationRequired(w http.ResponseWriter, r *http.Request) {
	headers := make(http.Header)
	headers.Set("WWW-Authenticate", "Bearer")

	message := "You must be authenticated to access this resource"
	app.errorMessage(w, r, http.StatusUnauthorized, message, headers)
}

func (app *application) forbidden(w http.ResponseWriter, r *http.Request) {
	message := "You are not permitted to access this resource"
	app.errorMessage(w, r, http.StatusForbidden, message, nil)
}
