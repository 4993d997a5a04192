package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/kingchappers/arc-check-in/internal/ctxstore"
	"github.com/kingchappers/arc-check-in/internal/identity"
	"github.com/kingchappers/arc-check-in/internal/response"
	"github.com/rs/cors"

	"github.com/tomasen/realip"
)

const (
	_traceIDKey  = ctxstore.Key("traceId")
	_identityKey = ctxstore.Key("identity")
)

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := ctxstore.With(r.Context(), _traceIDKey, tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid    = ctxstore.MustFrom[string](r.Context(), _traceIDKey)
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// requireAuth normalizes the bearer token into an identity and stores it in
// the request context. Identity is only parsed here; handlers read it back
// with identityFromRequest and never touch the token again.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := app.idparser.FromAuthorization(r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, identity.ErrNoToken) || errors.Is(err, identity.ErrInvalidToken) {
				app.authenticationRequired(w, r)
				return
			}

			app.serverError(w, r, err)
			return
		}

		ctx := ctxstore.With(r.Context(), _identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := identityFromRequest(r)
		if !ident.HasRole(identity.RoleAdmin) {
			app.forbidden(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func identityFromRequest(r *http.Request) identity.Identity {
	return ctxstore.MustFrom[identity.Identity](r.Context(), _identityKey)
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
