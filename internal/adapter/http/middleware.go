package httpadapter

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
)

type ctxKey struct{}

func withSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// sessionFrom returns the session attached by authenticate, or the zero
// session on public routes.
func sessionFrom(r *http.Request) domain.Session {
	s, _ := r.Context().Value(ctxKey{}).(domain.Session)
	return s
}

// requireAPIKey rejects requests whose apikey header does not match.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("apikey")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.opts.APIKey)) != 1 {
			h.writeError(w, r, apperr.New(apperr.CodeForbidden, "Clé d'API invalide"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token into a session.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			h.writeError(w, r, apperr.New(apperr.CodeUnauthorized, "Authentification requise"))
			return
		}
		session, err := h.svc.Auth.CurrentSession(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), *session)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// requireRole stops sessions of another user type before the service is
// called.
func requireRole(t domain.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionFrom(r).Is(t) {
				writeErrorPayload(w, apperr.New(apperr.CodeForbidden, "Accès refusé"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("route", routePattern(r)),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func trimSlashes(s string) string {
	return strings.Trim(s, "/")
}

// logoHeaders keeps browsers from sniffing or executing stored uploads.
func logoHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		next.ServeHTTP(w, r)
	})
}
