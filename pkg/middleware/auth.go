package middleware

import (
	"context"
	"net/http"

	"cardoctor/internal/auth/token"
	apperrors "cardoctor/pkg/errors"
	httputil "cardoctor/pkg/http"
	"cardoctor/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const userKey contextKey = "user"

// RequireToken gates a route on the token cookie. Every rejection writes a
// single 401 response and returns immediately; the wrapped handler only runs
// on the explicit success path, so a rejected request can never fall through
// into the pipeline.
func RequireToken(tokens *token.Service, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			cookie, err := r.Cookie(token.CookieName)
			if err != nil {
				_ = httputil.WriteError(w, apperrors.Unauthorized("Unauthorized Access"))
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				log.Warn("Credential verification failed",
					"request_id", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
				)
				_ = httputil.WriteError(w, apperrors.Unauthorized("Unauthorized Access"))
				return
			}

			next(w, r.WithContext(ContextWithUser(r.Context(), claims)), ps)
		}
	}
}

// ContextWithUser attaches a verified credential payload to the context.
func ContextWithUser(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, userKey, claims)
}

// UserFromContext returns the verified credential payload, or nil when the
// request did not pass through RequireToken.
func UserFromContext(ctx context.Context) map[string]any {
	if claims, ok := ctx.Value(userKey).(map[string]any); ok {
		return claims
	}
	return nil
}
