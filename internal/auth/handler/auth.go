package handler

import (
	"encoding/json"
	"net/http"

	"cardoctor/internal/auth/token"
	apperrors "cardoctor/pkg/errors"
	httputil "cardoctor/pkg/http"
	"cardoctor/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AuthHandler struct {
	tokens *token.Service
	log    *logger.Logger
}

func NewAuthHandler(tokens *token.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		log:    log,
	}
}

// IssueToken signs the request body as credential claims and sets the token
// cookie. The body is expected to carry the user's email but is embedded
// verbatim either way.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "IssueToken", "error", writeErr)
		}
		return
	}

	signed, err := h.tokens.Issue(payload)
	if err != nil {
		h.log.Error("Failed to issue credential", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to issue credential", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "IssueToken", "error", writeErr)
		}
		return
	}

	http.SetCookie(w, token.NewCookie(signed))
	if err := httputil.WriteSuccess(w, httputil.MessageResponse{Message: true}); err != nil {
		h.log.Error("failed to write success response", "handler", "IssueToken", "error", err)
	}
}

// Logout clears the credential cookie. The token itself stays valid until
// expiry; invalidation is purely client-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, token.ClearedCookie())
	if err := httputil.WriteSuccess(w, map[string]bool{"success": true}); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "error", err)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.IssueToken)
	router.POST("/logout", h.Logout)
}
