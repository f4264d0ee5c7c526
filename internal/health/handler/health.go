package handler

import (
	"context"
	"net/http"
	"time"

	"cardoctor/pkg/client"
	httputil "cardoctor/pkg/http"
	"cardoctor/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type HealthHandler struct {
	mongo *client.MongoClient
	log   *logger.Logger
}

func NewHealthHandler(mongo *client.MongoClient, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongo: mongo,
		log:   log,
	}
}

// Live answers the root liveness probe with a plain string, the one non-JSON
// response the API serves.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteText(w, http.StatusOK, "Car doctor server is running"); err != nil {
		h.log.Error("failed to write response", "handler", "Live", "error", err)
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongo.Client.Ping(ctx, nil); err != nil {
		h.log.Error("Database health check failed", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Live)
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
