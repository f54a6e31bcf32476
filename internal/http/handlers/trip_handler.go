// README: trip planning handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelpro/internal/http/middleware"
	"travelpro/internal/modules/planner"
	"travelpro/internal/modules/quota"
)

// planTimeout bounds a full planning run, including up to three rebuilds
// with live pricing and LLM calls.
const planTimeout = 120 * time.Second

// Planner runs the full planning workflow for one request.
type Planner interface {
	ProcessRequest(ctx context.Context, request string) planner.Output
}

// QuotaKeeper meters planning runs per authenticated user.
type QuotaKeeper interface {
	UseRun(ctx context.Context, uid string) error
}

type TripHandler struct {
	planner Planner
	quota   QuotaKeeper
}

// NewTripHandler creates the handler. quota may be nil; runs are then unmetered.
func NewTripHandler(p Planner, q QuotaKeeper) *TripHandler {
	return &TripHandler{planner: p, quota: q}
}

type planReq struct {
	Request string `json:"request"`
}

// Plan handles POST /api/trips/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Request = strings.TrimSpace(req.Request)
	if req.Request == "" {
		writeError(c, http.StatusBadRequest, "missing request")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	// Quota only applies to authenticated callers.
	if uid := middleware.CallerUID(c); h.quota != nil && uid != "" {
		if err := h.quota.UseRun(ctx, uid); err != nil {
			if errors.Is(err, quota.ErrRunsExhausted) {
				writeError(c, http.StatusTooManyRequests, err.Error())
				return
			}
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
	}

	out := h.planner.ProcessRequest(ctx, req.Request)
	switch {
	case out.Status == planner.StatusDateValidationFailed:
		writeJSON(c, http.StatusUnprocessableEntity, out)
	case out.Failed():
		writeJSON(c, http.StatusInternalServerError, out)
	default:
		writeJSON(c, http.StatusOK, out)
	}
}
