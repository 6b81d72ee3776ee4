package handlers

import (
	"errors"

	"opencog_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusRefreshed = "refreshed"
	statusCleared   = "cleared"
)

// ClearRequest answers the "clear the AtomSpace?" prompt.
type ClearRequest struct {
	Confirm bool `json:"confirm" example:"true"`
}

// @Summary      Refresh the AtomSpace panel
// @Description  No-op while disconnected.
// @Tags         atomspace
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/atomspace/refresh [post]
func (h *Handler) refreshAtomSpace(c *gin.Context) {
	if err := h.services.AtomSpace.RefreshAtomSpace(requestCtx(c)); err != nil {
		h.respondDashboardError(c, "atomspace_refresh_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusRefreshed, gin.H{})
}

// @Summary      Clear the AtomSpace
// @Description  Without confirm=true nothing happens. The simulated store keeps its atoms, so the next refresh shows them again.
// @Tags         atomspace
// @Accept       json
// @Produce      json
// @Param        body  body      ClearRequest  false  "Prompt answer"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/atomspace/clear [post]
func (h *Handler) clearAtomSpace(c *gin.Context) {
	var req ClearRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	err := h.services.AtomSpace.ClearAtomSpace(requestCtx(c), confirmer(req.Confirm))
	if errors.Is(err, service.ErrClearDeclined) {
		h.respondWithStatusAndState(c, statusDeclined, gin.H{})
		return
	}
	if err != nil {
		h.respondDashboardError(c, "atomspace_clear_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusCleared, gin.H{})
}
