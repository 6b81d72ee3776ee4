package handlers

import (
	"net/http"

	"opencog_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusExecuted   = "executed"
	statusFieldSet   = "field_set"
	statusKeyHandled = "handled"
	statusKeyIgnored = "ignored"
)

// ExecuteRequest is the payload of POST /api/v1/execute.
type ExecuteRequest struct {
	// Scheme command. When omitted the command field is submitted.
	Command *string `json:"command,omitempty" example:"(cog-atomspace)"`
}

// FieldRequest is an input event on one of the dashboard fields.
type FieldRequest struct {
	// Field id or short name.
	Field string `json:"field" binding:"required" example:"scheme-command" enums:"server-url,scheme-command,url,command"`
	Value string `json:"value" example:"(cog-atomspace)"`
}

// KeyRequest is a key press inside the command field.
type KeyRequest struct {
	Ctrl bool   `json:"ctrl" example:"true"`
	Key  string `json:"key" binding:"required" example:"Enter"`
}

// @Summary      Execute a Scheme command
// @Description  Evaluates command, or the command field when command is omitted. Commands that look like they change the AtomSpace schedule a refresh.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body      ExecuteRequest  false  "Command"
// @Success      200   {object}  map[string]interface{}  "status, result, state"
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/execute [post]
func (h *Handler) execute(c *gin.Context) {
	var req ExecuteRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	var (
		result string
		err    error
	)
	if req.Command != nil {
		result, err = h.services.Commands.ExecuteCommand(requestCtx(c), *req.Command)
	} else {
		result, err = h.services.Commands.SubmitCommand(requestCtx(c))
	}
	if err != nil {
		h.respondDashboardError(c, "dashboard_execute_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusExecuted, gin.H{"result": result})
}

// @Summary      Set a field value
// @Description  Equivalent of typing into an input: the value changes and live views are notified.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body      FieldRequest  true  "Field and value"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/fields [post]
func (h *Handler) setField(c *gin.Context) {
	var req FieldRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	field, err := service.ParseFieldID(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Commands.SetField(requestCtx(c), field, req.Value); err != nil {
		h.respondDashboardError(c, "dashboard_set_field_failed", err, "field", field)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusFieldSet, "field": field})
}

// @Summary      Key press in the command field
// @Description  Ctrl+Enter submits the command field; other keys are ignored.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  body      KeyRequest  true  "Key"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/keys [post]
func (h *Handler) keyPress(c *gin.Context) {
	var req KeyRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	handled, err := h.services.Commands.HandleKey(requestCtx(c), req.Ctrl, req.Key)
	if err != nil {
		h.respondDashboardError(c, "dashboard_key_failed", err, "key", req.Key)
		return
	}
	if !handled {
		c.JSON(http.StatusOK, gin.H{"status": statusKeyIgnored})
		return
	}
	h.respondWithStatusAndState(c, statusKeyHandled, gin.H{})
}
