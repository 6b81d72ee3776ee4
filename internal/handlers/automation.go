package handlers

import (
	"errors"
	"net/http"

	"opencog_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusTyped     = "typed"
	statusSubmitted = "submitted"
	statusSkipped   = "skipped"
	statusFocused   = "focused"
)

// TypeRequest is text for the command field.
type TypeRequest struct {
	Text string `json:"text" example:"(cog-get-atoms 'ConceptNode)"`
}

// ForceInputRequest writes to any field, focused first.
type ForceInputRequest struct {
	Field string `json:"field" binding:"required" example:"server-url"`
	Text  string `json:"text" example:"http://localhost:17020"`
}

// ForceClickRequest enables a button and clicks it.
type ForceClickRequest struct {
	Control string `json:"control" binding:"required" example:"execute-btn"`
	Confirm bool   `json:"confirm" example:"false"`
}

// @Summary      Automation shim info
// @Description  Identity of the OpenCogAsk shim and, when a host registry exists, its keys.
// @Tags         automation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/automation [get]
func (h *Handler) automationInfo(c *gin.Context) {
	resp := gin.H{
		"key":        service.RegistryKey,
		"name":       h.services.Automation.Name(),
		"url":        h.services.Automation.URL(),
		"registered": false,
	}
	if reg := h.services.Registry; reg != nil {
		_, ok := reg.Lookup(service.RegistryKey)
		resp["registered"] = ok
		resp["registry"] = reg.Keys()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Type into the command field
// @Tags         automation
// @Accept       json
// @Produce      json
// @Param        body  body      TypeRequest  true  "Text"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/automation/type [post]
func (h *Handler) automationType(c *gin.Context) {
	var req TypeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Automation.TypeAndNotify(requestCtx(c), req.Text); err != nil {
		h.respondDashboardError(c, "automation_type_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusTyped})
}

// @Summary      Submit if enabled
// @Description  Clicks Execute when it is enabled; otherwise does nothing and reports "skipped".
// @Tags         automation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/automation/submit [post]
func (h *Handler) automationSubmit(c *gin.Context) {
	submitted, err := h.services.Automation.SubmitIfEnabled(requestCtx(c))
	if err != nil {
		h.respondDashboardError(c, "automation_submit_failed", err)
		return
	}
	if !submitted {
		c.JSON(http.StatusOK, gin.H{"status": statusSkipped})
		return
	}
	h.respondWithStatusAndState(c, statusSubmitted, gin.H{})
}

// @Summary      Focus the command field
// @Tags         automation
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/automation/focus [post]
func (h *Handler) automationFocus(c *gin.Context) {
	if err := h.services.Automation.FocusInput(); err != nil {
		h.respondDashboardError(c, "automation_focus_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusFocused})
}

// @Summary      Force a field value
// @Tags         automation
// @Accept       json
// @Produce      json
// @Param        body  body      ForceInputRequest  true  "Field and text"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/automation/force-input [post]
func (h *Handler) automationForceInput(c *gin.Context) {
	var req ForceInputRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	field, err := service.ParseFieldID(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Automation.ForceInputAndNotify(requestCtx(c), field, req.Text); err != nil {
		h.respondDashboardError(c, "automation_force_input_failed", err, "field", field)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusFieldSet, "field": field})
}

// @Summary      Force-enable and click a button
// @Description  Enables the button even while disconnected, then clicks it.
// @Tags         automation
// @Accept       json
// @Produce      json
// @Param        body  body      ForceClickRequest  true  "Button"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/automation/force-click [post]
func (h *Handler) automationForceClick(c *gin.Context) {
	var req ForceClickRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	id, err := service.ParseControlID(req.Control)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err = h.services.Automation.ForceEnableAndClick(requestCtx(c), id, confirmer(req.Confirm))
	if errors.Is(err, service.ErrClearDeclined) {
		h.respondWithStatusAndState(c, statusDeclined, gin.H{"control": id})
		return
	}
	if err != nil {
		h.respondDashboardError(c, "automation_force_click_failed", err, "control", id)
		return
	}
	h.respondWithStatusAndState(c, statusClicked, gin.H{"control": id})
}
