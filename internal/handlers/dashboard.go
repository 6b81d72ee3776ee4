package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"opencog_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK           = "ok"
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
	statusClicked      = "clicked"
	statusDeclined     = "declined"

	errRenderPage      = "failed to render dashboard"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// requestCtx detaches the simulated work from the HTTP request: a client
// that goes away does not abort a pending connect or refresh.
func requestCtx(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps dashboard errors to HTTP codes: precondition failures are
// conflicts, bad input is 400, anything from the backend is 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotConnected),
		errors.Is(err, service.ErrControlDisabled),
		errors.Is(err, service.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyCommand),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrUnknownControl):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// respondDashboardError writes err with its mapped status and the current
// view, since every failure is also visible on the dashboard itself.
func (h *Handler) respondDashboardError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	fields := append([]interface{}{"err", err}, kv...)
	if code == http.StatusBadGateway {
		h.log.Errorw(logKey, fields...)
	} else {
		h.log.Infow(logKey, fields...)
	}
	resp := gin.H{"error": err.Error()}
	if v, serr := h.services.View.Snapshot(c.Request.Context()); serr == nil {
		resp["state"] = v
	}
	c.JSON(code, resp)
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.View.Snapshot(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSONOrBadRequest for endpoints whose body may be
// omitted entirely.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	// A chunked request can arrive with an unknown length and no bytes.
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// ConnectRequest is the payload of POST /api/v1/connect.
type ConnectRequest struct {
	// Server URL; empty uses the value of the server URL field.
	URL string `json:"url" example:"http://localhost:17020"`
}

// ClickRequest is the payload of a button click.
type ClickRequest struct {
	// Answer to the confirmation prompt of destructive buttons.
	Confirm bool `json:"confirm" example:"true"`
}

// confirmer turns a client-supplied answer into a service.Confirmer.
func confirmer(answer bool) service.Confirmer {
	if answer {
		return service.AlwaysConfirm
	}
	return service.NeverConfirm
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Dashboard page
// @Tags         dashboard
// @Produce      html
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       / [get]
func (h *Handler) dashboardPage(c *gin.Context) {
	v, err := h.services.View.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "dashboard_snapshot_failed", err)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.render.Page(c.Writer, v); err != nil {
		h.log.Errorw("dashboard_render_failed", "err", err)
	}
}

// @Summary      Get dashboard state
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/state [get]
func (h *Handler) getState(c *gin.Context) {
	v, err := h.services.View.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "dashboard_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Connect
// @Description  Runs the simulated connect sequence; returns once it finished.
// @Tags         connection
// @Accept       json
// @Produce      json
// @Param        body  body      ConnectRequest  false  "Server URL"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]interface{}  "superseded by a newer connect or disconnect"
// @Failure      502   {object}  map[string]interface{}
// @Router       /api/v1/connect [post]
func (h *Handler) connect(c *gin.Context) {
	var req ConnectRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	if err := h.services.Connection.Connect(requestCtx(c), req.URL); err != nil {
		h.respondDashboardError(c, "dashboard_connect_failed", err, "url", req.URL)
		return
	}
	h.respondWithStatusAndState(c, statusConnected, gin.H{})
}

// @Summary      Disconnect
// @Tags         connection
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/disconnect [post]
func (h *Handler) disconnect(c *gin.Context) {
	if err := h.services.Connection.Disconnect(requestCtx(c)); err != nil {
		h.respondDashboardError(c, "dashboard_disconnect_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusDisconnected, gin.H{})
}

// @Summary      Click a button
// @Description  Presses a dashboard button. Disabled buttons ignore the click (409).
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        control  path      string        true   "Button id"  Enums(connect-btn,disconnect-btn,execute-btn,refresh-atomspace,clear-atomspace)
// @Param        body     body      ClickRequest  false  "Prompt answer"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]interface{}
// @Failure      502      {object}  map[string]interface{}
// @Router       /api/v1/controls/{control}/click [post]
func (h *Handler) clickControl(c *gin.Context) {
	id, err := service.ParseControlID(c.Param("control"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req ClickRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	err = h.services.Buttons.Click(requestCtx(c), id, confirmer(req.Confirm))
	if errors.Is(err, service.ErrClearDeclined) {
		h.respondWithStatusAndState(c, statusDeclined, gin.H{"control": id})
		return
	}
	if err != nil {
		h.respondDashboardError(c, "dashboard_click_failed", err, "control", id)
		return
	}
	h.respondWithStatusAndState(c, statusClicked, gin.H{"control": id})
}
