package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const errNotDashboardHost = "dashboard is not served at this address"

// requestLocation rebuilds the URL the browser asked for.
func requestLocation(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.RequestURI
}

// activationMiddleware rejects requests for pages outside the allow list and
// activates the dashboard on the first request that is inside it.
func (h *Handler) activationMiddleware(c *gin.Context) {
	location := requestLocation(c)
	if !h.services.View.ShouldActivate(location) {
		h.log.Debugw("dashboard_not_activated", "location", location)
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": errNotDashboardHost,
		})
		return
	}

	if !h.services.View.Active() {
		if err := h.services.View.Activate(context.WithoutCancel(c.Request.Context())); err != nil {
			h.log.Errorw("dashboard_activate_failed", "err", err)
		}
	}
	c.Next()
}
