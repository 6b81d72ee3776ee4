package handlers

import (
	"net/http"

	"opencog_dashboard/internal/logger"
	"opencog_dashboard/internal/service"
	"opencog_dashboard/internal/ui"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	render   *ui.Renderer
	mcp      http.Handler
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMCP exposes the automation shim as MCP tools under /mcp.
func WithMCP() Option {
	return func(h *Handler) {
		h.mcp = newMCPHandler(h.services.Automation, h.log)
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{services: services, log: log, render: ui.MustRenderer()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	router.StaticFS("/static", http.FS(ui.Static()))

	// Dashboard page and its live view stream
	router.GET("/", h.activationMiddleware, h.dashboardPage)
	router.GET("/ws", h.activationMiddleware, h.wsConnect)

	// Versioned API endpoints (allow-listed hosts only)
	h.registerAPIRoutes(router)

	if h.mcp != nil {
		router.Any("/mcp", h.activationMiddleware, gin.WrapH(h.mcp))
	}

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.activationMiddleware)
	{
		api.GET("/state", h.getState)
		h.registerConnectionRoutes(api)
		h.registerCommandRoutes(api)
		h.registerAtomSpaceRoutes(api)
		h.registerControlRoutes(api)
		h.registerOutputRoutes(api)
		h.registerAutomationRoutes(api)
	}
}

func (h *Handler) registerConnectionRoutes(api *gin.RouterGroup) {
	// Body example: {"url":"http://localhost:17020"}
	api.POST("/connect", h.connect)
	api.POST("/disconnect", h.disconnect)
}

func (h *Handler) registerCommandRoutes(api *gin.RouterGroup) {
	// Body example: {"command":"(cog-atomspace)"}
	api.POST("/execute", h.execute)
	api.POST("/fields", h.setField)
	api.POST("/keys", h.keyPress)
}

func (h *Handler) registerAtomSpaceRoutes(api *gin.RouterGroup) {
	atomspace := api.Group("/atomspace")
	{
		atomspace.POST("/refresh", h.refreshAtomSpace)
		// Body example: {"confirm":true}
		atomspace.POST("/clear", h.clearAtomSpace)
	}
}

func (h *Handler) registerControlRoutes(api *gin.RouterGroup) {
	api.POST("/controls/:control/click", h.clickControl)
}

func (h *Handler) registerOutputRoutes(api *gin.RouterGroup) {
	api.GET("/output", h.getOutput)
}

func (h *Handler) registerAutomationRoutes(api *gin.RouterGroup) {
	automation := api.Group("/automation")
	{
		automation.GET("", h.automationInfo)
		automation.POST("/type", h.automationType)
		automation.POST("/submit", h.automationSubmit)
		automation.POST("/focus", h.automationFocus)
		automation.POST("/force-input", h.automationForceInput)
		automation.POST("/force-click", h.automationForceClick)
	}
}
