package handlers

import (
	"net/http"

	"bookmarks_backend/internal/logger"
	"bookmarks_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	h.registerAuthRoutes(router)

	// Everything below requires a valid bearer token
	h.registerUserRoutes(router)
	h.registerBookmarkRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users", h.authRequired)
	{
		users.GET("/me", h.getMe)
		users.PATCH("", h.editUser)
	}
}

func (h *Handler) registerBookmarkRoutes(r *gin.Engine) {
	bookmarks := r.Group("/bookmarks", h.authRequired)
	{
		bookmarks.POST("", h.createBookmark)
		bookmarks.GET("", h.listBookmarks)
		bookmarks.GET("/:id", h.getBookmark)
		bookmarks.PATCH("/:id", h.editBookmark)
		bookmarks.DELETE("/:id", h.deleteBookmark)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
