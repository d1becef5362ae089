package api

import (
	"net/http"

	"Fyyur/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PageHandler serves the home page, error pages and the health probe.
type PageHandler struct {
	db *gorm.DB
	view
}

func NewPageHandler(db *gorm.DB, logger *logrus.Logger) *PageHandler {
	return &PageHandler{db: db, view: view{logger: logger}}
}

// Home GET /
func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "pages/home.html", nil)
}

// NotFound is registered as gin's NoRoute handler.
func (h *PageHandler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "errors/404.html", nil)
}

// Recovered is gin's custom recovery handler: log the panic, show the 500 page.
func (h *PageHandler) Recovered(c *gin.Context, recovered any) {
	h.logger.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"panic": recovered,
	}).Error("panic recovered")
	h.render(c, http.StatusInternalServerError, "errors/500.html", nil)
	c.Abort()
}

// Health GET /health
func (h *PageHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.logger.WithError(err).Error("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
