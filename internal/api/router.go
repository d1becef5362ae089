package api

import (
	"fmt"

	"Fyyur/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sessionName = "fyyur_session"

// RegisterRoutes loads the templates, installs session and recovery
// middleware and registers every page route plus the 404 handler.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *logrus.Logger, sessionSecret string) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	pages := NewPageHandler(db, logger)
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(gin.CustomRecovery(pages.Recovered))

	r.GET("/", pages.Home)
	r.GET("/health", pages.Health)
	r.NoRoute(pages.NotFound)

	venueHandler := NewVenueHandler(db, logger)
	venues := r.Group("/venues")
	venues.GET("", venueHandler.List)
	venues.POST("/search", venueHandler.Search)
	venues.GET("/create", venueHandler.CreateForm)
	venues.POST("/create", venueHandler.Create)
	venues.GET("/:id", venueHandler.Detail)
	venues.GET("/:id/edit", venueHandler.EditForm)
	venues.POST("/:id/edit", venueHandler.Edit)

	artistHandler := NewArtistHandler(db, logger)
	artists := r.Group("/artists")
	artists.GET("", artistHandler.List)
	artists.POST("/search", artistHandler.Search)
	artists.GET("/create", artistHandler.CreateForm)
	artists.POST("/create", artistHandler.Create)
	artists.GET("/:id", artistHandler.Detail)
	artists.GET("/:id/edit", artistHandler.EditForm)
	artists.POST("/:id/edit", artistHandler.Edit)

	showHandler := NewShowHandler(db, logger)
	r.GET("/shows", showHandler.List)
	r.GET("/shows/create", showHandler.CreateForm)
	r.POST("/shows/create", showHandler.Create)

	return nil
}
