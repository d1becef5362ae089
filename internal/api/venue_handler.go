package api

import (
	"errors"
	"fmt"
	"net/http"

	"Fyyur/internal/repository"
	"Fyyur/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// VenueHandler serves the /venues pages.
type VenueHandler struct {
	venueService *service.VenueService
	view
}

func NewVenueHandler(db *gorm.DB, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		venueService: service.NewVenueService(db, logger),
		view:         view{logger: logger},
	}
}

// List GET /venues
func (h *VenueHandler) List(c *gin.Context) {
	areas, err := h.venueService.ListByArea(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("ListVenues failed")
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "pages/venues.html", gin.H{"areas": areas})
}

// Search POST /venues/search
func (h *VenueHandler) Search(c *gin.Context) {
	var form service.SearchForm
	_ = c.ShouldBind(&form)
	term := form.Term()

	results, err := h.venueService.Search(c.Request.Context(), term)
	if err != nil {
		h.logger.WithError(err).WithField("search_term", term).Error("SearchVenues failed")
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "pages/search_venues.html", gin.H{"results": results, "search_term": term})
}

// Detail GET /venues/:id; unknown ids go back home.
func (h *VenueHandler) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	venue, err := h.venueService.Detail(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.WithError(err).WithField("venue_id", id).Error("GetVenue failed")
		}
		redirectHome(c)
		return
	}
	h.render(c, http.StatusOK, "pages/show_venue.html", gin.H{"venue": venue})
}

// CreateForm GET /venues/create
func (h *VenueHandler) CreateForm(c *gin.Context) {
	h.render(c, http.StatusOK, "forms/new_venue.html", gin.H{"venue": service.VenueEdit{}})
}

// Create POST /venues/create
func (h *VenueHandler) Create(c *gin.Context) {
	form, err := bindVenueForm(c)
	if err == nil {
		_, err = h.venueService.Create(c.Request.Context(), form)
	}
	if err != nil {
		h.logger.WithError(err).Error("CreateVenue failed")
		h.flash(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		h.serverError(c)
		return
	}
	h.flash(c, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	redirectHome(c)
}

// EditForm GET /venues/:id/edit
func (h *VenueHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	venue, err := h.venueService.EditForm(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.WithError(err).WithField("venue_id", id).Error("EditVenueForm failed")
		}
		redirectHome(c)
		return
	}
	h.render(c, http.StatusOK, "forms/edit_venue.html", gin.H{"venue": venue})
}

// Edit POST /venues/:id/edit
func (h *VenueHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	form, err := bindVenueForm(c)
	if err == nil {
		err = h.venueService.Update(c.Request.Context(), id, form)
	}
	if err != nil {
		h.logger.WithError(err).WithField("venue_id", id).Error("EditVenue failed")
		h.flash(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		h.serverError(c)
		return
	}
	h.flash(c, fmt.Sprintf("Venue %s was successfully updated!", form.Name))
	c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}

func bindVenueForm(c *gin.Context) (service.VenueForm, error) {
	var form service.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		return form, fmt.Errorf("bind venue form: %w", err)
	}
	form.SeekingTalent = posted(c, "seeking_talent")
	return form, nil
}
