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

// ArtistHandler serves the /artists pages.
type ArtistHandler struct {
	artistService *service.ArtistService
	view
}

func NewArtistHandler(db *gorm.DB, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		artistService: service.NewArtistService(db, logger),
		view:          view{logger: logger},
	}
}

// List GET /artists
func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.artistService.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("ListArtists failed")
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "pages/artists.html", gin.H{"artists": artists})
}

// Search POST /artists/search. The page echoes the term as submitted,
// untrimmed.
func (h *ArtistHandler) Search(c *gin.Context) {
	var form service.SearchForm
	_ = c.ShouldBind(&form)

	results, err := h.artistService.Search(c.Request.Context(), form.Term())
	if err != nil {
		h.logger.WithError(err).WithField("search_term", form.SearchTerm).Error("SearchArtists failed")
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "pages/search_artists.html", gin.H{"results": results, "search_term": form.SearchTerm})
}

// Detail GET /artists/:id
func (h *ArtistHandler) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	artist, err := h.artistService.Detail(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.WithError(err).WithField("artist_id", id).Error("GetArtist failed")
		}
		redirectHome(c)
		return
	}
	h.render(c, http.StatusOK, "pages/show_artist.html", gin.H{"artist": artist})
}

// CreateForm GET /artists/create
func (h *ArtistHandler) CreateForm(c *gin.Context) {
	h.render(c, http.StatusOK, "forms/new_artist.html", gin.H{"artist": service.ArtistEdit{}})
}

// Create POST /artists/create
func (h *ArtistHandler) Create(c *gin.Context) {
	form, err := bindArtistForm(c)
	if err == nil {
		_, err = h.artistService.Create(c.Request.Context(), form)
	}
	if err != nil {
		h.logger.WithError(err).Error("CreateArtist failed")
		h.flash(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		h.serverError(c)
		return
	}
	h.flash(c, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	redirectHome(c)
}

// EditForm GET /artists/:id/edit
func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	artist, err := h.artistService.EditForm(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.WithError(err).WithField("artist_id", id).Error("EditArtistForm failed")
		}
		redirectHome(c)
		return
	}
	h.render(c, http.StatusOK, "forms/edit_artist.html", gin.H{"artist": artist})
}

// Edit POST /artists/:id/edit
func (h *ArtistHandler) Edit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		redirectHome(c)
		return
	}
	form, err := bindArtistForm(c)
	if err == nil {
		err = h.artistService.Update(c.Request.Context(), id, form)
	}
	if err != nil {
		h.logger.WithError(err).WithField("artist_id", id).Error("EditArtist failed")
		h.flash(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		h.serverError(c)
		return
	}
	h.flash(c, fmt.Sprintf("Artist %s was successfully updated!", form.Name))
	c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}

func bindArtistForm(c *gin.Context) (service.ArtistForm, error) {
	var form service.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		return form, fmt.Errorf("bind artist form: %w", err)
	}
	form.SeekingVenue = posted(c, "seeking_venue")
	return form, nil
}
