package api

import (
	"net/http"

	"Fyyur/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ShowHandler serves the /shows pages.
type ShowHandler struct {
	showService *service.ShowService
	view
}

func NewShowHandler(db *gorm.DB, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		showService: service.NewShowService(db, logger),
		view:        view{logger: logger},
	}
}

// List GET /shows
func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.showService.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("ListShows failed")
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "pages/shows.html", gin.H{"shows": shows})
}

// CreateForm GET /shows/create
func (h *ShowHandler) CreateForm(c *gin.Context) {
	h.render(c, http.StatusOK, "forms/new_show.html", nil)
}

// Create POST /shows/create. Whatever happens, the answer is the home page
// with status 200 and a message chosen from the validation flags.
func (h *ShowHandler) Create(c *gin.Context) {
	var form service.ShowForm
	_ = c.ShouldBind(&form)

	res := h.showService.Create(c.Request.Context(), form)
	h.flash(c, res.Message())
	h.render(c, http.StatusOK, "pages/home.html", nil)
}
