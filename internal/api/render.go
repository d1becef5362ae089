package api

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// view holds the page helpers shared by the handlers.
type view struct {
	logger *logrus.Logger
}

// flash queues a one-shot message for the next rendered page.
func (v view) flash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	v.save(c, session)
}

// save writes the session cookie. A failure loses the flash, not the page.
func (v view) save(c *gin.Context, session sessions.Session) {
	if err := session.Save(); err != nil {
		v.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("save session failed")
	}
}

// render drains pending flashes into data["flashes"] and renders name.
// The session is saved before the body is written so the cookie update
// reaches the client.
func (v view) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := sessions.Default(c)
	var messages []string
	for _, f := range session.Flashes() {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	if len(messages) > 0 {
		v.save(c, session)
	}
	data["flashes"] = messages
	c.HTML(status, name, data)
}

// serverError renders the 500 page, showing any flash queued by the caller.
func (v view) serverError(c *gin.Context) {
	v.render(c, http.StatusInternalServerError, "errors/500.html", nil)
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// idParam reads a positive numeric :id path parameter.
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// posted reports whether key was submitted at all; checkbox values are ignored.
func posted(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}
