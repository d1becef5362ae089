package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"

	"Fyyur/internal/database/dbtest"
	"Fyyur/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	r := gin.New()
	if err := RegisterRoutes(r, db, dbtest.Logger(), "test-secret"); err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	return r, db
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateVenueRedirectsWithFlash(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, "/venues/create", url.Values{
		"name":           {"The Blue Note"},
		"city":           {"New York"},
		"state":          {"NY"},
		"address":        {"131 W 3rd St"},
		"phone":          {"212-555-1234"},
		"genres":         {"Jazz"},
		"seeking_talent": {"y"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	var v model.Venue
	if err := db.Preload("Genres").Where("name = ?", "The Blue Note").First(&v).Error; err != nil {
		t.Fatalf("venue not stored: %v", err)
	}
	if v.Phone != "2125551234" {
		t.Errorf("stored phone = %q, want 2125551234", v.Phone)
	}
	if !v.SeekingTalent {
		t.Error("SeekingTalent = false, want true when the key is posted")
	}
	if len(v.Genres) != 1 || v.Genres[0].Name != "Jazz" {
		t.Errorf("genres = %v", model.GenreNames(v.Genres))
	}

	home := get(r, "/", w.Result().Cookies()...)
	if !strings.Contains(home.Body.String(), "Venue The Blue Note was successfully listed!") {
		t.Error("home page after redirect is missing the success flash")
	}

	// The flash is consumed by the first render.
	again := get(r, "/", home.Result().Cookies()...)
	if strings.Contains(again.Body.String(), "successfully listed") {
		t.Error("flash shown twice")
	}
}

func TestCreateShowWithUnknownArtist(t *testing.T) {
	r, db := newTestRouter(t)
	venue := &model.Venue{Name: "The Musical Hop"}
	if err := db.Create(venue).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}

	w := postForm(r, "/shows/create", url.Values{
		"artist_id":  {"9999"},
		"venue_id":   {strconv.FormatUint(venue.ID, 10)},
		"start_time": {"2035-04-15 20:00:00"},
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid artist id! Check again.") {
		t.Error("response is missing the invalid artist message")
	}
	if !strings.Contains(w.Body.String(), "<h1>Fyyur</h1>") {
		t.Error("response is not the home page")
	}

	var n int64
	db.Model(&model.Show{}).Count(&n)
	if n != 0 {
		t.Errorf("shows = %d, want 0", n)
	}
}

func TestCreateShowSuccessAndList(t *testing.T) {
	r, db := newTestRouter(t)
	venue := &model.Venue{Name: "The Musical Hop"}
	artist := &model.Artist{Name: "Guns N Petals", ImageLink: "https://img/gnp"}
	db.Create(venue)
	db.Create(artist)

	w := postForm(r, "/shows/create", url.Values{
		"artist_id":  {strconv.FormatUint(artist.ID, 10)},
		"venue_id":   {strconv.FormatUint(venue.ID, 10)},
		"start_time": {"2019-05-21 21:30:00"},
	})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Show was successfully listed!") {
		t.Fatalf("status = %d, body missing success message", w.Code)
	}

	list := get(r, "/shows")
	body := list.Body.String()
	for _, want := range []string{"Guns N Petals", "The Musical Hop", "Tue 05, 21, 2019 9:30PM"} {
		if !strings.Contains(body, want) {
			t.Errorf("/shows body missing %q", want)
		}
	}
}

func TestSearchVenuesEmptyTerm(t *testing.T) {
	r, db := newTestRouter(t)
	for _, name := range []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee"} {
		db.Create(&model.Venue{Name: name})
	}

	w := postForm(r, "/venues/search", url.Values{"search_term": {"   "}})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `Number of search results for "": 3`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSearchArtistsEchoesRawTerm(t *testing.T) {
	r, db := newTestRouter(t)
	db.Create(&model.Artist{Name: "Guns N Petals"})
	db.Create(&model.Artist{Name: "Matt Quevedo"})

	w := postForm(r, "/artists/search", url.Values{"search_term": {" guns "}})
	body := w.Body.String()
	if !strings.Contains(body, `" guns ": 1`) {
		t.Errorf("body does not echo the raw term with one result: %s", body)
	}
	if !strings.Contains(body, "Guns N Petals") || strings.Contains(body, "Matt Quevedo") {
		t.Error("wrong artists listed")
	}
}

func TestEditArtistGenres(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, "/artists/create", url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Rock"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("create status = %d", w.Code)
	}
	var a model.Artist
	if err := db.Where("name = ?", "Guns N Petals").First(&a).Error; err != nil {
		t.Fatalf("artist not stored: %v", err)
	}

	path := "/artists/" + strconv.FormatUint(a.ID, 10)
	w = postForm(r, path+"/edit", url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Jazz", "Rock"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != path {
		t.Fatalf("edit = %d to %q, want 302 to %s", w.Code, w.Header().Get("Location"), path)
	}

	var got model.Artist
	db.Preload("Genres").First(&got, a.ID)
	names := model.GenreNames(got.Genres)
	sort.Strings(names)
	if len(names) != 2 || names[0] != "Jazz" || names[1] != "Rock" {
		t.Errorf("genres = %v, want [Jazz Rock]", names)
	}

	detail := get(r, path, w.Result().Cookies()...)
	if !strings.Contains(detail.Body.String(), "Artist Guns N Petals was successfully updated!") {
		t.Error("detail page missing the update flash")
	}
}

func TestEditMissingVenueIsServerError(t *testing.T) {
	r, _ := newTestRouter(t)
	w := postForm(r, "/venues/404/edit", url.Values{"name": {"Ghost Hall"}})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "An error occurred. Venue Ghost Hall could not be updated.") {
		t.Error("500 page missing the failure flash")
	}
}

func TestUnknownIDsRedirectHome(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/venues/9999", "/artists/9999", "/venues/abc", "/artists/9999/edit", "/venues/0/edit"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
				t.Errorf("GET %s = %d to %q, want 302 to /", path, w.Code, w.Header().Get("Location"))
			}
		})
	}
}

func TestPages(t *testing.T) {
	r, db := newTestRouter(t)
	venue := &model.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Phone: "1234567890"}
	db.Create(venue)
	id := strconv.FormatUint(venue.ID, 10)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "Fyyur"},
		{"/venues", http.StatusOK, "San Francisco, CA"},
		{"/venues/" + id, http.StatusOK, "123-456-7890"},
		{"/venues/" + id + "/edit", http.StatusOK, `value="The Musical Hop"`},
		{"/venues/create", http.StatusOK, "List a new venue"},
		{"/artists", http.StatusOK, "artists"},
		{"/artists/create", http.StatusOK, "List a new artist"},
		{"/shows", http.StatusOK, "No shows yet."},
		{"/shows/create", http.StatusOK, "List a new show"},
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/no/such/page", http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestPanicRendersServerErrorPage(t *testing.T) {
	r, _ := newTestRouter(t)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := get(r, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Internal Server Error") {
		t.Error("500 page not rendered")
	}
}

func TestSessionSaveFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	r := gin.New()
	if err := RegisterRoutes(r, dbtest.New(t), logger, "test-secret"); err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	v := view{logger: logger}
	// The encoded cookie exceeds the store's 4096 byte limit.
	r.GET("/oversized", func(c *gin.Context) {
		v.flash(c, strings.Repeat("x", 5000))
		v.render(c, http.StatusOK, "pages/home.html", nil)
	})

	w := get(r, "/oversized")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want the page rendered anyway", w.Code)
	}
	if !strings.Contains(buf.String(), "save session failed") {
		t.Errorf("log = %q, want the save error reported", buf.String())
	}
	if !strings.Contains(buf.String(), "path=/oversized") {
		t.Errorf("log = %q, want the request path", buf.String())
	}
}
