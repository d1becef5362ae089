package service

import (
	"strings"

	"Fyyur/internal/model"
	"Fyyur/internal/utils/format"
)

// VenueForm is the posted venue create/edit form. SeekingTalent is set from
// key presence by the handler; its value is never parsed.
type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingDescription string   `form:"seeking_description"`
	SeekingTalent      bool     `form:"-"`
}

// ArtistForm is the posted artist create/edit form.
type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingDescription string   `form:"seeking_description"`
	SeekingVenue       bool     `form:"-"`
}

// ShowForm keeps raw strings; ids and start time are checked by the service.
type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// SearchForm is the posted search box.
type SearchForm struct {
	SearchTerm string `form:"search_term"`
}

// Term returns the trimmed search term.
func (f SearchForm) Term() string {
	return strings.TrimSpace(f.SearchTerm)
}

func (f VenueForm) apply(v *model.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = format.DigitsOnly(f.Phone)
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Website = f.WebsiteLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

func (f ArtistForm) apply(a *model.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = format.DigitsOnly(f.Phone)
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Website = f.WebsiteLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}
