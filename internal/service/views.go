package service

// Response models handed to the templates.

type VenueSummary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

// Area groups venues sharing a city and state.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type ArtistSummary struct {
	ID               uint64
	Name             string
	NumUpcomingShows int
}

type VenueSearchResult struct {
	Count int
	Data  []VenueSummary
}

type ArtistSearchResult struct {
	Count int
	Data  []ArtistSummary
}

// VenueShow is a show on a venue page.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// ArtistShow is a show on an artist page.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      string
}

type VenueDetail struct {
	ID                 uint64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []VenueShow
	PastShowsCount     int
	UpcomingShows      []VenueShow
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ArtistShow
	PastShowsCount     int
	UpcomingShows      []ArtistShow
	UpcomingShowsCount int
}

// VenueEdit pre-populates the venue edit form.
type VenueEdit struct {
	ID                 uint64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
}

type ArtistEdit struct {
	ID                 uint64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
}

// ShowEntry is one row of the show listing; StartTime is already formatted.
type ShowEntry struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}
