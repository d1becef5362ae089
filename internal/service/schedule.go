package service

import (
	"sort"
	"time"

	"Fyyur/internal/model"
	"Fyyur/internal/repository"
	"Fyyur/internal/utils/format"
)

// splitShows partitions listings around now. Strict on both sides: a show
// starting exactly at now is neither past nor upcoming.
func splitShows(rows []repository.ShowListing, now time.Time) (past, upcoming []repository.ShowListing) {
	past = []repository.ShowListing{}
	upcoming = []repository.ShowListing{}
	for _, r := range rows {
		switch {
		case r.StartTime.Before(now):
			past = append(past, r)
		case r.StartTime.After(now):
			upcoming = append(upcoming, r)
		}
	}
	return past, upcoming
}

// countUpcoming counts shows starting after now, keyed by key(show).
func countUpcoming(shows []*model.Show, now time.Time, key func(*model.Show) uint64) map[uint64]int {
	counts := make(map[uint64]int)
	for _, s := range shows {
		if s.StartTime.After(now) {
			counts[key(s)]++
		}
	}
	return counts
}

func byVenue(s *model.Show) uint64  { return s.VenueID }
func byArtist(s *model.Show) uint64 { return s.ArtistID }

type location struct {
	city, state string
}

// groupByArea groups venues by (city, state), areas sorted by state then
// city. Venues keep their input order inside an area.
func groupByArea(venues []*model.Venue, upcoming map[uint64]int) []Area {
	members := make(map[location][]VenueSummary)
	var keys []location
	for _, v := range venues {
		loc := location{city: v.City, state: v.State}
		if _, ok := members[loc]; !ok {
			keys = append(keys, loc)
		}
		members[loc] = append(members[loc], VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].city < keys[j].city
	})

	areas := make([]Area, 0, len(keys))
	for _, k := range keys {
		areas = append(areas, Area{City: k.city, State: k.state, Venues: members[k]})
	}
	return areas
}

func venueShows(rows []repository.ShowListing) []VenueShow {
	out := make([]VenueShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, VenueShow{
			ArtistID:        r.CounterpartID,
			ArtistName:      r.Name,
			ArtistImageLink: r.ImageLink,
			StartTime:       format.Stored(r.StartTime),
		})
	}
	return out
}

func artistShows(rows []repository.ShowListing) []ArtistShow {
	out := make([]ArtistShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistShow{
			VenueID:        r.CounterpartID,
			VenueName:      r.Name,
			VenueImageLink: r.ImageLink,
			StartTime:      format.Stored(r.StartTime),
		})
	}
	return out
}

func venueIDs(venues []*model.Venue) []uint64 {
	ids := make([]uint64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids
}

func artistIDs(artists []*model.Artist) []uint64 {
	ids := make([]uint64, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ID)
	}
	return ids
}
