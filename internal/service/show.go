package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"Fyyur/internal/model"
	"Fyyur/internal/repository"
	"Fyyur/internal/utils/format"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	MsgInvalidArtist = "Invalid artist id! Check again."
	MsgInvalidVenue  = "Invalid venue id! Check again."
	MsgShowListed    = "Show was successfully listed!"
)

// ShowResult is the outcome of a show submission. Err is informational only:
// it never changes the message shown to the user.
type ShowResult struct {
	InvalidArtist bool
	InvalidVenue  bool
	Show          *model.Show
	Err           error
}

// Message picks the flash text; an invalid artist wins over an invalid venue.
func (r ShowResult) Message() string {
	switch {
	case r.InvalidArtist:
		return MsgInvalidArtist
	case r.InvalidVenue:
		return MsgInvalidVenue
	default:
		return MsgShowListed
	}
}

type ShowService struct {
	db      *gorm.DB
	shows   repository.ShowRepository
	venues  repository.VenueRepository
	artists repository.ArtistRepository
	logger  *logrus.Logger
}

func NewShowService(db *gorm.DB, logger *logrus.Logger) *ShowService {
	return &ShowService{
		db:      db,
		shows:   repository.NewShowRepository(db),
		venues:  repository.NewVenueRepository(db),
		artists: repository.NewArtistRepository(db),
		logger:  logger,
	}
}

// List resolves the venue and artist of every show, one lookup each.
// Shows pointing at a missing row are logged and skipped.
func (s *ShowService) List(ctx context.Context) ([]ShowEntry, error) {
	shows, err := s.shows.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ShowEntry, 0, len(shows))
	for _, sh := range shows {
		venue, err := s.venues.GetByID(ctx, sh.VenueID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			s.logger.WithFields(logrus.Fields{"show_id": sh.ID, "venue_id": sh.VenueID}).Warn("show references missing venue")
			continue
		}
		artist, err := s.artists.GetByID(ctx, sh.ArtistID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			s.logger.WithFields(logrus.Fields{"show_id": sh.ID, "artist_id": sh.ArtistID}).Warn("show references missing artist")
			continue
		}

		entries = append(entries, ShowEntry{
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       format.Time(sh.StartTime, format.StyleMedium),
		})
	}
	return entries, nil
}

// Create validates both references and inserts the show in one transaction.
// Validation problems are reported through the result flags, never as errors.
func (s *ShowService) Create(ctx context.Context, form ShowForm) ShowResult {
	var res ShowResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artistFound, err := exists(form.ArtistID, func(id uint64) error {
			_, err := repository.NewArtistRepository(tx).GetByID(ctx, id)
			return err
		})
		if err != nil {
			return err
		}
		venueFound, err := exists(form.VenueID, func(id uint64) error {
			_, err := repository.NewVenueRepository(tx).GetByID(ctx, id)
			return err
		})
		if err != nil {
			return err
		}
		res.InvalidArtist = !artistFound
		res.InvalidVenue = !venueFound
		if res.InvalidArtist || res.InvalidVenue {
			return nil
		}

		start, err := format.ParseTime(form.StartTime)
		if err != nil {
			return fmt.Errorf("parse start_time %q: %w", form.StartTime, err)
		}
		artistID, _ := parseID(form.ArtistID)
		venueID, _ := parseID(form.VenueID)
		show := &model.Show{StartTime: start, ArtistID: artistID, VenueID: venueID}
		if err := repository.NewShowRepository(tx).Create(ctx, show); err != nil {
			return err
		}
		res.Show = show
		return nil
	})
	if err != nil {
		res.Err = err
		res.Show = nil
		s.logger.WithError(err).WithFields(logrus.Fields{
			"artist_id":  form.ArtistID,
			"venue_id":   form.VenueID,
			"start_time": form.StartTime,
		}).Error("create show failed")
	}
	if res.InvalidArtist || res.InvalidVenue {
		s.logger.WithFields(logrus.Fields{
			"artist_id":      form.ArtistID,
			"venue_id":       form.VenueID,
			"invalid_artist": res.InvalidArtist,
			"invalid_venue":  res.InvalidVenue,
		}).Error("create show rejected")
	}
	return res
}

// exists reports whether raw names a row; a non-numeric id never does.
func exists(raw string, get func(uint64) error) (bool, error) {
	id, ok := parseID(raw)
	if !ok {
		return false, nil
	}
	err := get(id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// parseID accepts positive decimal ids only.
func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
