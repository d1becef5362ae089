package service

import (
	"context"
	"fmt"
	"time"

	"Fyyur/internal/model"
	"Fyyur/internal/repository"
	"Fyyur/internal/utils/format"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ArtistService struct {
	db      *gorm.DB
	artists repository.ArtistRepository
	shows   repository.ShowRepository
	logger  *logrus.Logger
	now     func() time.Time
}

func NewArtistService(db *gorm.DB, logger *logrus.Logger) *ArtistService {
	return &ArtistService{
		db:      db,
		artists: repository.NewArtistRepository(db),
		shows:   repository.NewShowRepository(db),
		logger:  logger,
		now:     time.Now,
	}
}

// List returns every artist ordered by name.
func (s *ArtistService) List(ctx context.Context) ([]ArtistSummary, error) {
	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (s *ArtistService) Search(ctx context.Context, term string) (*ArtistSearchResult, error) {
	artists, err := s.artists.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	shows, err := s.shows.ListByArtistIDs(ctx, artistIDs(artists))
	if err != nil {
		return nil, err
	}
	counts := countUpcoming(shows, s.now(), byArtist)

	result := &ArtistSearchResult{Count: len(artists), Data: make([]ArtistSummary, 0, len(artists))}
	for _, a := range artists {
		result.Data = append(result.Data, ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return result, nil
}

// Detail returns repository.ErrNotFound for an unknown id.
func (s *ArtistService) Detail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.artists.ListShows(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := splitShows(rows, s.now())

	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             model.GenreNames(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              format.Phone(a.Phone),
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          artistShows(past),
		PastShowsCount:     len(past),
		UpcomingShows:      artistShows(upcoming),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *ArtistService) EditForm(ctx context.Context, id uint64) (*ArtistEdit, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArtistEdit{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             model.GenreNames(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              format.Phone(a.Phone),
		WebsiteLink:        a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}, nil
}

func (s *ArtistService) Create(ctx context.Context, form ArtistForm) (*model.Artist, error) {
	a := &model.Artist{}
	form.apply(a)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := repository.NewGenreRepository(tx).Resolve(ctx, form.Genres)
		if err != nil {
			return err
		}
		a.Genres = genres
		return repository.NewArtistRepository(tx).Create(ctx, a)
	})
	if err != nil {
		s.logger.WithError(err).WithField("name", form.Name).Error("create artist failed")
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return a, nil
}

// Update overwrites the artist; the genre association is cleared and rebuilt.
func (s *ArtistService) Update(ctx context.Context, id uint64, form ArtistForm) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artists := repository.NewArtistRepository(tx)
		a, err := artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		form.apply(a)

		genres, err := repository.NewGenreRepository(tx).Resolve(ctx, form.Genres)
		if err != nil {
			return err
		}
		a.Genres = genres
		return artists.Update(ctx, a)
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"artist_id": id, "name": form.Name}).Error("update artist failed")
		return fmt.Errorf("update artist %d: %w", id, err)
	}
	return nil
}
