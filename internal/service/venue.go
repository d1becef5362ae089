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

// VenueService venue listing, search, detail and create/edit.
type VenueService struct {
	db     *gorm.DB
	venues repository.VenueRepository
	shows  repository.ShowRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewVenueService(db *gorm.DB, logger *logrus.Logger) *VenueService {
	return &VenueService{
		db:     db,
		venues: repository.NewVenueRepository(db),
		shows:  repository.NewShowRepository(db),
		logger: logger,
		now:    time.Now,
	}
}

// ListByArea returns all venues grouped by (city, state) with their
// upcoming show counts.
func (s *VenueService) ListByArea(ctx context.Context) ([]Area, error) {
	venues, err := s.venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.upcomingCounts(ctx, venues)
	if err != nil {
		return nil, err
	}
	return groupByArea(venues, counts), nil
}

// Search matches venue names case-insensitively; an empty term matches all.
func (s *VenueService) Search(ctx context.Context, term string) (*VenueSearchResult, error) {
	venues, err := s.venues.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	counts, err := s.upcomingCounts(ctx, venues)
	if err != nil {
		return nil, err
	}

	result := &VenueSearchResult{Count: len(venues), Data: make([]VenueSummary, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return result, nil
}

// Detail returns repository.ErrNotFound for an unknown id.
func (s *VenueService) Detail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.venues.ListShows(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := splitShows(rows, s.now())

	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             model.GenreNames(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              format.Phone(v.Phone),
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          venueShows(past),
		PastShowsCount:     len(past),
		UpcomingShows:      venueShows(upcoming),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// EditForm loads the values that pre-populate the edit page.
func (s *VenueService) EditForm(ctx context.Context, id uint64) (*VenueEdit, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VenueEdit{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             model.GenreNames(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              format.Phone(v.Phone),
		WebsiteLink:        v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}, nil
}

// Create inserts the venue and links its genres, creating missing genre
// rows, in one transaction.
func (s *VenueService) Create(ctx context.Context, form VenueForm) (*model.Venue, error) {
	v := &model.Venue{}
	form.apply(v)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := repository.NewGenreRepository(tx).Resolve(ctx, form.Genres)
		if err != nil {
			return err
		}
		v.Genres = genres
		return repository.NewVenueRepository(tx).Create(ctx, v)
	})
	if err != nil {
		s.logger.WithError(err).WithField("name", form.Name).Error("create venue failed")
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return v, nil
}

// Update overwrites the venue and rebuilds its genre set from scratch.
func (s *VenueService) Update(ctx context.Context, id uint64, form VenueForm) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venues := repository.NewVenueRepository(tx)
		v, err := venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		form.apply(v)

		genres, err := repository.NewGenreRepository(tx).Resolve(ctx, form.Genres)
		if err != nil {
			return err
		}
		v.Genres = genres
		return venues.Update(ctx, v)
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"venue_id": id, "name": form.Name}).Error("update venue failed")
		return fmt.Errorf("update venue %d: %w", id, err)
	}
	return nil
}

func (s *VenueService) upcomingCounts(ctx context.Context, venues []*model.Venue) (map[uint64]int, error) {
	shows, err := s.shows.ListByVenueIDs(ctx, venueIDs(venues))
	if err != nil {
		return nil, err
	}
	return countUpcoming(shows, s.now(), byVenue), nil
}
