package repository

import (
	"context"
	"fmt"
	"time"

	"Fyyur/internal/model"

	"gorm.io/gorm"
)

// ShowListing is a show joined with its counterpart: the artist on a venue
// page, the venue on an artist page.
type ShowListing struct {
	ShowID        uint64
	StartTime     time.Time
	CounterpartID uint64
	Name          string
	ImageLink     string
}

type ShowRepository interface {
	ListAll(ctx context.Context) ([]*model.Show, error)
	Create(ctx context.Context, s *model.Show) error
	// ListByVenueIDs / ListByArtistIDs feed the upcoming-show counters.
	ListByVenueIDs(ctx context.Context, venueIDs []uint64) ([]*model.Show, error)
	ListByArtistIDs(ctx context.Context, artistIDs []uint64) ([]*model.Show, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) ListAll(ctx context.Context) ([]*model.Show, error) {
	var shows []*model.Show
	if err := r.db.WithContext(ctx).Order("start_time ASC").Order("id ASC").Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return shows, nil
}

// Create stores StartTime as UTC; the column has no zone.
func (r *showRepository) Create(ctx context.Context, s *model.Show) error {
	s.StartTime = s.StartTime.UTC()
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create show artist=%d venue=%d: %w", s.ArtistID, s.VenueID, err)
	}
	return nil
}

func (r *showRepository) ListByVenueIDs(ctx context.Context, venueIDs []uint64) ([]*model.Show, error) {
	return r.listBy(ctx, "venue_id", venueIDs)
}

func (r *showRepository) ListByArtistIDs(ctx context.Context, artistIDs []uint64) ([]*model.Show, error) {
	return r.listBy(ctx, "artist_id", artistIDs)
}

func (r *showRepository) listBy(ctx context.Context, column string, ids []uint64) ([]*model.Show, error) {
	if len(ids) == 0 {
		return []*model.Show{}, nil
	}
	var shows []*model.Show
	if err := r.db.WithContext(ctx).
		Where(column+" IN ?", ids).
		Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("list shows by %s: %w", column, err)
	}
	return shows, nil
}
