package repository

import (
	"context"
	"fmt"

	"Fyyur/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	// ListAll returns every artist ordered by name.
	ListAll(ctx context.Context) ([]*model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*model.Artist, error)
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	Create(ctx context.Context, a *model.Artist) error
	Update(ctx context.Context, a *model.Artist) error
	// ListShows returns the artist's shows joined with their venues.
	ListShows(ctx context.Context, artistID uint64) ([]ShowListing, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) ListAll(ctx context.Context) ([]*model.Artist, error) {
	var artists []*model.Artist
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	var artists []*model.Artist
	cond, pattern := nameMatch(r.db.Dialector.Name(), term)
	if err := r.db.WithContext(ctx).
		Where(cond, pattern).
		Order("id ASC").
		Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).Preload("Genres").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *artistRepository) Create(ctx context.Context, a *model.Artist) error {
	if err := r.db.WithContext(ctx).Omit("Genres.*").Create(a).Error; err != nil {
		return fmt.Errorf("create artist %q: %w", a.Name, err)
	}
	return nil
}

func (r *artistRepository) Update(ctx context.Context, a *model.Artist) error {
	db := r.db.WithContext(ctx)
	res := db.Model(a).Select("*").Omit("id", clause.Associations).Updates(a)
	if res.Error != nil {
		return fmt.Errorf("update artist %d: %w", a.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := replaceGenres(db.Model(a), a.Genres); err != nil {
		return fmt.Errorf("replace genres of artist %d: %w", a.ID, err)
	}
	return nil
}

func (r *artistRepository) ListShows(ctx context.Context, artistID uint64) ([]ShowListing, error) {
	var rows []ShowListing
	if err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id AS show_id, shows.start_time AS start_time, venues.id AS counterpart_id, venues.name AS name, venues.image_link AS image_link").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list shows of artist %d: %w", artistID, err)
	}
	return rows, nil
}
