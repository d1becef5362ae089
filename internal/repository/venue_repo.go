package repository

import (
	"context"
	"fmt"
	"strings"

	"Fyyur/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VenueRepository persists venues and their genre links.
type VenueRepository interface {
	// ListAll returns every venue in storage order.
	ListAll(ctx context.Context) ([]*model.Venue, error)
	// SearchByName matches name case-insensitively against %term%.
	SearchByName(ctx context.Context, term string) ([]*model.Venue, error)
	// GetByID loads a venue with its genres.
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	// Create inserts the venue and links its (already persisted) genres.
	Create(ctx context.Context, v *model.Venue) error
	// Update overwrites every scalar column and replaces the genre set.
	Update(ctx context.Context, v *model.Venue) error
	// ListShows returns the venue's shows joined with their artists.
	ListShows(ctx context.Context, venueID uint64) ([]ShowListing, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) ListAll(ctx context.Context) ([]*model.Venue, error) {
	var venues []*model.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	var venues []*model.Venue
	cond, pattern := nameMatch(r.db.Dialector.Name(), term)
	if err := r.db.WithContext(ctx).
		Where(cond, pattern).
		Order("id ASC").
		Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return venues, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	if err := r.db.WithContext(ctx).Preload("Genres").Where("id = ?", id).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *venueRepository) Create(ctx context.Context, v *model.Venue) error {
	if err := r.db.WithContext(ctx).Omit("Genres.*").Create(v).Error; err != nil {
		return fmt.Errorf("create venue %q: %w", v.Name, err)
	}
	return nil
}

func (r *venueRepository) Update(ctx context.Context, v *model.Venue) error {
	db := r.db.WithContext(ctx)
	res := db.Model(v).Select("*").Omit("id", clause.Associations).Updates(v)
	if res.Error != nil {
		return fmt.Errorf("update venue %d: %w", v.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := replaceGenres(db.Model(v), v.Genres); err != nil {
		return fmt.Errorf("replace genres of venue %d: %w", v.ID, err)
	}
	return nil
}

func (r *venueRepository) ListShows(ctx context.Context, venueID uint64) ([]ShowListing, error) {
	var rows []ShowListing
	if err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id AS show_id, shows.start_time AS start_time, artists.id AS counterpart_id, artists.name AS name, artists.image_link AS image_link").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list shows of venue %d: %w", venueID, err)
	}
	return rows, nil
}

// nameMatch builds a case-insensitive substring condition on name.
// % and _ in the term keep their wildcard meaning. Postgres folds case
// through ILIKE; SQLite's LOWER only folds ASCII letters.
func nameMatch(dialect, term string) (cond, pattern string) {
	if dialect == "postgres" {
		return "name ILIKE ?", "%" + term + "%"
	}
	return "LOWER(name) LIKE ?", "%" + strings.ToLower(term) + "%"
}

// replaceGenres clears the association and links the given genres.
func replaceGenres(owner *gorm.DB, genres []model.Genre) error {
	assoc := owner.Association("Genres")
	if len(genres) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(genres)
}
