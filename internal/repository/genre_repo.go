package repository

import (
	"context"
	"fmt"

	"Fyyur/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreRepository resolves genre names to rows, creating missing ones.
type GenreRepository interface {
	// FindOrCreate returns the genre with exactly this name, inserting it
	// when absent. Safe under concurrent callers thanks to uq_genre_name.
	FindOrCreate(ctx context.Context, name string) (*model.Genre, error)
	// Resolve maps names to genres, dropping repeated names.
	Resolve(ctx context.Context, names []string) ([]model.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*model.Genre, error) {
	db := r.db.WithContext(ctx)

	var g model.Genre
	if err := db.Where("name = ?", name).Limit(1).Find(&g).Error; err != nil {
		return nil, fmt.Errorf("find genre %q: %w", name, err)
	}
	if g.ID != 0 {
		return &g, nil
	}

	// insert; on a name conflict another writer won, so just re-read by name
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&model.Genre{Name: name}).Error; err != nil {
		return nil, fmt.Errorf("create genre %q: %w", name, err)
	}
	if err := db.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, fmt.Errorf("reload genre %q: %w", name, err)
	}
	return &g, nil
}

func (r *genreRepository) Resolve(ctx context.Context, names []string) ([]model.Genre, error) {
	genres := make([]model.Genre, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		g, err := r.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *g)
	}
	return genres, nil
}
