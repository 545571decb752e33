package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/models"
)

type ArtistRepository interface {
	// CRUD operations
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint) (*models.Artist, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)

	// Directory operations
	FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	FindRecent(ctx context.Context, limit int) ([]models.Artist, error)
}

type artistRepository struct {
	store[models.Artist]
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		store: newStore[models.Artist](db),
	}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	return r.create(ctx, artist)
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	return r.update(ctx, artist.ID, artist)
}

func (r *artistRepository) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	return r.remove(ctx, id, "artist_id")
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	return r.findByID(ctx, id)
}

func (r *artistRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error) {
	return r.findByID(ctx, id, "Shows.Venue")
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	return r.list(ctx, "id ASC", 0)
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	return r.searchByName(ctx, term, "Shows")
}

func (r *artistRepository) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return r.list(ctx, "created_at DESC, id DESC", limit)
}
