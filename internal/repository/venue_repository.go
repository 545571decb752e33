package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/models"
)

type VenueRepository interface {
	// CRUD operations
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) (*models.Venue, error)
	FindByID(ctx context.Context, id uint) (*models.Venue, error)

	// Directory operations
	FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error)
	FindAllWithShows(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	FindRecent(ctx context.Context, limit int) ([]models.Venue, error)
}

type venueRepository struct {
	store[models.Venue]
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		store: newStore[models.Venue](db),
	}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.create(ctx, venue)
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	return r.update(ctx, venue.ID, venue)
}

func (r *venueRepository) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	return r.remove(ctx, id, "venue_id")
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return r.findByID(ctx, id)
}

func (r *venueRepository) FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error) {
	return r.findByID(ctx, id, "Shows.Artist")
}

func (r *venueRepository) FindAllWithShows(ctx context.Context) ([]models.Venue, error) {
	return r.list(ctx, "city ASC, state ASC, name ASC, id ASC", 0, "Shows")
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	return r.searchByName(ctx, term, "Shows")
}

func (r *venueRepository) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return r.list(ctx, "created_at DESC, id DESC", limit)
}
