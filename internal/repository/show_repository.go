package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
}

type showRepository struct {
	store[models.Show]
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		store: newStore[models.Show](db),
	}
}

// Create inserts show after confirming its venue and artist exist. The id is
// assigned by the table sequence.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrVenueNotFound
		}
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrArtistNotFound
		}

		show.ID = 0
		return tx.Omit(clause.Associations).Create(show).Error
	})
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	return r.list(ctx, "start_time ASC, id ASC", 0, "Venue", "Artist")
}
