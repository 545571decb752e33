package services

import (
	"context"
	"errors"
	"fmt"

	"fyyur/internal/models"
	"fyyur/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	// Directory operations
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (*models.ArtistSearchResult, error)
	Detail(ctx context.Context, id uint) (*models.ArtistDetail, error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)

	// CRUD operations
	Get(ctx context.Context, id uint) (*models.Artist, error)
	Create(ctx context.Context, in ArtistInput) (*models.Artist, error)
	Update(ctx context.Context, id uint, in ArtistInput) (*models.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type artistService struct {
	repo   repository.ArtistRepository
	images ImageStore
	clock  Clock
	logger *logrus.Logger
}

func NewArtistService(repo repository.ArtistRepository, images ImageStore, clock Clock, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:   repo,
		images: images,
		clock:  clock,
		logger: logger,
	}
}

// List returns every artist ordered by id.
func (s *artistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	out := make([]models.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, models.ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (s *artistService) Search(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	artists, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	now := s.clock()
	result := &models.ArtistSearchResult{Data: make([]models.ArtistSummary, 0, len(artists))}
	for _, a := range artists {
		result.Data = append(result.Data, models.ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: countUpcoming(now, a.Shows),
		})
	}
	result.Count = len(result.Data)
	return result, nil
}

func (s *artistService) Detail(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	artist, err := s.repo.FindByIDWithShows(ctx, id)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ShowEntry, 0, len(artist.Shows))
	for _, show := range artist.Shows {
		entry := models.ShowEntry{
			ShowID:        show.ID,
			CounterpartID: show.VenueID,
			StartTime:     show.StartTime,
		}
		if show.Venue != nil {
			entry.CounterpartName = show.Venue.Name
			entry.CounterpartImageLink = show.Venue.ImageLink
		}
		entries = append(entries, entry)
	}

	past, upcoming := PartitionShows(s.clock(), entries)
	artist.Shows = nil
	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *artistService) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	return s.repo.FindRecent(ctx, limit)
}

func (s *artistService) Get(ctx context.Context, id uint) (*models.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) Create(ctx context.Context, in ArtistInput) (*models.Artist, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	now := s.clock()
	artist := in.toModel()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	if err := s.repo.Create(ctx, artist); err != nil {
		s.logger.WithError(err).WithField("name", artist.Name).Error("Failed to create artist")
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) Update(ctx context.Context, id uint, in ArtistInput) (*models.Artist, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Validate(in); err != nil {
		return nil, err
	}

	artist := in.toModel()
	artist.ID = id
	artist.CreatedAt = existing.CreatedAt
	artist.UpdatedAt = s.clock()

	if err := s.repo.Update(ctx, artist); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to update artist")
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	if existing.ImageLink != artist.ImageLink {
		s.removeImage(ctx, existing.ImageLink)
	}
	return artist, nil
}

func (s *artistService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete artist")
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	s.removeImage(ctx, deleted.ImageLink)
	return nil
}

func (s *artistService) removeImage(ctx context.Context, imageURL string) {
	if s.images == nil || imageURL == "" {
		return
	}
	if err := s.images.RemoveImage(ctx, imageURL); err != nil {
		s.logger.WithError(err).WithField("image", imageURL).Warn("Failed to remove artist image")
	}
}
