package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyyur/internal/models"
	"fyyur/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	// Directory operations
	ListByCity(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (*models.VenueSearchResult, error)
	Detail(ctx context.Context, id uint) (*models.VenueDetail, error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)

	// CRUD operations
	Get(ctx context.Context, id uint) (*models.Venue, error)
	Create(ctx context.Context, in VenueInput) (*models.Venue, error)
	Update(ctx context.Context, id uint, in VenueInput) (*models.Venue, error)
	Delete(ctx context.Context, id uint) error
}

type venueService struct {
	repo   repository.VenueRepository
	images ImageStore
	clock  Clock
	logger *logrus.Logger
}

// NewVenueService builds a VenueService. images may be nil when uploads are
// not configured.
func NewVenueService(repo repository.VenueRepository, images ImageStore, clock Clock, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:   repo,
		images: images,
		clock:  clock,
		logger: logger,
	}
}

// ListByCity groups venues by city and state. Areas are ordered by city
// then state, venues inside an area by name.
func (s *venueService) ListByCity(ctx context.Context) ([]models.Area, error) {
	venues, err := s.repo.FindAllWithShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	sort.SliceStable(venues, func(i, j int) bool {
		a, b := venues[i], venues[j]
		if c := compareFold(a.City, b.City); c != 0 {
			return c < 0
		}
		if c := compareFold(a.State, b.State); c != 0 {
			return c < 0
		}
		if a.City != b.City {
			return a.City < b.City
		}
		if a.State != b.State {
			return a.State < b.State
		}
		if c := compareFold(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})

	now := s.clock()
	areas := make([]models.Area, 0)
	for _, v := range venues {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, models.Area{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countUpcoming(now, v.Shows),
		})
	}
	return areas, nil
}

func (s *venueService) Search(ctx context.Context, term string) (*models.VenueSearchResult, error) {
	venues, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	now := s.clock()
	result := &models.VenueSearchResult{Data: make([]models.VenueSummary, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countUpcoming(now, v.Shows),
		})
	}
	result.Count = len(result.Data)
	return result, nil
}

func (s *venueService) Detail(ctx context.Context, id uint) (*models.VenueDetail, error) {
	venue, err := s.repo.FindByIDWithShows(ctx, id)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ShowEntry, 0, len(venue.Shows))
	for _, show := range venue.Shows {
		entry := models.ShowEntry{
			ShowID:        show.ID,
			CounterpartID: show.ArtistID,
			StartTime:     show.StartTime,
		}
		if show.Artist != nil {
			entry.CounterpartName = show.Artist.Name
			entry.CounterpartImageLink = show.Artist.ImageLink
		}
		entries = append(entries, entry)
	}

	past, upcoming := PartitionShows(s.clock(), entries)
	venue.Shows = nil
	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *venueService) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	return s.repo.FindRecent(ctx, limit)
}

func (s *venueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *venueService) Create(ctx context.Context, in VenueInput) (*models.Venue, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	now := s.clock()
	venue := in.toModel()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if err := s.repo.Create(ctx, venue); err != nil {
		s.logger.WithError(err).WithField("name", venue.Name).Error("Failed to create venue")
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) Update(ctx context.Context, id uint, in VenueInput) (*models.Venue, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Validate(in); err != nil {
		return nil, err
	}

	venue := in.toModel()
	venue.ID = id
	venue.CreatedAt = existing.CreatedAt
	venue.UpdatedAt = s.clock()

	if err := s.repo.Update(ctx, venue); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to update venue")
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	if existing.ImageLink != venue.ImageLink {
		s.removeImage(ctx, existing.ImageLink)
	}
	return venue, nil
}

// Delete removes the venue and its shows. A missing venue is reported as
// ErrNotFound.
func (s *venueService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete venue")
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.removeImage(ctx, deleted.ImageLink)
	return nil
}

func (s *venueService) removeImage(ctx context.Context, imageURL string) {
	if s.images == nil || imageURL == "" {
		return
	}
	if err := s.images.RemoveImage(ctx, imageURL); err != nil {
		s.logger.WithError(err).WithField("image", imageURL).Warn("Failed to remove venue image")
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
