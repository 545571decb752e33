package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository"

	"github.com/sirupsen/logrus"
)

// StartTimeLayouts are the accepted start_time formats. Values without an
// offset are read in the booking zone.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, in ShowInput) (*models.Show, error)
}

type showService struct {
	repo   repository.ShowRepository
	clock  Clock
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, clock Clock, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// List returns every show ordered by start time.
func (s *showService) List(ctx context.Context) ([]models.ShowListing, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	out := make([]models.ShowListing, 0, len(shows))
	for _, show := range shows {
		row := models.ShowListing{
			ID:        show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime,
		}
		if show.Venue != nil {
			row.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			row.ArtistName = show.Artist.Name
			row.ArtistImageLink = show.Artist.ImageLink
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *showService) Create(ctx context.Context, in ShowInput) (*models.Show, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	now := s.clock()
	show := &models.Show{
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
		StartTime: in.StartTime,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, show); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			return nil, &ValidationError{Fields: map[string]string{"venue_id": "No venue with this ID."}}
		case errors.Is(err, repository.ErrArtistNotFound):
			return nil, &ValidationError{Fields: map[string]string{"artist_id": "No artist with this ID."}}
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"venue_id":  in.VenueID,
			"artist_id": in.ArtistID,
		}).Error("Failed to create show")
		return nil, fmt.Errorf("failed to create show: %w", err)
	}
	return show, nil
}

// ParseStartTime reads a submitted start time. RFC 3339 values keep their
// offset; other layouts are interpreted in loc.
func ParseStartTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range StartTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a valid datetime value: %q", raw)
}
