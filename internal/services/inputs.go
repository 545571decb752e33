package services

import (
	"strings"
	"time"

	"fyyur/internal/models"
)

// VenueInput is a decoded venue form submission.
type VenueInput struct {
	Name               string   `json:"name" validate:"required,max=200"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,us_state"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `json:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

// ArtistInput is a decoded artist form submission.
type ArtistInput struct {
	Name               string   `json:"name" validate:"required,max=200"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,us_state"`
	Phone              string   `json:"phone" validate:"omitempty,phone"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=300"`
	Website            string   `json:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

// ShowInput is a decoded show form submission.
type ShowInput struct {
	ArtistID  uint      `json:"artist_id" validate:"gt=0"`
	VenueID   uint      `json:"venue_id" validate:"gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

func (in VenueInput) toModel() *models.Venue {
	description := strings.TrimSpace(in.SeekingDescription)
	if description == "" {
		description = models.DefaultVenueSeekingDescription
	}
	return &models.Venue{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              lookupChoice(States, in.State),
		Address:            strings.TrimSpace(in.Address),
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             canonicalGenres(in.Genres),
		ImageLink:          strings.TrimSpace(in.ImageLink),
		FacebookLink:       strings.TrimSpace(in.FacebookLink),
		Website:            strings.TrimSpace(in.Website),
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: description,
	}
}

func (in ArtistInput) toModel() *models.Artist {
	description := strings.TrimSpace(in.SeekingDescription)
	if description == "" {
		description = models.DefaultArtistSeekingDescription
	}
	return &models.Artist{
		Name:               strings.TrimSpace(in.Name),
		City:               strings.TrimSpace(in.City),
		State:              lookupChoice(States, in.State),
		Phone:              strings.TrimSpace(in.Phone),
		Genres:             canonicalGenres(in.Genres),
		ImageLink:          strings.TrimSpace(in.ImageLink),
		FacebookLink:       strings.TrimSpace(in.FacebookLink),
		Website:            strings.TrimSpace(in.Website),
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: description,
	}
}

// VenueInputFrom populates a form from a stored venue.
func VenueInputFrom(v *models.Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             models.RepairGenres(v.Genres),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistInputFrom populates a form from a stored artist.
func ArtistInputFrom(a *models.Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             models.RepairGenres(a.Genres),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func canonicalGenres(genres []string) models.Genres {
	out := make(models.Genres, 0, len(genres))
	for _, g := range genres {
		if c := lookupChoice(GenreChoices, g); c != "" && !out.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
