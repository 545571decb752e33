package handlers

import (
	"strconv"
	"strings"
	"time"

	"fyyur/internal/services"
)

type venueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f venueForm) input() services.VenueInput {
	return services.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      checked(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

type artistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f artistForm) input() services.ArtistInput {
	return services.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       checked(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

// showForm keeps the raw strings so a rejected form is re-rendered as typed.
type showForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// input converts the form, collecting conversion failures alongside the
// command's own validation messages.
func (f showForm) input(loc *time.Location) (services.ShowInput, *services.ValidationError) {
	var in services.ShowInput
	verr := &services.ValidationError{}

	if id, ok := parseID(f.ArtistID); ok {
		in.ArtistID = id
	} else {
		verr.Add("artist_id", "Not a valid integer value.")
	}
	if id, ok := parseID(f.VenueID); ok {
		in.VenueID = id
	} else {
		verr.Add("venue_id", "Not a valid integer value.")
	}

	start, err := services.ParseStartTime(f.StartTime, loc)
	if err != nil {
		verr.Add("start_time", "Not a valid datetime value.")
	}
	in.StartTime = start

	if !verr.HasErrors() {
		return in, nil
	}
	if err := services.Validate(in); err != nil {
		if fieldErrs, ok := err.(*services.ValidationError); ok {
			for field, msg := range fieldErrs.Fields {
				verr.Add(field, msg)
			}
		}
	}
	return in, verr
}

// parseID accepts an empty value as zero so the required check reports it.
func parseID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// checked reports whether a checkbox was submitted as ticked.
func checked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "off", "n", "0":
		return false
	}
	return true
}
