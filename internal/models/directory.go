package models

import "time"

// VenueSummary is a venue row in listings and search results.
type VenueSummary struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"The Musical Hop"`
	NumUpcomingShows int    `json:"num_upcoming_shows" example:"0"`
}

// ArtistSummary is an artist row in listings and search results.
type ArtistSummary struct {
	ID               uint   `json:"id" example:"4"`
	Name             string `json:"name" example:"Guns N Petals"`
	NumUpcomingShows int    `json:"num_upcoming_shows" example:"0"`
}

// Area groups the venues of one city/state pair.
type Area struct {
	City   string         `json:"city" example:"San Francisco"`
	State  string         `json:"state" example:"CA"`
	Venues []VenueSummary `json:"venues"`
}

type VenueSearchResult struct {
	Count int            `json:"count" example:"1"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResult struct {
	Count int             `json:"count" example:"1"`
	Data  []ArtistSummary `json:"data"`
}

// ShowEntry is one show on a detail page, annotated with the counterpart
// entity (the artist on a venue page, the venue on an artist page).
type ShowEntry struct {
	ShowID               uint      `json:"show_id"`
	CounterpartID        uint      `json:"counterpart_id"`
	CounterpartName      string    `json:"counterpart_name"`
	CounterpartImageLink string    `json:"counterpart_image_link"`
	StartTime            time.Time `json:"start_time"`
}

type VenueDetail struct {
	Venue
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ShowListing is a row of the shows page.
type ShowListing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}
