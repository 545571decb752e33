package repository

import "errors"

var (
	// ErrNotFound is returned when a venue, artist or show does not exist.
	ErrNotFound = errors.New("record not found")

	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
)
