package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowHandler_ListShows(t *testing.T) {
	shows := &fakeShowService{shows: []models.ShowListing{{
		ID:         1,
		VenueID:    1,
		VenueName:  "The Musical Hop",
		ArtistID:   4,
		ArtistName: "Guns N Petals",
		StartTime:  time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
	}}}
	app := newTestApp(t, testDeps{shows: shows})

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/shows", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "Tuesday May, 21, 2019 at 6:30PM")
}

func TestShowHandler_Create(t *testing.T) {
	shows := &fakeShowService{}
	app := newTestApp(t, testDeps{shows: shows})

	resp, _ := do(t, app, postForm("/shows/create", url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}))
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Len(t, shows.created, 1)

	in := shows.created[0]
	assert.Equal(t, uint(4), in.ArtistID)
	assert.Equal(t, uint(1), in.VenueID)
	assert.True(t, time.Date(2035, 4, 1, 23, 0, 0, 0, time.UTC).Equal(in.StartTime))

	body := follow(t, app, resp)
	assert.Contains(t, body, "Show was successfully listed!")
}

func TestShowHandler_CreateRejectsUnparsableFields(t *testing.T) {
	shows := &fakeShowService{}
	app := newTestApp(t, testDeps{shows: shows})

	resp, body := do(t, app, postForm("/shows/create", url.Values{
		"artist_id":  {"four"},
		"venue_id":   {""},
		"start_time": {"tomorrow"},
	}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Not a valid integer value.")
	assert.Contains(t, body, "Not a valid datetime value.")
	assert.Contains(t, body, "This field is required.")
	assert.Contains(t, body, `value="four"`)
	assert.Empty(t, shows.created)
}

func TestShowHandler_CreateUnknownVenue(t *testing.T) {
	shows := &fakeShowService{createErr: &services.ValidationError{Fields: map[string]string{"venue_id": "No venue with this ID."}}}
	app := newTestApp(t, testDeps{shows: shows})

	resp, body := do(t, app, postForm("/shows/create", url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"42"},
		"start_time": {"2035-04-01T20:00"},
	}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "No venue with this ID.")
}

func TestShowHandler_CreateFailure(t *testing.T) {
	shows := &fakeShowService{createErr: errStoreDown}
	app := newTestApp(t, testDeps{shows: shows})

	resp, body := do(t, app, postForm("/shows/create", url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00"},
	}))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "An error has occurred. Show could not be listed.")
}
