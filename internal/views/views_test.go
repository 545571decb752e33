package views

import (
	"bytes"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingZone = time.FixedZone("UTC-3", -3*3600)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tuesday May, 21, 2019 at 6:30PM", FormatDateTime(ts, "full", bookingZone))
	assert.Equal(t, "Tue 05, 21, 2019 6:30PM", FormatDateTime(ts, "medium", bookingZone))
	assert.Equal(t, "2019-05-21", FormatDateTime(ts, "2006-01-02", bookingZone))
	assert.Empty(t, FormatDateTime(time.Time{}, "full", bookingZone))
}

func TestEngine_RendersPageInLayout(t *testing.T) {
	engine := New(bookingZone)
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "pages/venues", map[string]interface{}{
		"Title":     "Venues",
		"CSRFToken": "tok",
		"Areas": []models.Area{{
			City:   "San Francisco",
			State:  "CA",
			Venues: []models.VenueSummary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}},
		}},
	}, Layout)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Venues | Fyyur</title>")
	assert.Contains(t, out, `href="/venues/1"`)
	assert.Contains(t, out, "2 upcoming shows")
	assert.Contains(t, out, `name="csrf_token" value="tok"`)
}

func TestEngine_RendersVenueForm(t *testing.T) {
	engine := New(bookingZone)

	var buf bytes.Buffer
	err := engine.Render(&buf, "forms/venue", map[string]interface{}{
		"Heading": "Edit venue",
		"Action":  "/venues/1/edit",
		"Submit":  "Save",
		"Form": services.VenueInput{
			Name:          "The Musical Hop",
			State:         "CA",
			Genres:        []string{"Jazz", "Swing"},
			SeekingTalent: true,
		},
		"Errors": map[string]string{"city": "This field is required."},
	}, Layout)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<option value="CA" selected>CA</option>`)
	assert.Contains(t, out, `<option value="Jazz" selected>Jazz</option>`)
	assert.Contains(t, out, `<option value="Blues">Blues</option>`)
	assert.Contains(t, out, "This field is required.")
	assert.Contains(t, out, `value="y" checked`)
}

func TestEngine_RendersVenueDetail(t *testing.T) {
	engine := New(bookingZone)

	detail := &models.VenueDetail{
		Venue: models.Venue{ID: 1, Name: "The Musical Hop", Genres: models.Genres{"Jazz"}},
		UpcomingShows: []models.ShowEntry{{
			ShowID:          3,
			CounterpartID:   5,
			CounterpartName: "Matt Quevedo",
			StartTime:       time.Date(2035, 4, 1, 23, 0, 0, 0, time.UTC),
		}},
		UpcomingShowsCount: 1,
	}

	var buf bytes.Buffer
	err := engine.Render(&buf, "pages/show_venue", map[string]interface{}{"Venue": detail}, Layout)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1 Upcoming Show<")
	assert.Contains(t, out, "0 Past Shows")
	assert.Contains(t, out, `href="/artists/5"`)
	assert.Contains(t, out, "Sunday April, 1, 2035 at 8:00PM")
	assert.Contains(t, out, "No Phone")
}
