package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/services"
	"fyyur/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testZone = time.FixedZone("UTC-3", -3*3600)

var errStoreDown = errors.New("connection refused")

// fakeVenueService embeds the interface so tests only implement what the
// routes under test call.
type fakeVenueService struct {
	services.VenueService

	areas     []models.Area
	venues    map[uint]*models.Venue
	createErr error
	updateErr error
	deleteErr error
	created   []services.VenueInput
	updated   []services.VenueInput
	deleted   []uint
}

func newFakeVenueService(venues ...models.Venue) *fakeVenueService {
	f := &fakeVenueService{venues: make(map[uint]*models.Venue)}
	for i := range venues {
		f.venues[venues[i].ID] = &venues[i]
	}
	return f
}

func (f *fakeVenueService) ListByCity(ctx context.Context) ([]models.Area, error) {
	return f.areas, nil
}

func (f *fakeVenueService) Search(ctx context.Context, term string) (*models.VenueSearchResult, error) {
	result := &models.VenueSearchResult{Data: []models.VenueSummary{}}
	for _, v := range f.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			result.Data = append(result.Data, models.VenueSummary{ID: v.ID, Name: v.Name})
		}
	}
	result.Count = len(result.Data)
	return result, nil
}

func (f *fakeVenueService) Detail(ctx context.Context, id uint) (*models.VenueDetail, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &models.VenueDetail{Venue: *v, PastShows: []models.ShowEntry{}, UpcomingShows: []models.ShowEntry{}}, nil
}

func (f *fakeVenueService) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	out := make([]models.Venue, 0, len(f.venues))
	for _, v := range f.venues {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVenueService) Get(ctx context.Context, id uint) (*models.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return v, nil
}

func (f *fakeVenueService) Create(ctx context.Context, in services.VenueInput) (*models.Venue, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Venue{ID: 99, Name: in.Name}, nil
}

func (f *fakeVenueService) Update(ctx context.Context, id uint, in services.VenueInput) (*models.Venue, error) {
	f.updated = append(f.updated, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.venues[id]; !ok {
		return nil, services.ErrNotFound
	}
	return &models.Venue{ID: id, Name: in.Name}, nil
}

func (f *fakeVenueService) Delete(ctx context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.venues[id]; !ok {
		return services.ErrNotFound
	}
	delete(f.venues, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeArtistService struct {
	services.ArtistService

	artists   []models.ArtistSummary
	byID      map[uint]*models.Artist
	createErr error
	updateErr error
	deleteErr error
	created   []services.ArtistInput
	updated   []services.ArtistInput
	deleted   []uint
}

func newFakeArtistService(artists ...models.Artist) *fakeArtistService {
	f := &fakeArtistService{byID: make(map[uint]*models.Artist)}
	for i := range artists {
		f.byID[artists[i].ID] = &artists[i]
		f.artists = append(f.artists, models.ArtistSummary{ID: artists[i].ID, Name: artists[i].Name})
	}
	return f
}

func (f *fakeArtistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	return f.artists, nil
}

func (f *fakeArtistService) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	out := make([]models.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		out = append(out, models.Artist{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (f *fakeArtistService) Create(ctx context.Context, in services.ArtistInput) (*models.Artist, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Artist{ID: 7, Name: in.Name}, nil
}

func (f *fakeArtistService) Search(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	result := &models.ArtistSearchResult{Data: []models.ArtistSummary{}}
	for _, a := range f.byID {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			result.Data = append(result.Data, models.ArtistSummary{ID: a.ID, Name: a.Name})
		}
	}
	result.Count = len(result.Data)
	return result, nil
}

func (f *fakeArtistService) Detail(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &models.ArtistDetail{Artist: *a, PastShows: []models.ShowEntry{}, UpcomingShows: []models.ShowEntry{}}, nil
}

func (f *fakeArtistService) Get(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtistService) Update(ctx context.Context, id uint, in services.ArtistInput) (*models.Artist, error) {
	f.updated = append(f.updated, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.byID[id]; !ok {
		return nil, services.ErrNotFound
	}
	return &models.Artist{ID: id, Name: in.Name}, nil
}

func (f *fakeArtistService) Delete(ctx context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return services.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeShowService struct {
	shows     []models.ShowListing
	createErr error
	created   []services.ShowInput
}

func (f *fakeShowService) List(ctx context.Context) ([]models.ShowListing, error) {
	return f.shows, nil
}

func (f *fakeShowService) Create(ctx context.Context, in services.ShowInput) (*models.Show, error) {
	f.created = append(f.created, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Show{ID: 1, VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: in.StartTime}, nil
}

type testDeps struct {
	venues  *fakeVenueService
	artists *fakeArtistService
	shows   *fakeShowService
	images  services.ImageStore
}

func newTestApp(t *testing.T, deps testDeps) *fiber.App {
	t.Helper()

	if deps.venues == nil {
		deps.venues = newFakeVenueService()
	}
	if deps.artists == nil {
		deps.artists = newFakeArtistService()
	}
	if deps.shows == nil {
		deps.shows = &fakeShowService{}
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	pages := NewPages(NewFlashStore(session.New(), logger))
	app := fiber.New(fiber.Config{
		Views:        views.New(testZone),
		ErrorHandler: ErrorHandler(pages, logger),
	})

	home := NewHomeHandler(deps.venues, deps.artists, pages)
	venues := NewVenueHandler(deps.venues, pages, logger)
	artists := NewArtistHandler(deps.artists, pages, logger)
	shows := NewShowHandler(deps.shows, pages, testZone, logger)
	api := NewAPIHandler(deps.venues, deps.artists, deps.shows, logger)
	upload := NewUploadHandler(deps.images, logger)

	app.Get("/", home.Index)
	app.Get("/venues", venues.ListVenues)
	app.Post("/venues/search", venues.SearchVenues)
	app.Get("/venues/create", venues.NewVenueForm)
	app.Post("/venues/create", venues.CreateVenue)
	app.Get("/venues/:id", venues.ShowVenue)
	app.Get("/venues/:id/edit", venues.EditVenueForm)
	app.Post("/venues/:id/edit", venues.UpdateVenue)
	app.Post("/venues/:id/delete", venues.DeleteVenue)
	app.Delete("/venues/:id", venues.DeleteVenueJSON)
	app.Get("/artists", artists.ListArtists)
	app.Post("/artists/search", artists.SearchArtists)
	app.Get("/artists/create", artists.NewArtistForm)
	app.Post("/artists/create", artists.CreateArtist)
	app.Get("/artists/:id", artists.ShowArtist)
	app.Get("/artists/:id/edit", artists.EditArtistForm)
	app.Post("/artists/:id/edit", artists.UpdateArtist)
	app.Post("/artists/:id/delete", artists.DeleteArtist)
	app.Delete("/artists/:id", artists.DeleteArtistJSON)
	app.Get("/shows", shows.ListShows)
	app.Get("/shows/create", shows.NewShowForm)
	app.Post("/shows/create", shows.CreateShow)
	app.Get("/uploads/presign", upload.GetPresignedURL)
	app.Get("/api/v1/venues", api.GetVenues)
	app.Get("/api/v1/venues/:id", api.GetVenue)
	app.Get("/api/v1/shows", api.GetShows)

	return app
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// do runs req and returns the response with its body read.
func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// follow issues a GET to the redirect target carrying the response cookies.
func follow(t *testing.T, app *fiber.App, resp *http.Response) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, resp.Header.Get("Location"), nil)
	for _, c := range resp.Cookies() {
		req.AddCookie(c)
	}
	_, body := do(t, app, req)
	return body
}
