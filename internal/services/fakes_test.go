package services

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository"

	"github.com/sirupsen/logrus"
)

var testZone = time.FixedZone("UTC-3", -3*3600)

// testNow is the fixed "now" used by service tests.
var testNow = time.Date(2026, 5, 21, 20, 0, 0, 0, testZone)

func fixedClock() time.Time { return testNow }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeVenueRepo is an in-memory VenueRepository.
type fakeVenueRepo struct {
	byID      map[uint]*models.Venue
	nextID    uint
	createErr error
	updateErr error
	deleteErr error
	created   []*models.Venue
}

func newFakeVenueRepo(venues ...models.Venue) *fakeVenueRepo {
	f := &fakeVenueRepo{byID: make(map[uint]*models.Venue), nextID: 1}
	for i := range venues {
		v := venues[i]
		f.byID[v.ID] = &v
		if v.ID >= f.nextID {
			f.nextID = v.ID + 1
		}
	}
	return f
}

func (f *fakeVenueRepo) all() []models.Venue {
	out := make([]models.Venue, 0, len(f.byID))
	for _, v := range f.byID {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeVenueRepo) Create(ctx context.Context, v *models.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	v.ID = f.nextID
	f.nextID++
	stored := *v
	f.byID[v.ID] = &stored
	f.created = append(f.created, v)
	return nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, v *models.Venue) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[v.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *v
	f.byID[v.ID] = &stored
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	v, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.byID, id)
	return v, nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *v
	return &out, nil
}

func (f *fakeVenueRepo) FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeVenueRepo) FindAllWithShows(ctx context.Context) ([]models.Venue, error) {
	return f.all(), nil
}

func (f *fakeVenueRepo) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	var out []models.Venue
	for _, v := range f.all() {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(strings.TrimSpace(term))) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeVenueRepo) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	out := f.all()
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeArtistRepo is an in-memory ArtistRepository.
type fakeArtistRepo struct {
	byID      map[uint]*models.Artist
	nextID    uint
	createErr error
}

func newFakeArtistRepo(artists ...models.Artist) *fakeArtistRepo {
	f := &fakeArtistRepo{byID: make(map[uint]*models.Artist), nextID: 1}
	for i := range artists {
		a := artists[i]
		f.byID[a.ID] = &a
		if a.ID >= f.nextID {
			f.nextID = a.ID + 1
		}
	}
	return f
}

func (f *fakeArtistRepo) all() []models.Artist {
	out := make([]models.Artist, 0, len(f.byID))
	for _, a := range f.byID {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeArtistRepo) Create(ctx context.Context, a *models.Artist) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = f.nextID
	f.nextID++
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeArtistRepo) Update(ctx context.Context, a *models.Artist) error {
	if _, ok := f.byID[a.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeArtistRepo) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.byID, id)
	return a, nil
}

func (f *fakeArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeArtistRepo) FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	return f.all(), nil
}

func (f *fakeArtistRepo) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	var out []models.Artist
	for _, a := range f.all() {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(strings.TrimSpace(term))) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeArtistRepo) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return f.all(), nil
}

// fakeShowRepo is an in-memory ShowRepository that checks references
// against the venue and artist fakes.
type fakeShowRepo struct {
	venues  *fakeVenueRepo
	artists *fakeArtistRepo
	shows   []models.Show
	nextID  uint
}

func (f *fakeShowRepo) Create(ctx context.Context, s *models.Show) error {
	if _, ok := f.venues.byID[s.VenueID]; !ok {
		return repository.ErrVenueNotFound
	}
	if _, ok := f.artists.byID[s.ArtistID]; !ok {
		return repository.ErrArtistNotFound
	}
	f.nextID++
	s.ID = f.nextID
	f.shows = append(f.shows, *s)
	return nil
}

func (f *fakeShowRepo) FindAll(ctx context.Context) ([]models.Show, error) {
	return f.shows, nil
}

// fakeImageStore records removed image URLs.
type fakeImageStore struct {
	removed []string
}

func (f *fakeImageStore) GeneratePresignedURL(filename, contentType string) (string, string, error) {
	return "http://upload/" + filename, "http://public/" + filename, nil
}

func (f *fakeImageStore) RemoveImage(ctx context.Context, imageURL string) error {
	f.removed = append(f.removed, imageURL)
	return nil
}
