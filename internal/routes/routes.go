package routes

import (
	"fyyur/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Handlers struct {
	Home    *handlers.HomeHandler
	Venues  *handlers.VenueHandler
	Artists *handlers.ArtistHandler
	Shows   *handlers.ShowHandler
	API     *handlers.APIHandler
	Upload  *handlers.UploadHandler
	Health  *handlers.HealthHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.Check)
	app.Get("/", h.Home.Index)

	// Venue pages; /create is registered ahead of /:id
	venues := app.Group("/venues")
	{
		venues.Get("/", h.Venues.ListVenues)
		venues.Post("/search", h.Venues.SearchVenues)
		venues.Get("/create", h.Venues.NewVenueForm)
		venues.Post("/create", h.Venues.CreateVenue)
		venues.Get("/:id", h.Venues.ShowVenue)
		venues.Get("/:id/edit", h.Venues.EditVenueForm)
		venues.Post("/:id/edit", h.Venues.UpdateVenue)
		venues.Post("/:id/delete", h.Venues.DeleteVenue)
		venues.Delete("/:id", h.Venues.DeleteVenueJSON)
	}

	artists := app.Group("/artists")
	{
		artists.Get("/", h.Artists.ListArtists)
		artists.Post("/search", h.Artists.SearchArtists)
		artists.Get("/create", h.Artists.NewArtistForm)
		artists.Post("/create", h.Artists.CreateArtist)
		artists.Get("/:id", h.Artists.ShowArtist)
		artists.Get("/:id/edit", h.Artists.EditArtistForm)
		artists.Post("/:id/edit", h.Artists.UpdateArtist)
		artists.Post("/:id/delete", h.Artists.DeleteArtist)
		artists.Delete("/:id", h.Artists.DeleteArtistJSON)
	}

	shows := app.Group("/shows")
	{
		shows.Get("/", h.Shows.ListShows)
		shows.Get("/create", h.Shows.NewShowForm)
		shows.Post("/create", h.Shows.CreateShow)
	}

	app.Get("/uploads/presign", h.Upload.GetPresignedURL)

	// API versioning
	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, OPTIONS",
		MaxAge:       86400, // 24 hours
	}))
	v1 := api.Group("/v1")

	v1.Get("/venues", h.API.GetVenues)
	v1.Get("/venues/search", h.API.SearchVenues)
	v1.Get("/venues/:id", h.API.GetVenue)
	v1.Get("/artists", h.API.GetArtists)
	v1.Get("/artists/search", h.API.SearchArtists)
	v1.Get("/artists/:id", h.API.GetArtist)
	v1.Get("/shows", h.API.GetShows)
}
