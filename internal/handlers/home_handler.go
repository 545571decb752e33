package handlers

import (
	"fyyur/internal/services"

	"github.com/gofiber/fiber/v2"
)

const recentLimit = 10

type HomeHandler struct {
	venues  services.VenueService
	artists services.ArtistService
	pages   *Pages
}

func NewHomeHandler(venues services.VenueService, artists services.ArtistService, pages *Pages) *HomeHandler {
	return &HomeHandler{
		venues:  venues,
		artists: artists,
		pages:   pages,
	}
}

// Index shows the most recently listed venues and artists.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	venues, err := h.venues.Recent(c.Context(), recentLimit)
	if err != nil {
		return err
	}
	artists, err := h.artists.Recent(c.Context(), recentLimit)
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/home", fiber.Map{
		"Venues":  venues,
		"Artists": artists,
	})
}
