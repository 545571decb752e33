package handlers

import (
	"errors"
	"strconv"

	"fyyur/internal/services"
	"fyyur/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// APIHandler serves the read-only JSON view of the directory.
type APIHandler struct {
	venues  services.VenueService
	artists services.ArtistService
	shows   services.ShowService
	logger  *logrus.Logger
}

func NewAPIHandler(venues services.VenueService, artists services.ArtistService, shows services.ShowService, logger *logrus.Logger) *APIHandler {
	return &APIHandler{
		venues:  venues,
		artists: artists,
		shows:   shows,
		logger:  logger,
	}
}

// GetVenues godoc
// @Summary List venues by area
// @Description Venues grouped by city and state, each with its number of upcoming shows
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Area}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues [get]
func (h *APIHandler) GetVenues(c *fiber.Ctx) error {
	areas, err := h.venues.ListByCity(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venues")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", areas)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive substring search on venue names. An empty term matches every venue.
// @Tags venues
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.StandardResponse{data=models.VenueSearchResult}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/search [get]
func (h *APIHandler) SearchVenues(c *fiber.Ctx) error {
	result, err := h.venues.Search(c.Context(), c.Query("q"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to search venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search venues")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", result)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Description Venue details with its past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=models.VenueDetail}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /venues/{id} [get]
func (h *APIHandler) GetVenue(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	detail, err := h.venues.Detail(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", detail)
}

// GetArtists godoc
// @Summary List artists
// @Description Every artist ordered by ID
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.ArtistSummary}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists [get]
func (h *APIHandler) GetArtists(c *fiber.Ctx) error {
	artists, err := h.artists.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artists")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive substring search on artist names. An empty term matches every artist.
// @Tags artists
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.StandardResponse{data=models.ArtistSearchResult}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists/search [get]
func (h *APIHandler) SearchArtists(c *fiber.Ctx) error {
	result, err := h.artists.Search(c.Context(), c.Query("q"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to search artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search artists")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", result)
}

// GetArtist godoc
// @Summary Get artist by ID
// @Description Artist details with past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=models.ArtistDetail}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /artists/{id} [get]
func (h *APIHandler) GetArtist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	detail, err := h.artists.Detail(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", detail)
}

// GetShows godoc
// @Summary List shows
// @Description Every show ordered by start time
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.ShowListing}
// @Failure 500 {object} utils.StandardResponse
// @Router /shows [get]
func (h *APIHandler) GetShows(c *fiber.Ctx) error {
	shows, err := h.shows.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list shows")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}
