package handlers

import (
	"errors"
	"fmt"

	"fyyur/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.ArtistService
	pages   *Pages
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, pages *Pages, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		pages:   pages,
		logger:  logger,
	}
}

func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/artists", fiber.Map{
		"Title":   "Artists",
		"Artists": artists,
	})
}

func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	term := c.FormValue("search_term")

	result, err := h.service.Search(c.Context(), term)
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/search", fiber.Map{
		"Title":      "Artist Search",
		"SearchTerm": term,
		"Results":    result,
		"BasePath":   "/artists",
	})
}

func (h *ArtistHandler) ShowArtist(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Detail(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/show_artist", fiber.Map{
		"Title":  detail.Name,
		"Artist": detail,
	})
}

func (h *ArtistHandler) NewArtistForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, 0, services.ArtistInput{}, nil)
}

func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	var form artistForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	in := form.input()

	artist, err := h.service.Create(c.Context(), in)
	if err != nil {
		h.pages.Flashes.Now(c, flashDanger, fmt.Sprintf("An error has occurred. Artist %s could not be listed.", in.Name))

		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return h.renderForm(c, fiber.StatusUnprocessableEntity, 0, in, verr.Fields)
		}
		return h.pages.Render(c, fiber.StatusInternalServerError, "errors/500", fiber.Map{"Title": "Server Error"})
	}

	h.pages.Flashes.Add(c, flashSuccess, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *ArtistHandler) EditArtistForm(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	artist, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return h.renderForm(c, fiber.StatusOK, id, services.ArtistInputFrom(artist), nil)
}

func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	var form artistForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	in := form.input()

	artist, err := h.service.Update(c.Context(), id, in)
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return h.renderForm(c, fiber.StatusUnprocessableEntity, id, in, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return fiber.ErrNotFound
	case err != nil:
		h.pages.Flashes.Add(c, flashDanger, fmt.Sprintf("An error has occurred. Artist %s could not be updated.", in.Name))
	default:
		h.pages.Flashes.Add(c, flashSuccess, fmt.Sprintf("Artist %s was successfully updated.", artist.Name))
	}
	return c.Redirect(fmt.Sprintf("/artists/%d", id), fiber.StatusSeeOther)
}

// DeleteArtist handles the form button on the artist page.
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		h.pages.Flashes.Add(c, flashDanger, "An error has occurred. Artist could not be deleted.")
	} else {
		h.pages.Flashes.Add(c, flashSuccess, "Artist was successfully deleted.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// DeleteArtistJSON handles script callers issuing DELETE /artists/:id.
func (h *ArtistHandler) DeleteArtistJSON(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"success": false})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ArtistHandler) renderForm(c *fiber.Ctx, status int, id uint, in services.ArtistInput, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	data := fiber.Map{
		"Title":   "New Artist",
		"Heading": "List a new artist",
		"Action":  "/artists/create",
		"Submit":  "Create Artist",
		"Form":    in,
		"Errors":  fieldErrors,
	}
	if id != 0 {
		data["Title"] = "Edit Artist"
		data["Heading"] = "Edit artist " + in.Name
		data["Action"] = fmt.Sprintf("/artists/%d/edit", id)
		data["Submit"] = "Save Changes"
	}
	return h.pages.Render(c, status, "forms/artist", data)
}
