package handlers

import (
	"errors"
	"fmt"

	"fyyur/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	pages   *Pages
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, pages *Pages, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		pages:   pages,
		logger:  logger,
	}
}

func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	areas, err := h.service.ListByCity(c.Context())
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/venues", fiber.Map{
		"Title": "Venues",
		"Areas": areas,
	})
}

func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	term := c.FormValue("search_term")

	result, err := h.service.Search(c.Context(), term)
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/search", fiber.Map{
		"Title":      "Venue Search",
		"SearchTerm": term,
		"Results":    result,
		"BasePath":   "/venues",
	})
}

func (h *VenueHandler) ShowVenue(c *fiber.Ctx) error {
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
	return h.pages.Render(c, fiber.StatusOK, "pages/show_venue", fiber.Map{
		"Title": detail.Name,
		"Venue": detail,
	})
}

func (h *VenueHandler) NewVenueForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, 0, services.VenueInput{}, nil)
}

func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	var form venueForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	in := form.input()

	venue, err := h.service.Create(c.Context(), in)
	if err != nil {
		h.pages.Flashes.Now(c, flashDanger, fmt.Sprintf("An error has occurred. Venue %s could not be listed.", in.Name))

		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return h.renderForm(c, fiber.StatusUnprocessableEntity, 0, in, verr.Fields)
		}
		return h.pages.Render(c, fiber.StatusInternalServerError, "errors/500", fiber.Map{"Title": "Server Error"})
	}

	h.pages.Flashes.Add(c, flashSuccess, fmt.Sprintf("Venue %s was successfully listed.", venue.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *VenueHandler) EditVenueForm(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	venue, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return h.renderForm(c, fiber.StatusOK, id, services.VenueInputFrom(venue), nil)
}

func (h *VenueHandler) UpdateVenue(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	var form venueForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}
	in := form.input()

	venue, err := h.service.Update(c.Context(), id, in)
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return h.renderForm(c, fiber.StatusUnprocessableEntity, id, in, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return fiber.ErrNotFound
	case err != nil:
		h.pages.Flashes.Add(c, flashDanger, fmt.Sprintf("An error has occurred. Venue %s could not be updated.", in.Name))
	default:
		h.pages.Flashes.Add(c, flashSuccess, fmt.Sprintf("Venue %s was successfully updated.", venue.Name))
	}
	return c.Redirect(fmt.Sprintf("/venues/%d", id), fiber.StatusSeeOther)
}

// DeleteVenue handles the form button on the venue page.
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	id, err := entityID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		h.pages.Flashes.Add(c, flashDanger, "An error has occurred. Venue could not be deleted.")
	} else {
		h.pages.Flashes.Add(c, flashSuccess, "Venue was successfully deleted.")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// DeleteVenueJSON handles script callers issuing DELETE /venues/:id.
func (h *VenueHandler) DeleteVenueJSON(c *fiber.Ctx) error {
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

func (h *VenueHandler) renderForm(c *fiber.Ctx, status int, id uint, in services.VenueInput, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	data := fiber.Map{
		"Title":   "New Venue",
		"Heading": "List a new venue",
		"Action":  "/venues/create",
		"Submit":  "Create Venue",
		"Form":    in,
		"Errors":  fieldErrors,
	}
	if id != 0 {
		data["Title"] = "Edit Venue"
		data["Heading"] = "Edit venue " + in.Name
		data["Action"] = fmt.Sprintf("/venues/%d/edit", id)
		data["Submit"] = "Save Changes"
	}
	return h.pages.Render(c, status, "forms/venue", data)
}
