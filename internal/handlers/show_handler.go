package handlers

import (
	"errors"
	"time"

	"fyyur/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	pages   *Pages
	zone    *time.Location
	logger  *logrus.Logger
}

// NewShowHandler reads submitted start times without an offset in zone.
func NewShowHandler(service services.ShowService, pages *Pages, zone *time.Location, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		pages:   pages,
		zone:    zone,
		logger:  logger,
	}
}

func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return h.pages.Render(c, fiber.StatusOK, "pages/shows", fiber.Map{
		"Title": "Shows",
		"Shows": shows,
	})
}

func (h *ShowHandler) NewShowForm(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, showForm{}, nil)
}

func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	var form showForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	in, verr := form.input(h.zone)
	if verr != nil {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, form, verr.Fields)
	}

	if _, err := h.service.Create(c.Context(), in); err != nil {
		if errors.As(err, &verr) {
			return h.renderForm(c, fiber.StatusUnprocessableEntity, form, verr.Fields)
		}
		h.pages.Flashes.Now(c, flashDanger, "An error has occurred. Show could not be listed.")
		return h.pages.Render(c, fiber.StatusInternalServerError, "errors/500", fiber.Map{"Title": "Server Error"})
	}

	h.pages.Flashes.Add(c, flashSuccess, "Show was successfully listed!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *ShowHandler) renderForm(c *fiber.Ctx, status int, form showForm, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	return h.pages.Render(c, status, "forms/show", fiber.Map{
		"Title":  "New Show",
		"Form":   form,
		"Errors": fieldErrors,
	})
}
