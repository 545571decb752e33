package handlers

import (
	"errors"
	"strconv"
	"strings"

	"fyyur/internal/utils"
	"fyyur/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CSRFContextKey is the Locals key the CSRF middleware stores its token under.
const CSRFContextKey = "csrf"

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// Pages renders HTML pages with the shared layout, flashes and CSRF token.
type Pages struct {
	Flashes *FlashStore
}

func NewPages(flashes *FlashStore) *Pages {
	return &Pages{Flashes: flashes}
}

func (p *Pages) Render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = ""
	}
	token, _ := c.Locals(CSRFContextKey).(string)
	data["CSRFToken"] = token
	data["Flashes"] = p.Flashes.Pop(c)

	return c.Status(status).Render(name, data, views.Layout)
}

// ErrorHandler renders the 404 and 500 pages for HTML routes and the
// standard JSON envelope for /api routes.
func ErrorHandler(pages *Pages, logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		entry := logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Info("Request rejected")
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return utils.ErrorResponse(c, code, message)
		}

		var page, title string
		switch {
		case code == fiber.StatusNotFound:
			page, title = "errors/404", "Not Found"
		case code >= fiber.StatusInternalServerError:
			page, title = "errors/500", "Server Error"
		default:
			return c.Status(code).SendString(message)
		}

		if rerr := pages.Render(c, code, page, fiber.Map{"Title": title}); rerr != nil {
			logger.WithError(rerr).Error("Failed to render error page")
			return c.Status(code).SendString(message)
		}
		return nil
	}
}

// entityID reads the :id route parameter. Anything that is not a positive
// integer is treated as an unknown page.
func entityID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}
