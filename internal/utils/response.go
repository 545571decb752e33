package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope of every /api response.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error response. Server faults are reported as
// "fail", client errors as "error".
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return ErrorWithDataResponse(c, code, message, nil)
}

// ErrorWithDataResponse sends an error response carrying details, such as
// per-field validation messages.
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}
