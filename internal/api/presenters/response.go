package presenters

import "github.com/gofiber/fiber/v2"

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// ErrorDetailResponse carries structured error details, e.g. the per-item
// error map of a multi-item donation.
func ErrorDetailResponse(c *fiber.Ctx, statusCode int, message string, details interface{}) error {
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
		Error:   details,
	})
}
