package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vocabquiz/utils"
)

// Envelope is the body of every API response
type Envelope struct {
	Success    bool                   `json:"success"`
	Data       interface{}            `json:"data,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Code       string                 `json:"code,omitempty"`
	Pagination *utils.Pagination      `json:"pagination,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Timestamp  string                 `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// JsonResponse writes the uniform envelope. On failure message becomes the error string.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := Envelope{
		Success:   success,
		Data:      data,
		Timestamp: timestamp(),
	}
	if success {
		body.Message = message
	} else {
		body.Error = message
	}
	return c.Status(statusCode).JSON(body)
}

// PageResponse writes a successful envelope carrying pagination metadata
func PageResponse(c *fiber.Ctx, data interface{}, page utils.Pagination) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:    true,
		Data:       data,
		Pagination: &page,
		Timestamp:  timestamp(),
	})
}
