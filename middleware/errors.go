package middleware

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"vocabquiz/logger"
)

// Error codes carried in failed envelopes
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is an error that knows its HTTP status
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
	stack   []byte
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ValidationError is a 400 for malformed input
func ValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: CodeValidation, Message: message}
}

// NotFoundError is a 404 for an unknown year, series, quiz or route
func NotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: CodeNotFound, Message: message}
}

// InternalError is a 500 wrapping an unexpected fault
func InternalError(err error) *AppError {
	return &AppError{
		Status:  fiber.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
		stack:   debug.Stack(),
	}
}

func codeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return CodeNotFound
	case status >= 400 && status < 500:
		return CodeValidation
	default:
		return CodeInternal
	}
}

// ErrorHandler renders every error returned by a handler as an envelope.
// Stack details are attached to 500s only when exposeStack is set.
func ErrorHandler(log *logger.Logger, exposeStack bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		code := CodeInternal
		message := "Internal server error"
		var stack []byte

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status, code, message, stack = appErr.Status, appErr.Code, appErr.Error(), appErr.stack
		case errors.As(err, &fiberErr):
			status, code, message = fiberErr.Code, codeForStatus(fiberErr.Code), fiberErr.Message
		}

		body := Envelope{
			Success:   false,
			Error:     message,
			Code:      code,
			Timestamp: timestamp(),
		}

		reqLog := log.With("request_id", c.Locals("requestid"))
		if status >= fiber.StatusInternalServerError {
			reqLog.Error("request failed",
				"method", c.Method(),
				"path", c.OriginalURL(),
				"status", status,
				"error", err,
			)
			if exposeStack {
				if stack == nil {
					stack = debug.Stack()
				}
				body.Details = map[string]interface{}{
					"cause": causeOf(err),
					"stack": string(stack),
				}
			}
		} else {
			reqLog.Debug("request rejected", "path", c.OriginalURL(), "status", status, "error", message)
		}

		return c.Status(status).JSON(body)
	}
}

// causeOf digs the wrapped error out of an AppError so the generic
// message does not hide it
func causeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		return appErr.Err.Error()
	}
	return err.Error()
}

// NotFoundHandler answers any request that no route matched
func NotFoundHandler(c *fiber.Ctx) error {
	return NotFoundError(fmt.Sprintf("Route %s not found", c.OriginalURL()))
}
