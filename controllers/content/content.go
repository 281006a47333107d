package controllers

import (
	"errors"

	"vocabquiz/logger"
	"vocabquiz/middleware"
	"vocabquiz/services"
)

// ContentController serves the read-only quiz hierarchy
type ContentController struct {
	svc *services.ContentService
	log *logger.Logger
}

func NewContentController(svc *services.ContentService, log *logger.Logger) *ContentController {
	return &ContentController{svc: svc, log: log}
}

// fail maps service errors onto API errors
func (h *ContentController) fail(err error) error {
	var notFound *services.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return middleware.NotFoundError(notFound.Message)
	case errors.Is(err, services.ErrInvalidAnswers):
		return middleware.ValidationError(err.Error())
	default:
		return middleware.InternalError(err)
	}
}
