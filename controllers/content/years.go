package controllers

import (
	"github.com/gofiber/fiber/v2"

	"vocabquiz/middleware"
	quizValidator "vocabquiz/validators/quiz"
)

// GetAllYears lists every year with its series and quiz counts
func (h *ContentController) GetAllYears(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", h.svc.AllYears())
}

// GetYear returns one year's metadata
func (h *ContentController) GetYear(c *fiber.Ctx) error {
	year := c.Locals(quizValidator.LocalYear).(int)

	data, err := h.svc.Year(year)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", data)
}

// GetSeriesByYear lists the series of a year
func (h *ContentController) GetSeriesByYear(c *fiber.Ctx) error {
	year := c.Locals(quizValidator.LocalYear).(int)

	data, err := h.svc.SeriesByYear(year)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", data)
}

// GetSeries returns one series' metadata
func (h *ContentController) GetSeries(c *fiber.Ctx) error {
	year := c.Locals(quizValidator.LocalYear).(int)
	series := c.Locals(quizValidator.LocalSeries).(int)

	data, err := h.svc.Series(year, series)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", data)
}

// GetQuizzesBySeries lists the quiz summaries of a series
func (h *ContentController) GetQuizzesBySeries(c *fiber.Ctx) error {
	year := c.Locals(quizValidator.LocalYear).(int)
	series := c.Locals(quizValidator.LocalSeries).(int)

	data, err := h.svc.QuizzesBySeries(year, series)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", data)
}
