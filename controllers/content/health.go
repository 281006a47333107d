package controllers

import (
	"github.com/gofiber/fiber/v2"

	"vocabquiz/middleware"
)

// Health is the liveness check
func Health(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz API is running", nil)
}

// Index lists the API endpoints
func Index(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome to Quiz API", fiber.Map{
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"years":       "/api/years",
			"yearById":    "/api/years/:year",
			"series":      "/api/years/:year/series",
			"seriesById":  "/api/years/:year/series/:series",
			"quizzes":     "/api/quizzes/:year/:series",
			"quiz":        "/api/quiz/:id",
			"quizSummary": "/api/quiz/:id/summary",
			"quizPreview": "/api/quiz/:id/preview",
			"quizSubmit":  "POST /api/quiz/:id/submit",
			"search":      "/api/search?q=keyword",
			"health":      "/api/health",
		},
	})
}

// Root is the banner served at /
func Root(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz Application API", fiber.Map{
		"version":       "1.0.0",
		"documentation": "/api",
	})
}
