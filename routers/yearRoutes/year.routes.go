package yearRoutes

import (
	controllers "vocabquiz/controllers/content"
	validators "vocabquiz/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupYearRoutes mounts the year and series listings
func SetupYearRoutes(api fiber.Router, h *controllers.ContentController) {
	yearGroup := api.Group("/years")

	yearGroup.Get("/", h.GetAllYears)
	yearGroup.Get("/:year", validators.Year(), h.GetYear)
	yearGroup.Get("/:year/series", validators.Year(), h.GetSeriesByYear)
	yearGroup.Get("/:year/series/:series", validators.Year(), validators.Series(), h.GetSeries)
}
