package quizRoutes

import (
	controllers "vocabquiz/controllers/content"
	validators "vocabquiz/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes mounts quiz listing, lookup, scoring and search
func SetupQuizRoutes(api fiber.Router, h *controllers.ContentController) {
	api.Get("/quizzes/:year/:series", validators.Year(), validators.Series(), h.GetQuizzesBySeries)

	quizGroup := api.Group("/quiz")
	quizGroup.Get("/:id", validators.QuizID(), h.GetQuiz)
	quizGroup.Get("/:id/summary", validators.QuizID(), h.GetQuizSummary)
	quizGroup.Get("/:id/preview", validators.QuizID(), h.GetQuizPreview)
	quizGroup.Post("/:id/submit", validators.QuizID(), validators.SubmitAnswers(), h.SubmitQuiz)

	api.Get("/search", validators.SearchQuery(), h.SearchQuizzes)
}
