package controllers

import (
	"github.com/gofiber/fiber/v2"

	"vocabquiz/middleware"
	"vocabquiz/utils"
	quizValidator "vocabquiz/validators/quiz"
)

// GetQuiz returns a quiz with its questions and answer key
func (h *ContentController) GetQuiz(c *fiber.Ctx) error {
	id := c.Locals(quizValidator.LocalQuizID).(string)

	quiz, err := h.svc.Quiz(id)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", quiz)
}

// GetQuizSummary returns quiz metadata only
func (h *ContentController) GetQuizSummary(c *fiber.Ctx) error {
	id := c.Locals(quizValidator.LocalQuizID).(string)

	summary, err := h.svc.QuizSummary(id)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", summary)
}

// GetQuizPreview returns the questions without answers or explanations
func (h *ContentController) GetQuizPreview(c *fiber.Ctx) error {
	id := c.Locals(quizValidator.LocalQuizID).(string)

	preview, err := h.svc.QuizPreview(id)
	if err != nil {
		return h.fail(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "", preview)
}

// SubmitQuiz grades an answer vector without storing anything
func (h *ContentController) SubmitQuiz(c *fiber.Ctx) error {
	id := c.Locals(quizValidator.LocalQuizID).(string)
	reqData := c.Locals(quizValidator.LocalSubmission).(*quizValidator.Submission)

	result, err := h.svc.Score(id, reqData.Answers, reqData.TimeSpent)
	if err != nil {
		return h.fail(err)
	}

	h.log.Debug("quiz scored",
		"quiz_id", id,
		"score", result.Score,
		"total", result.TotalQuestions,
		"passed", result.Passed,
	)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", result)
}

// SearchQuizzes matches quizzes by title or description
func (h *ContentController) SearchQuizzes(c *fiber.Ctx) error {
	term := c.Locals(quizValidator.LocalSearch).(string)
	results := h.svc.Search(term)

	page, ok := c.Locals(quizValidator.LocalPage).(*quizValidator.PageQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "", results)
	}

	meta := utils.Paginate(len(results), *page.Page, *page.Limit)
	start := len(results)
	if *page.Page <= meta.TotalPages {
		start = (*page.Page - 1) * *page.Limit
	}
	end := start + *page.Limit
	if end > len(results) {
		end = len(results)
	}
	return middleware.PageResponse(c, results[start:end], meta)
}
