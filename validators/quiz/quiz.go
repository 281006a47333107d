package quizValidator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"vocabquiz/database"
	"vocabquiz/middleware"
)

// Locals keys filled by the validators below
const (
	LocalYear       = "year"
	LocalSeries     = "series"
	LocalQuizID     = "quizID"
	LocalSearch     = "searchQuery"
	LocalPage       = "page"
	LocalSubmission = "submission"
)

const (
	minYear        = 1300
	maxYear        = 2100
	minSeries      = 1
	maxSeries      = 100
	maxQuizIDLen   = 100
	minSearchLen   = 2
	maxSearchLen   = 100
	maxSearchLimit = 100
)

func Year() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := strconv.Atoi(strings.TrimSpace(c.Params("year")))
		if err != nil {
			return middleware.ValidationError("Invalid year parameter. Year must be a number.")
		}
		if database.Validator().Var(year, fmt.Sprintf("gte=%d,lte=%d", minYear, maxYear)) != nil {
			return middleware.ValidationError(fmt.Sprintf("Year must be between %d and %d", minYear, maxYear))
		}

		c.Locals(LocalYear, year)
		return c.Next()
	}
}

func Series() fiber.Handler {
	return func(c *fiber.Ctx) error {
		series, err := strconv.Atoi(strings.TrimSpace(c.Params("series")))
		if err != nil {
			return middleware.ValidationError("Invalid series parameter. Series must be a number.")
		}
		if database.Validator().Var(series, fmt.Sprintf("gte=%d,lte=%d", minSeries, maxSeries)) != nil {
			return middleware.ValidationError(fmt.Sprintf("Series must be between %d and %d", minSeries, maxSeries))
		}

		c.Locals(LocalSeries, series)
		return c.Next()
	}
}

func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("id"))
		if quizID == "" {
			return middleware.ValidationError("Quiz ID is required")
		}
		if len(quizID) > maxQuizIDLen {
			return middleware.ValidationError("Quiz ID is too long")
		}
		if !database.QuizIDPattern.MatchString(quizID) {
			return middleware.ValidationError("Quiz ID contains invalid characters")
		}

		c.Locals(LocalQuizID, quizID)
		return c.Next()
	}
}

// PageQuery is the optional pagination of a listing
type PageQuery struct {
	Page  *int `query:"page"`
	Limit *int `query:"limit"`
}

func SearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("q")
		term := strings.TrimSpace(raw)
		if term == "" {
			return middleware.ValidationError("Search query (q) is required")
		}
		// length limits apply to the query as sent, padding included
		if utf8.RuneCountInString(raw) < minSearchLen {
			return middleware.ValidationError("Search query must be at least 2 characters")
		}
		if utf8.RuneCountInString(raw) > maxSearchLen {
			return middleware.ValidationError("Search query is too long (max 100 characters)")
		}

		reqData := new(PageQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ValidationError("Invalid query parameters!")
		}
		if reqData.Page != nil || reqData.Limit != nil {
			if reqData.Page == nil || *reqData.Page < 1 {
				return middleware.ValidationError("Page must be greater than 0!")
			}
			if reqData.Limit == nil || *reqData.Limit < 1 || *reqData.Limit > maxSearchLimit {
				return middleware.ValidationError("Limit must be between 1 and 100!")
			}
			c.Locals(LocalPage, reqData)
		}

		c.Locals(LocalSearch, term)
		return c.Next()
	}
}

// Submission is the body of a quiz submission
type Submission struct {
	Answers   []int `json:"answers" validate:"required"`
	TimeSpent *int  `json:"timeSpent" validate:"omitempty,gte=0"`
}

func SubmitAnswers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
			return middleware.ValidationError("Content-Type must be application/json")
		}

		reqData := new(Submission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationError("Invalid request body!")
		}
		if err := database.Validator().Struct(reqData); err != nil {
			if reqData.Answers == nil {
				return middleware.ValidationError("Answers are required!")
			}
			return middleware.ValidationError("Time spent must not be negative!")
		}

		c.Locals(LocalSubmission, reqData)
		return c.Next()
	}
}
