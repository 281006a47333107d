package utils

import (
	"fmt"
	"math/rand"

	"vocabquiz/models"
)

// Difficulty thresholds by question count
const (
	easyMaxQuestions   = 5
	mediumMaxQuestions = 10
)

// Difficulty classifies a quiz by its question count
func Difficulty(questionCount int) string {
	switch {
	case questionCount <= easyMaxQuestions:
		return models.DifficultyEasy
	case questionCount <= mediumMaxQuestions:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// EstimatedTime returns ceil(questionCount * 1.5) minutes
func EstimatedTime(questionCount int) int {
	if questionCount <= 0 {
		return 0
	}
	return (questionCount*3 + 1) / 2
}

// Percentage returns round(score/total*100), rounding halves up. Zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	return (score*200 + total) / (2 * total)
}

// IsPassing reports whether percentage reaches threshold
func IsPassing(percentage, threshold int) bool {
	return percentage >= threshold
}

// Progress is the position of the current question as a percentage of the quiz
func Progress(currentIndex, total int) int {
	if total <= 0 {
		return 0
	}
	return Percentage(currentIndex+1, total)
}

// Summarize builds the listing metadata of a quiz
func Summarize(quiz *models.Quiz) models.QuizSummary {
	count := len(quiz.Questions)
	summary := models.QuizSummary{
		ID:            quiz.ID,
		Title:         quiz.Title,
		Description:   quiz.Description,
		QuestionCount: count,
		Year:          quiz.Year,
		Series:        quiz.Series,
		EstimatedTime: EstimatedTime(count),
		Difficulty:    Difficulty(count),
	}
	if count > 0 {
		summary.TestNumber = quiz.Questions[0].TestNumber
	}
	return summary
}

// QuizID generates the canonical quiz identifier
func QuizID(year, series, quizNumber int) string {
	return fmt.Sprintf("quiz_%d_%d_%d", year, series, quizNumber)
}

// QuestionID generates the canonical question identifier
func QuestionID(year, series, testNumber int) string {
	return fmt.Sprintf("q_%d_%d_%d", year, series, testNumber)
}

// FormatQuizTitle appends the year and series to a title when known
func FormatQuizTitle(title string, year, series int) string {
	switch {
	case year > 0 && series > 0:
		return fmt.Sprintf("%s - Year %d, Series %d", title, year, series)
	case year > 0:
		return fmt.Sprintf("%s - Year %d", title, year)
	default:
		return title
	}
}

// FormatTime renders seconds as "1 minute 5 seconds"
func FormatTime(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d %s", seconds, plural(seconds, "second"))
	}
	minutes := seconds / 60
	rest := seconds % 60
	if rest == 0 {
		return fmt.Sprintf("%d %s", minutes, plural(minutes, "minute"))
	}
	return fmt.Sprintf("%d %s %d %s", minutes, plural(minutes, "minute"), rest, plural(rest, "second"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Shuffle returns a Fisher-Yates shuffled copy of items
func Shuffle[T any](items []T) []T {
	shuffled := append([]T(nil), items...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Pagination describes one page of a listing
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Paginate computes page metadata for total items
func Paginate(total, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
