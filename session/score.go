package session

import (
	"errors"
	"fmt"
	"time"

	"vocabquiz/models"
	"vocabquiz/utils"
)

var (
	// ErrInvalidState reports an operation outside its valid state or a malformed answer vector
	ErrInvalidState = errors.New("invalid quiz state")
	// ErrOutOfRange reports an option or question index outside its bounds
	ErrOutOfRange = errors.New("index out of range")
	// ErrIncomplete reports a submission with unanswered questions
	ErrIncomplete = errors.New("quiz has unanswered questions")
)

// ScoreOptions tune a single scoring run
type ScoreOptions struct {
	PassingScore   int       // percent, DefaultPassingScore when zero
	CompletedAt    time.Time // time.Now when zero
	TotalTimeSpent *int      // seconds
}

// Score grades answers against quiz. The answer vector must have one slot per question.
// Neither argument is modified.
func Score(quiz *models.Quiz, answers []int, opts ScoreOptions) (*models.QuizResult, error) {
	if quiz == nil {
		return nil, fmt.Errorf("%w: nil quiz", ErrInvalidState)
	}
	if len(answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidState, len(answers), len(quiz.Questions))
	}

	threshold := opts.PassingScore
	if threshold <= 0 {
		threshold = models.DefaultPassingScore
	}
	completedAt := opts.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	graded := make([]models.UserAnswer, len(quiz.Questions))
	score := 0
	for i, question := range quiz.Questions {
		correct := answers[i] != models.Unanswered && answers[i] == question.CorrectAnswer
		if correct {
			score++
		}
		graded[i] = models.UserAnswer{
			QuestionID:     question.ID,
			SelectedOption: answers[i],
			IsCorrect:      correct,
		}
	}

	total := len(quiz.Questions)
	percentage := utils.Percentage(score, total)

	var spent *int
	if opts.TotalTimeSpent != nil {
		v := *opts.TotalTimeSpent
		spent = &v
	}

	return &models.QuizResult{
		QuizID:         quiz.ID,
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Passed:         utils.IsPassing(percentage, threshold),
		PassingScore:   threshold,
		Answers:        graded,
		CompletedAt:    completedAt,
		TotalTimeSpent: spent,
	}, nil
}

// Unanswered lists the indices of empty slots
func Unanswered(answers []int) []int {
	var indices []int
	for i, answer := range answers {
		if answer == models.Unanswered {
			indices = append(indices, i)
		}
	}
	return indices
}

// AnsweredCount counts the filled slots
func AnsweredCount(answers []int) int {
	return len(answers) - len(Unanswered(answers))
}

// AverageScore is the mean percentage of results, rounded half up
func AverageScore(results []models.QuizResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Percentage
	}
	return (sum*2 + len(results)) / (2 * len(results))
}
