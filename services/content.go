package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vocabquiz/database"
	"vocabquiz/models"
	"vocabquiz/session"
	"vocabquiz/utils"
)

// ErrNotFound matches every lookup miss
var ErrNotFound = errors.New("not found")

// ErrInvalidAnswers reports a submitted answer vector that does not fit the quiz
var ErrInvalidAnswers = errors.New("invalid answers")

// Lookup miss kinds
const (
	KindYear   = "year"
	KindSeries = "series"
	KindQuiz   = "quiz"
)

// NotFoundError says which level of the hierarchy is missing
type NotFoundError struct {
	Kind    string
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func yearNotFound(year int) error {
	return &NotFoundError{Kind: KindYear, Message: fmt.Sprintf("Year %d not found", year)}
}

func seriesNotFound(year, series int) error {
	return &NotFoundError{Kind: KindSeries, Message: fmt.Sprintf("Series %d not found for year %d", series, year)}
}

func quizNotFound(id string) error {
	return &NotFoundError{Kind: KindQuiz, Message: fmt.Sprintf("Quiz with ID %s not found", id)}
}

// ContentService derives listings and metadata from the content registry
type ContentService struct {
	registry     *database.Registry
	passingScore int
	now          func() time.Time
}

// NewContentService wraps registry. passingScore <= 0 selects the default threshold.
func NewContentService(registry *database.Registry, passingScore int) *ContentService {
	if passingScore <= 0 {
		passingScore = models.DefaultPassingScore
	}
	return &ContentService{registry: registry, passingScore: passingScore, now: time.Now}
}

func (s *ContentService) yearData(year int) models.YearData {
	return models.YearData{
		Year:         year,
		SeriesCount:  len(s.registry.SeriesFor(year)),
		TotalQuizzes: s.registry.QuizCount(year),
		Title:        fmt.Sprintf("Year %d", year),
		Description:  fmt.Sprintf("English vocabulary tests from year %d", year),
	}
}

func (s *ContentService) seriesData(year, series int) models.SeriesData {
	return models.SeriesData{
		Series:      series,
		QuizCount:   len(s.registry.Quizzes(year, series)),
		Year:        year,
		Title:       fmt.Sprintf("Series %d", series),
		Description: fmt.Sprintf("Test series %d for year %d", series, year),
	}
}

// AllYears lists every year with counts
func (s *ContentService) AllYears() []models.YearData {
	years := s.registry.Years()
	out := make([]models.YearData, 0, len(years))
	for _, year := range years {
		out = append(out, s.yearData(year))
	}
	return out
}

// Year returns one year's metadata
func (s *ContentService) Year(year int) (models.YearData, error) {
	if !s.registry.HasYear(year) {
		return models.YearData{}, yearNotFound(year)
	}
	return s.yearData(year), nil
}

// SeriesByYear lists the series of a year
func (s *ContentService) SeriesByYear(year int) ([]models.SeriesData, error) {
	if !s.registry.HasYear(year) {
		return nil, yearNotFound(year)
	}
	numbers := s.registry.SeriesFor(year)
	out := make([]models.SeriesData, 0, len(numbers))
	for _, series := range numbers {
		out = append(out, s.seriesData(year, series))
	}
	return out, nil
}

// Series returns one series' metadata
func (s *ContentService) Series(year, series int) (models.SeriesData, error) {
	if !s.registry.HasYear(year) {
		return models.SeriesData{}, yearNotFound(year)
	}
	if !s.registry.HasSeries(year, series) {
		return models.SeriesData{}, seriesNotFound(year, series)
	}
	return s.seriesData(year, series), nil
}

// QuizzesBySeries lists quiz summaries, reporting an unknown year before an unknown series
func (s *ContentService) QuizzesBySeries(year, series int) ([]models.QuizSummary, error) {
	if !s.registry.HasYear(year) {
		return nil, yearNotFound(year)
	}
	if !s.registry.HasSeries(year, series) {
		return nil, seriesNotFound(year, series)
	}
	quizzes := s.registry.Quizzes(year, series)
	out := make([]models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		out = append(out, utils.Summarize(quiz))
	}
	return out, nil
}

// Quiz returns the full quiz. The result must not be modified.
func (s *ContentService) Quiz(id string) (*models.Quiz, error) {
	quiz, ok := s.registry.Quiz(id)
	if !ok {
		return nil, quizNotFound(id)
	}
	return quiz, nil
}

// QuizPreview returns the quiz without its answer key
func (s *ContentService) QuizPreview(id string) (models.QuizPreview, error) {
	quiz, err := s.Quiz(id)
	if err != nil {
		return models.QuizPreview{}, err
	}
	return quiz.Preview(), nil
}

// QuizSummary returns the metadata of one quiz
func (s *ContentService) QuizSummary(id string) (models.QuizSummary, error) {
	quiz, err := s.Quiz(id)
	if err != nil {
		return models.QuizSummary{}, err
	}
	return utils.Summarize(quiz), nil
}

// Search matches term case-insensitively against titles and descriptions
func (s *ContentService) Search(term string) []models.QuizSummary {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]models.QuizSummary, 0)
	if needle == "" {
		return out
	}
	for _, quiz := range s.registry.AllQuizzes() {
		if strings.Contains(strings.ToLower(quiz.Title), needle) ||
			strings.Contains(strings.ToLower(quiz.Description), needle) {
			out = append(out, utils.Summarize(quiz))
		}
	}
	return out
}

// Score grades a complete answer vector for quiz id. Unanswered slots count as wrong.
func (s *ContentService) Score(id string, answers []int, timeSpent *int) (*models.QuizResult, error) {
	quiz, err := s.Quiz(id)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(quiz.Questions), len(answers))
	}
	for i, answer := range answers {
		if answer < models.Unanswered || answer >= len(quiz.Questions[i].Options) {
			return nil, fmt.Errorf("%w: answer %d for question %d is out of range", ErrInvalidAnswers, answer, i+1)
		}
	}

	return session.Score(quiz, answers, session.ScoreOptions{
		PassingScore:   s.passingScore,
		CompletedAt:    s.now(),
		TotalTimeSpent: timeSpent,
	})
}
