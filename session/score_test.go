package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabquiz/models"
)

func sampleQuiz() *models.Quiz {
	options := []string{"a", "b", "c", "d"}
	return &models.Quiz{
		ID:    "quiz_1399_1_1",
		Title: "Series 1, Test 1",
		Year:  1399, Series: 1,
		Questions: []models.Question{
			{ID: "q1", Text: "first", Options: options, CorrectAnswer: 3},
			{ID: "q2", Text: "second", Options: options, CorrectAnswer: 0},
			{ID: "q3", Text: "third", Options: options, CorrectAnswer: 1},
		},
	}
}

// quizOf builds a quiz of n questions whose correct answer is always option 0
func quizOf(n int) *models.Quiz {
	quiz := &models.Quiz{ID: "bulk", Title: "Bulk"}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID: "q" + string(rune('a'+i%26)) + string(rune('a'+i/26)), Options: []string{"x", "y"},
		})
	}
	return quiz
}

func TestScoreAllCorrect(t *testing.T) {
	completed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	spent := 42
	result, err := Score(sampleQuiz(), []int{3, 0, 1}, ScoreOptions{CompletedAt: completed, TotalTimeSpent: &spent})
	require.NoError(t, err)

	assert.Equal(t, "quiz_1399_1_1", result.QuizID)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 100, result.Percentage)
	assert.True(t, result.Passed)
	assert.Equal(t, models.DefaultPassingScore, result.PassingScore)
	assert.Equal(t, completed, result.CompletedAt)
	require.NotNil(t, result.TotalTimeSpent)
	assert.Equal(t, 42, *result.TotalTimeSpent)
	for _, a := range result.Answers {
		assert.True(t, a.IsCorrect)
	}
}

func TestScoreOneWrong(t *testing.T) {
	result, err := Score(sampleQuiz(), []int{0, 0, 1}, ScoreOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 67, result.Percentage)
	assert.False(t, result.Passed)
	assert.Equal(t, []models.UserAnswer{
		{QuestionID: "q1", SelectedOption: 0, IsCorrect: false},
		{QuestionID: "q2", SelectedOption: 0, IsCorrect: true},
		{QuestionID: "q3", SelectedOption: 1, IsCorrect: true},
	}, result.Answers)
	assert.Nil(t, result.TotalTimeSpent)
}

func TestScoreUnansweredIsWrong(t *testing.T) {
	result, err := Score(sampleQuiz(), []int{models.Unanswered, 0, models.Unanswered}, ScoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 33, result.Percentage)
	assert.Equal(t, models.Unanswered, result.Answers[0].SelectedOption)
}

func TestScoreLengthMismatch(t *testing.T) {
	_, err := Score(sampleQuiz(), []int{3, 0}, ScoreOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Score(sampleQuiz(), []int{3, 0, 1, 2}, ScoreOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Score(nil, nil, ScoreOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestScorePassBoundary(t *testing.T) {
	quiz := quizOf(100)
	answers := make([]int, 100)
	for i := range answers {
		answers[i] = 1
	}
	for i := 0; i < 69; i++ {
		answers[i] = 0
	}

	result, err := Score(quiz, answers, ScoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, 69, result.Percentage)
	assert.False(t, result.Passed)

	answers[69] = 0
	result, err = Score(quiz, answers, ScoreOptions{})
	require.NoError(t, err)
	assert.Equal(t, 70, result.Percentage)
	assert.True(t, result.Passed)
}

func TestScoreCustomThreshold(t *testing.T) {
	result, err := Score(sampleQuiz(), []int{0, 0, 1}, ScoreOptions{PassingScore: 60})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 60, result.PassingScore)
}

func TestScoreIsPureAndIdempotent(t *testing.T) {
	quiz := sampleQuiz()
	answers := []int{3, 1, models.Unanswered}
	opts := ScoreOptions{CompletedAt: time.Unix(0, 0).UTC()}

	first, err := Score(quiz, answers, opts)
	require.NoError(t, err)
	second, err := Score(quiz, answers, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{3, 1, models.Unanswered}, answers)
	assert.Equal(t, sampleQuiz(), quiz)
}

func TestScoreBounds(t *testing.T) {
	for n := 1; n <= 12; n++ {
		quiz := quizOf(n)
		for correct := 0; correct <= n; correct++ {
			answers := make([]int, n)
			for i := correct; i < n; i++ {
				answers[i] = 1
			}
			result, err := Score(quiz, answers, ScoreOptions{})
			require.NoError(t, err)
			assert.Equal(t, correct, result.Score)
			assert.GreaterOrEqual(t, result.Percentage, 0)
			assert.LessOrEqual(t, result.Percentage, 100)
			assert.Len(t, result.Answers, n)
		}
	}
}

func TestUnansweredHelpers(t *testing.T) {
	answers := []int{0, models.Unanswered, 2, models.Unanswered}
	assert.Equal(t, []int{1, 3}, Unanswered(answers))
	assert.Equal(t, 2, AnsweredCount(answers))
	assert.Nil(t, Unanswered([]int{1, 2}))
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 0, AverageScore(nil))
	assert.Equal(t, 84, AverageScore([]models.QuizResult{{Percentage: 100}, {Percentage: 67}}))
}
