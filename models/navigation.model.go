package models

// YearData describes one exam year
type YearData struct {
	Year         int    `json:"year"`
	SeriesCount  int    `json:"seriesCount"`
	TotalQuizzes int    `json:"totalQuizzes"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
}

// SeriesData describes one series within a year
type SeriesData struct {
	Series      int    `json:"series"`
	QuizCount   int    `json:"quizCount"`
	Year        int    `json:"year"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Difficulty labels, derived from question count only
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuizSummary is a quiz without its questions
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"questionCount"`
	Year          int    `json:"year"`
	Series        int    `json:"series"`
	TestNumber    int    `json:"testNumber,omitempty"`
	EstimatedTime int    `json:"estimatedTime"` // minutes
	Difficulty    string `json:"difficulty"`    // easy, medium, hard
}
