package models

import "time"

// Unanswered marks an empty slot of an answer vector
const Unanswered = -1

// DefaultPassingScore is the pass threshold in percent
const DefaultPassingScore = 70

// UserAnswer is the graded answer to one question
type UserAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"` // -1 when unanswered
	IsCorrect      bool   `json:"isCorrect"`
}

// QuizResult is produced once per submission and never mutated
type QuizResult struct {
	QuizID         string       `json:"quizId"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Percentage     int          `json:"percentage"`
	Passed         bool         `json:"passed"`
	PassingScore   int          `json:"passingScore"`
	Answers        []UserAnswer `json:"answers"`
	CompletedAt    time.Time    `json:"completedAt"`
	TotalTimeSpent *int         `json:"totalTimeSpent,omitempty"` // seconds
}
