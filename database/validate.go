package database

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"vocabquiz/models"
)

// QuizIDPattern is the accepted shape of a quiz identifier
var QuizIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the content rules registered
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("quizid", func(fl validator.FieldLevel) bool {
			return QuizIDPattern.MatchString(fl.Field().String())
		})
		validate.RegisterStructValidation(questionStructLevel, models.Question{})
	})
	return validate
}

// questionStructLevel enforces 0 <= correctAnswer < len(options)
func questionStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(models.Question)
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		sl.ReportError(q.CorrectAnswer, "CorrectAnswer", "correctAnswer", "optionindex", fmt.Sprint(len(q.Options)))
	}
}

// ValidationResult is either valid or invalid with reasons
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons,omitempty"`
}

func (r *ValidationResult) add(reason string) {
	r.Valid = false
	r.Reasons = append(r.Reasons, reason)
}

// Validate checks one quiz against the content rules
func Validate(quiz models.Quiz) ValidationResult {
	result := ValidationResult{Valid: true}

	if err := Validator().Struct(quiz); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			result.add(fmt.Sprintf("quiz %q: %v", quiz.ID, err))
			return result
		}
		for _, fe := range fieldErrs {
			result.add(fmt.Sprintf("quiz %q: %s", quiz.ID, describe(fe)))
		}
	}

	seen := make(map[string]bool, len(quiz.Questions))
	for _, question := range quiz.Questions {
		if question.ID == "" {
			continue
		}
		if seen[question.ID] {
			result.add(fmt.Sprintf("quiz %q: duplicate question id %q", quiz.ID, question.ID))
		}
		seen[question.ID] = true
	}

	return result
}

// ValidateSet validates every quiz and rejects duplicate quiz ids
func ValidateSet(quizzes []models.Quiz) ValidationResult {
	result := ValidationResult{Valid: true}
	seen := make(map[string]bool, len(quizzes))

	for _, quiz := range quizzes {
		if r := Validate(quiz); !r.Valid {
			for _, reason := range r.Reasons {
				result.add(reason)
			}
		}
		if quiz.ID == "" {
			continue
		}
		if seen[quiz.ID] {
			result.add(fmt.Sprintf("duplicate quiz id %q", quiz.ID))
		}
		seen[quiz.ID] = true
	}
	return result
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", field, fe.Tag(), fe.Param())
	case "quizid":
		return field + " contains invalid characters"
	case "optionindex":
		return fmt.Sprintf("%s must index one of %s options", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
