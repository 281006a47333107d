package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vocabquiz/models"
	"vocabquiz/utils"
)

// State of a quiz-taking session
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configure a Session
type Options struct {
	// RequireComplete rejects Submit while any question is unanswered
	RequireComplete bool
	PassingScore    int
	Clock           func() time.Time
}

// DefaultOptions require every question to be answered before submission
func DefaultOptions() Options {
	return Options{
		RequireComplete: true,
		PassingScore:    models.DefaultPassingScore,
		Clock:           time.Now,
	}
}

// Session walks a single user through one quiz. It has a single owner and is not safe for concurrent use.
type Session struct {
	ID string

	opts      Options
	state     State
	quiz      *models.Quiz
	current   int
	answers   []int
	result    *models.QuizResult
	startedAt time.Time
}

// New returns a session waiting for its quiz
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.PassingScore <= 0 {
		opts.PassingScore = models.DefaultPassingScore
	}
	return &Session{
		ID:    uuid.NewString(),
		opts:  opts,
		state: StateLoading,
	}
}

// Load installs a fetched quiz and enters Ready. Loading a new quiz discards any previous attempt.
func (s *Session) Load(quiz *models.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("%w: nil quiz", ErrInvalidState)
	}
	s.quiz = quiz
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.answers = make([]int, len(s.quiz.Questions))
	for i := range s.answers {
		s.answers[i] = models.Unanswered
	}
	s.current = 0
	s.result = nil
	s.startedAt = s.opts.Clock()
	s.state = StateReady
}

func (s *Session) expect(state State, op string) error {
	if s.state != state {
		return fmt.Errorf("%w: %s while %s", ErrInvalidState, op, s.state)
	}
	return nil
}

// SelectOption records an answer for the current question without moving
func (s *Session) SelectOption(option int) error {
	if err := s.expect(StateReady, "select option"); err != nil {
		return err
	}
	if len(s.quiz.Questions) == 0 {
		return fmt.Errorf("%w: quiz has no questions", ErrOutOfRange)
	}
	count := len(s.quiz.Questions[s.current].Options)
	if option < 0 || option >= count {
		return fmt.Errorf("%w: option %d of %d", ErrOutOfRange, option, count)
	}
	s.answers[s.current] = option
	return nil
}

// Next moves forward; a no-op on the last question
func (s *Session) Next() error {
	if err := s.expect(StateReady, "next"); err != nil {
		return err
	}
	if s.current < len(s.quiz.Questions)-1 {
		s.current++
	}
	return nil
}

// Previous moves back; a no-op on the first question
func (s *Session) Previous() error {
	if err := s.expect(StateReady, "previous"); err != nil {
		return err
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

// JumpTo moves to any question regardless of answer state
func (s *Session) JumpTo(index int) error {
	if err := s.expect(StateReady, "jump"); err != nil {
		return err
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return fmt.Errorf("%w: question %d of %d", ErrOutOfRange, index, len(s.quiz.Questions))
	}
	s.current = index
	return nil
}

// Submit grades the attempt and enters Submitted
func (s *Session) Submit() (*models.QuizResult, error) {
	if err := s.expect(StateReady, "submit"); err != nil {
		return nil, err
	}
	if s.opts.RequireComplete {
		if missing := Unanswered(s.answers); len(missing) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrIncomplete, missing)
		}
	}

	now := s.opts.Clock()
	spent := int(now.Sub(s.startedAt).Seconds())
	result, err := Score(s.quiz, s.answers, ScoreOptions{
		PassingScore:   s.opts.PassingScore,
		CompletedAt:    now,
		TotalTimeSpent: &spent,
	})
	if err != nil {
		return nil, err
	}

	s.result = result
	s.state = StateSubmitted
	return result, nil
}

// Restart clears the answers and the previous result and returns to Ready
func (s *Session) Restart() error {
	if err := s.expect(StateSubmitted, "restart"); err != nil {
		return err
	}
	s.reset()
	return nil
}

// State reports the current state
func (s *Session) State() State { return s.state }

// Quiz returns the loaded quiz or nil while loading
func (s *Session) Quiz() *models.Quiz { return s.quiz }

// CurrentIndex is the zero-based position in the quiz
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the question under the cursor
func (s *Session) Current() (models.Question, bool) {
	if s.quiz == nil || len(s.quiz.Questions) == 0 {
		return models.Question{}, false
	}
	return s.quiz.Questions[s.current], true
}

// Answers returns a copy of the answer vector
func (s *Session) Answers() []int {
	return append([]int(nil), s.answers...)
}

// Selected is the chosen option for question i, or Unanswered
func (s *Session) Selected(i int) int {
	if i < 0 || i >= len(s.answers) {
		return models.Unanswered
	}
	return s.answers[i]
}

// IsAnswered reports whether the current question has a selection
func (s *Session) IsAnswered() bool {
	return s.Selected(s.current) != models.Unanswered
}

// AnsweredCount counts answered questions
func (s *Session) AnsweredCount() int { return AnsweredCount(s.answers) }

// Unanswered lists unanswered question indices
func (s *Session) Unanswered() []int { return Unanswered(s.answers) }

// Progress is the cursor position as a percentage
func (s *Session) Progress() int {
	if s.quiz == nil {
		return 0
	}
	return utils.Progress(s.current, len(s.quiz.Questions))
}

// Result returns the submitted result, nil before submission or after a restart
func (s *Session) Result() *models.QuizResult { return s.result }
