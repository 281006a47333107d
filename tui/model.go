package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vocabquiz/models"
	"vocabquiz/session"
	"vocabquiz/utils"
)

// Source is the read side of the quiz API
type Source interface {
	Years(ctx context.Context) ([]models.YearData, error)
	Series(ctx context.Context, year int) ([]models.SeriesData, error)
	Quizzes(ctx context.Context, year, series int) ([]models.QuizSummary, error)
	Quiz(ctx context.Context, id string) (*models.Quiz, error)
}

type screen int

const (
	screenYears screen = iota
	screenSeries
	screenQuizzes
	screenQuestion
	screenResult
)

// Options configure the terminal client
type Options struct {
	Shuffle        bool // shuffle question order on every load
	PassingScore   int
	RequestTimeout time.Duration
	NoColor        bool
}

type yearsMsg []models.YearData
type seriesMsg []models.SeriesData
type quizzesMsg []models.QuizSummary
type quizMsg *models.Quiz

// errMsg carries a failed fetch and the command that repeats it
type errMsg struct {
	err   error
	retry tea.Cmd
}

// Model is the Bubble Tea model of the quiz client
type Model struct {
	src  Source
	opts Options

	screen  screen
	cursor  int
	loading bool
	err     error
	retry   tea.Cmd
	notice  string
	spinner spinner.Model

	years   []models.YearData
	series  []models.SeriesData
	quizzes []models.QuizSummary

	year      int
	seriesNum int
	sess      *session.Session
	attempts  []models.QuizResult
	styles    styles
}

// NewModel builds the client model. It starts by loading the year list.
func NewModel(src Source, opts Options) Model {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		src:     src,
		opts:    opts,
		screen:  screenYears,
		loading: true,
		spinner: sp,
		styles:  newStyles(opts.NoColor),
	}
}

// Init fetches the year list
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadYears())
}

func (m Model) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.opts.RequestTimeout)
}

func (m Model) loadYears() tea.Cmd {
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		years, err := m.src.Years(ctx)
		if err != nil {
			return errMsg{err: err, retry: cmd}
		}
		return yearsMsg(years)
	}
	return cmd
}

func (m Model) loadSeries(year int) tea.Cmd {
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		series, err := m.src.Series(ctx, year)
		if err != nil {
			return errMsg{err: err, retry: cmd}
		}
		return seriesMsg(series)
	}
	return cmd
}

func (m Model) loadQuizzes(year, series int) tea.Cmd {
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		quizzes, err := m.src.Quizzes(ctx, year, series)
		if err != nil {
			return errMsg{err: err, retry: cmd}
		}
		return quizzesMsg(quizzes)
	}
	return cmd
}

func (m Model) loadQuiz(id string) tea.Cmd {
	var cmd tea.Cmd
	cmd = func() tea.Msg {
		ctx, cancel := m.ctx()
		defer cancel()
		quiz, err := m.src.Quiz(ctx, id)
		if err != nil {
			return errMsg{err: err, retry: cmd}
		}
		return quizMsg(quiz)
	}
	return cmd
}

// Update handles fetch results and key presses
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case errMsg:
		m.loading = false
		m.err = msg.err
		m.retry = msg.retry
		return m, nil
	case yearsMsg:
		m.loaded()
		m.years = msg
		m.screen = screenYears
		return m, nil
	case seriesMsg:
		m.loaded()
		m.series = msg
		m.screen = screenSeries
		return m, nil
	case quizzesMsg:
		m.loaded()
		m.quizzes = msg
		m.screen = screenQuizzes
		return m, nil
	case quizMsg:
		m.loaded()
		return m.startQuiz(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) loaded() {
	m.loading = false
	m.err = nil
	m.retry = nil
	m.cursor = 0
	m.notice = ""
}

func (m Model) startQuiz(quiz *models.Quiz) (tea.Model, tea.Cmd) {
	if m.opts.Shuffle {
		shuffled := *quiz
		shuffled.Questions = utils.Shuffle(quiz.Questions)
		quiz = &shuffled
	}
	m.sess = session.New(session.Options{
		RequireComplete: true,
		PassingScore:    m.opts.PassingScore,
	})
	if err := m.sess.Load(quiz); err != nil {
		m.err = err
		return m, nil
	}
	m.attempts = nil
	m.screen = screenQuestion
	return m, nil
}

func (m Model) fetch(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}
	if m.err != nil {
		if key.Matches(msg, keys.Restart) && m.retry != nil {
			return m.fetch(m.retry)
		}
		if key.Matches(msg, keys.Back) {
			m.err = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenYears, screenSeries, screenQuizzes:
		return m.handleListKey(msg)
	case screenQuestion:
		return m.handleQuestionKey(msg)
	case screenResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m Model) listLen() int {
	switch m.screen {
	case screenYears:
		return len(m.years)
	case screenSeries:
		return len(m.series)
	case screenQuizzes:
		return len(m.quizzes)
	}
	return 0
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Back):
		switch m.screen {
		case screenSeries:
			m.screen, m.cursor = screenYears, 0
		case screenQuizzes:
			m.screen, m.cursor = screenSeries, 0
		}
	case key.Matches(msg, keys.Enter):
		if m.listLen() == 0 {
			return m, nil
		}
		switch m.screen {
		case screenYears:
			m.year = m.years[m.cursor].Year
			return m.fetch(m.loadSeries(m.year))
		case screenSeries:
			m.seriesNum = m.series[m.cursor].Series
			return m.fetch(m.loadQuizzes(m.year, m.seriesNum))
		case screenQuizzes:
			return m.fetch(m.loadQuiz(m.quizzes[m.cursor].ID))
		}
	}
	return m, nil
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, keys.Prev):
		_ = m.sess.Previous()
	case key.Matches(msg, keys.Next):
		_ = m.sess.Next()
	case key.Matches(msg, keys.Back):
		m.screen, m.cursor = screenQuizzes, 0
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case key.Matches(msg, keys.Enter):
		if !m.sess.IsAnswered() {
			m.notice = "Choose an option first."
			return m, nil
		}
		if m.sess.CurrentIndex() == len(m.sess.Quiz().Questions)-1 {
			return m.submit()
		}
		_ = m.sess.Next()
	default:
		if option, ok := optionKey(msg); ok {
			if err := m.sess.SelectOption(option); err != nil {
				m.notice = fmt.Sprintf("No option %d.", option+1)
			}
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	result, err := m.sess.Submit()
	if err != nil {
		if errors.Is(err, session.ErrIncomplete) {
			m.notice = fmt.Sprintf("Answer all questions first (%d unanswered).", len(m.sess.Unanswered()))
			return m, nil
		}
		m.err = err
		return m, nil
	}
	m.attempts = append(m.attempts, *result)
	m.screen = screenResult
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Restart):
		if err := m.sess.Restart(); err != nil {
			m.err = err
			return m, nil
		}
		m.screen = screenQuestion
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
		m.screen, m.cursor = screenQuizzes, 0
	}
	return m, nil
}

// optionKey maps "1".."9" to option indices
func optionKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
