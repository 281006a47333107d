package tui

import (
	"fmt"
	"strings"

	"vocabquiz/models"
	"vocabquiz/session"
	"vocabquiz/utils"
)

// View renders the current screen
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Vocabulary Quiz"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		if m.retry != nil {
			b.WriteString(m.styles.Subtle.Render("r retry • esc dismiss • q quit"))
		} else {
			b.WriteString(m.styles.Subtle.Render("esc dismiss • q quit"))
		}
		return b.String()
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...")
		return b.String()
	}

	switch m.screen {
	case screenYears:
		m.viewYears(&b)
	case screenSeries:
		m.viewSeries(&b)
	case screenQuizzes:
		m.viewQuizzes(&b)
	case screenQuestion:
		m.viewQuestion(&b)
	case screenResult:
		m.viewResult(&b)
	}

	if m.notice != "" {
		b.WriteString("\n" + m.styles.Notice.Render(m.notice) + "\n")
	}
	return b.String()
}

func (m Model) cursorLine(b *strings.Builder, i int, line string) {
	if i == m.cursor {
		b.WriteString(m.styles.Selected.Render("> " + line))
	} else {
		b.WriteString("  " + line)
	}
	b.WriteString("\n")
}

func (m Model) viewYears(b *strings.Builder) {
	if len(m.years) == 0 {
		b.WriteString("No exam years available.\n")
	}
	for i, y := range m.years {
		m.cursorLine(b, i, fmt.Sprintf("%d  (%s, %s)", y.Year,
			plural(y.SeriesCount, "series", "series"), plural(y.TotalQuizzes, "quiz", "quizzes")))
	}
	b.WriteString("\n" + m.styles.Subtle.Render("↑/↓ move • enter open • q quit"))
}

func (m Model) viewSeries(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("Year %d\n\n", m.year))
	for i, s := range m.series {
		m.cursorLine(b, i, fmt.Sprintf("Series %d  (%s)", s.Series, plural(s.QuizCount, "quiz", "quizzes")))
	}
	b.WriteString("\n" + m.styles.Subtle.Render("↑/↓ move • enter open • esc back • q quit"))
}

func (m Model) viewQuizzes(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("Year %d • Series %d\n\n", m.year, m.seriesNum))
	if len(m.quizzes) == 0 {
		b.WriteString("No quizzes in this series.\n")
	}
	for i, q := range m.quizzes {
		m.cursorLine(b, i, fmt.Sprintf("%s  [%s, %s, ~%d min]", q.Title,
			plural(q.QuestionCount, "question", "questions"), q.Difficulty, q.EstimatedTime))
	}
	b.WriteString("\n" + m.styles.Subtle.Render("↑/↓ move • enter start • esc back • q quit"))
}

func (m Model) viewQuestion(b *strings.Builder) {
	quiz := m.sess.Quiz()
	question, ok := m.sess.Current()
	if !ok {
		b.WriteString("This quiz has no questions.\n")
		return
	}
	total := len(quiz.Questions)

	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s • Question %d of %d • %d%% • %d answered",
		quiz.Title, m.sess.CurrentIndex()+1, total, m.sess.Progress(), m.sess.AnsweredCount())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Box.Render(question.Text))
	b.WriteString("\n\n")

	selected := m.sess.Selected(m.sess.CurrentIndex())
	for i, option := range question.Options {
		line := fmt.Sprintf("%d) %s", i+1, option)
		if i == selected {
			b.WriteString(m.styles.Selected.Render("● " + line))
		} else {
			b.WriteString("○ " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.styles.Subtle.Render("1-9 choose • ←/→ move • enter next • s submit • esc quit quiz"))
}

func (m Model) viewResult(b *strings.Builder) {
	result := m.sess.Result()
	quiz := m.sess.Quiz()
	if result == nil || quiz == nil {
		return
	}

	verdict := m.styles.Wrong.Render("Not passed")
	if result.Passed {
		verdict = m.styles.Correct.Render("Passed")
	}
	title := utils.FormatQuizTitle(quiz.Title, quiz.Year, quiz.Series)
	b.WriteString(fmt.Sprintf("%s\n\nScore: %d/%d (%d%%) • %s (pass mark %d%%)\n",
		title, result.Score, result.TotalQuestions, result.Percentage, verdict, result.PassingScore))
	if result.TotalTimeSpent != nil {
		b.WriteString(fmt.Sprintf("Time: %s\n", utils.FormatTime(*result.TotalTimeSpent)))
	}
	if len(m.attempts) > 1 {
		b.WriteString(fmt.Sprintf("Attempts: %d • average %d%%\n", len(m.attempts), session.AverageScore(m.attempts)))
	}
	b.WriteString("\n")

	for i, answer := range result.Answers {
		if i >= len(quiz.Questions) {
			break
		}
		m.viewReview(b, i, quiz.Questions[i], answer)
	}
	b.WriteString(m.styles.Subtle.Render("r restart • esc back to quizzes • q quit"))
}

func (m Model) viewReview(b *strings.Builder, i int, q models.Question, answer models.UserAnswer) {
	mark := m.styles.Correct.Render("✓")
	if !answer.IsCorrect {
		mark = m.styles.Wrong.Render("✗")
	}
	b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, q.Text))
	if q.Translation != "" {
		b.WriteString(m.styles.Subtle.Render("   "+q.Translation) + "\n")
	}

	if !answer.IsCorrect {
		chosen := "(no answer)"
		if answer.SelectedOption >= 0 && answer.SelectedOption < len(q.Options) {
			chosen = q.Options[answer.SelectedOption]
		}
		b.WriteString(fmt.Sprintf("   your answer: %s\n", chosen))
		if rationale := choiceRationale(q, chosen); rationale != "" {
			b.WriteString(m.styles.Subtle.Render("   "+rationale) + "\n")
		}
	}
	if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		b.WriteString(fmt.Sprintf("   correct: %s\n", q.Options[q.CorrectAnswer]))
	}
	if q.Explanation != "" {
		b.WriteString("   " + q.Explanation + "\n")
	}
	b.WriteString("\n")
}

// choiceRationale returns the enrichment note for the chosen option
func choiceRationale(q models.Question, choice string) string {
	for _, ce := range q.ChoiceExplanations {
		if strings.EqualFold(ce.Choice, choice) {
			if ce.Explanation == "" {
				return ce.PersianMeaning
			}
			return fmt.Sprintf("%s: %s", ce.PersianMeaning, ce.Explanation)
		}
	}
	return ""
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
