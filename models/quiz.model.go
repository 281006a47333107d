package models

// Question is a single fill-in-the-blank item of a quiz
type Question struct {
	ID            string   `json:"id" yaml:"id" validate:"required,max=100"`
	TestNumber    int      `json:"testNumber,omitempty" yaml:"testNumber"`
	Text          string   `json:"text" yaml:"text" validate:"required"`
	Options       []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" yaml:"correctAnswer" validate:"gte=0"` // zero-based index into Options
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation"`
	Year          int      `json:"year,omitempty" yaml:"year"`
	Series        int      `json:"series,omitempty" yaml:"series"`

	// Persian enrichment, all optional
	Vocabulary         []VocabularyItem    `json:"vocabulary,omitempty" yaml:"vocabulary" validate:"dive"`
	ChoiceExplanations []ChoiceExplanation `json:"choiceExplanations,omitempty" yaml:"choiceExplanations" validate:"dive"`
	Translation        string              `json:"translation,omitempty" yaml:"translation"`
}

// Quiz is an ordered list of questions belonging to one (year, series) pair
type Quiz struct {
	ID          string     `json:"id" yaml:"id" validate:"required,max=100,quizid"`
	Title       string     `json:"title" yaml:"title" validate:"required"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Questions   []Question `json:"questions" yaml:"questions" validate:"min=1,dive"`
	Year        int        `json:"year,omitempty" yaml:"year" validate:"gte=1300,lte=2100"`
	Series      int        `json:"series,omitempty" yaml:"series" validate:"gte=1,lte=100"`
}

// PreviewQuestion is a question stripped of its answer key and explanations
type PreviewQuestion struct {
	ID         string   `json:"id"`
	TestNumber int      `json:"testNumber,omitempty"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Year       int      `json:"year,omitempty"`
	Series     int      `json:"series,omitempty"`
}

// QuizPreview is a quiz safe to show before it is taken
type QuizPreview struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []PreviewQuestion `json:"questions"`
	Year        int               `json:"year,omitempty"`
	Series      int               `json:"series,omitempty"`
}

// Preview drops correct answers and explanations
func (q Quiz) Preview() QuizPreview {
	questions := make([]PreviewQuestion, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = PreviewQuestion{
			ID:         question.ID,
			TestNumber: question.TestNumber,
			Text:       question.Text,
			Options:    append([]string(nil), question.Options...),
			Year:       question.Year,
			Series:     question.Series,
		}
	}
	return QuizPreview{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Questions:   questions,
		Year:        q.Year,
		Series:      q.Series,
	}
}
