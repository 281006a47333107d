package models

// VocabularyExample pairs an English sentence with its Persian translation
type VocabularyExample struct {
	English string `json:"english" yaml:"english" validate:"required"`
	Persian string `json:"persian" yaml:"persian" validate:"required"`
	Context string `json:"context,omitempty" yaml:"context"`
}

// VocabularyItem glosses a word that appears in the question sentence
type VocabularyItem struct {
	Word           string              `json:"word" yaml:"word" validate:"required"`
	Forms          []string            `json:"forms,omitempty" yaml:"forms"`
	PersianMeaning string              `json:"persianMeaning" yaml:"persianMeaning" validate:"required"`
	Explanation    string              `json:"explanation" yaml:"explanation"`
	Examples       []VocabularyExample `json:"examples,omitempty" yaml:"examples" validate:"dive"`
	Collocations   []string            `json:"collocations,omitempty" yaml:"collocations"`
}

// ChoiceExplanation explains why an option is right or wrong
type ChoiceExplanation struct {
	Choice         string              `json:"choice" yaml:"choice" validate:"required"`
	IsCorrect      bool                `json:"isCorrect" yaml:"isCorrect"`
	PersianMeaning string              `json:"persianMeaning" yaml:"persianMeaning" validate:"required"`
	Explanation    string              `json:"explanation" yaml:"explanation"`
	Collocations   []string            `json:"collocations,omitempty" yaml:"collocations"`
	Examples       []VocabularyExample `json:"examples,omitempty" yaml:"examples" validate:"dive"`
}
