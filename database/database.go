package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"vocabquiz/models"
	"vocabquiz/utils"
)

//go:embed content
var embeddedContent embed.FS

// ErrInvalidContent is returned when a content set fails validation
var ErrInvalidContent = errors.New("invalid quiz content")

// contentFile is the on-disk shape of one YAML content file
type contentFile struct {
	Year    int           `yaml:"year"`
	Series  int           `yaml:"series"`
	Quizzes []models.Quiz `yaml:"quizzes"`
}

// Registry is the immutable year -> series -> quiz index.
// It is built once at startup and is safe for concurrent reads.
// Quizzes handed out by the registry must not be modified.
type Registry struct {
	years   []int
	series  map[int][]int
	quizzes map[int]map[int][]*models.Quiz
	byID    map[string]*models.Quiz
	all     []*models.Quiz
}

// Content returns the quiz content compiled into the binary
func Content() fs.FS {
	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadEmbedded builds the registry from the content compiled into the binary
func LoadEmbedded() (*Registry, error) {
	return LoadFS(Content())
}

// LoadDir builds the registry from YAML files below dir
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads and indexes every content file of fsys
func LoadFS(fsys fs.FS) (*Registry, error) {
	quizzes, err := ReadFS(fsys)
	if err != nil {
		return nil, err
	}
	return NewRegistry(quizzes)
}

// ReadFS decodes every .yaml/.yml file of fsys in lexical order without validating
func ReadFS(fsys fs.FS) ([]models.Quiz, error) {
	var quizzes []models.Quiz

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		var file contentFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}

		for i, quiz := range file.Quizzes {
			if quiz.Year == 0 {
				quiz.Year = file.Year
			}
			if quiz.Series == 0 {
				quiz.Series = file.Series
			}
			if quiz.ID == "" && quiz.Year > 0 && quiz.Series > 0 {
				quiz.ID = utils.QuizID(quiz.Year, quiz.Series, i+1)
			}
			for j := range quiz.Questions {
				q := &quiz.Questions[j]
				if q.ID == "" && q.TestNumber > 0 && quiz.Year > 0 && quiz.Series > 0 {
					q.ID = utils.QuestionID(quiz.Year, quiz.Series, q.TestNumber)
				}
			}
			quizzes = append(quizzes, quiz)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// NewRegistry validates quizzes and indexes them. Order inside a series is preserved.
func NewRegistry(quizzes []models.Quiz) (*Registry, error) {
	if result := ValidateSet(quizzes); !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(result.Reasons, "; "))
	}

	r := &Registry{
		series:  make(map[int][]int),
		quizzes: make(map[int]map[int][]*models.Quiz),
		byID:    make(map[string]*models.Quiz, len(quizzes)),
		all:     make([]*models.Quiz, 0, len(quizzes)),
	}

	for i := range quizzes {
		quiz := quizzes[i]
		quiz.Questions = append([]models.Question(nil), quiz.Questions...)
		for j := range quiz.Questions {
			if quiz.Questions[j].Year == 0 {
				quiz.Questions[j].Year = quiz.Year
			}
			if quiz.Questions[j].Series == 0 {
				quiz.Questions[j].Series = quiz.Series
			}
		}

		bySeries, ok := r.quizzes[quiz.Year]
		if !ok {
			bySeries = make(map[int][]*models.Quiz)
			r.quizzes[quiz.Year] = bySeries
			r.years = append(r.years, quiz.Year)
		}
		if _, ok := bySeries[quiz.Series]; !ok {
			r.series[quiz.Year] = append(r.series[quiz.Year], quiz.Series)
		}
		bySeries[quiz.Series] = append(bySeries[quiz.Series], &quiz)
		r.byID[quiz.ID] = &quiz
		r.all = append(r.all, &quiz)
	}

	sort.Ints(r.years)
	for _, series := range r.series {
		sort.Ints(series)
	}
	return r, nil
}

// Years lists the available years in ascending order
func (r *Registry) Years() []int {
	return append([]int(nil), r.years...)
}

// HasYear reports whether any quiz belongs to year
func (r *Registry) HasYear(year int) bool {
	_, ok := r.quizzes[year]
	return ok
}

// SeriesFor lists the series of a year in ascending order
func (r *Registry) SeriesFor(year int) []int {
	return append([]int(nil), r.series[year]...)
}

// HasSeries reports whether the series exists within year
func (r *Registry) HasSeries(year, series int) bool {
	_, ok := r.quizzes[year][series]
	return ok
}

// Quizzes returns the quizzes of one series in source order
func (r *Registry) Quizzes(year, series int) []*models.Quiz {
	return append([]*models.Quiz(nil), r.quizzes[year][series]...)
}

// Quiz looks a quiz up by id
func (r *Registry) Quiz(id string) (*models.Quiz, bool) {
	quiz, ok := r.byID[id]
	return quiz, ok
}

// AllQuizzes returns every quiz in load order
func (r *Registry) AllQuizzes() []*models.Quiz {
	return append([]*models.Quiz(nil), r.all...)
}

// QuizCount counts the quizzes of a year across its series
func (r *Registry) QuizCount(year int) int {
	total := 0
	for _, quizzes := range r.quizzes[year] {
		total += len(quizzes)
	}
	return total
}
