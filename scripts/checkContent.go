package main

import (
	"fmt"
	"io/fs"
	"os"

	"vocabquiz/config"
	"vocabquiz/database"
	"vocabquiz/logger"
	"vocabquiz/utils"
)

// Validates the quiz content (CONTENT_DIR, or the embedded set) and prints the inventory.
func main() {
	config.LoadConfig()

	log, err := logger.New(config.AppConfig.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	source := "embedded"
	var fsys fs.FS = database.Content()
	if dir := config.AppConfig.ContentDir; dir != "" {
		source = dir
		fsys = os.DirFS(dir)
	}
	log = log.With("source", source)

	quizzes, err := database.ReadFS(fsys)
	if err != nil {
		log.Fatal("Failed to read content", "error", err)
	}

	result := database.ValidateSet(quizzes)
	if !result.Valid {
		for _, reason := range result.Reasons {
			log.Warn("Invalid content", "reason", reason)
		}
		log.Fatal("Content validation failed", "problems", len(result.Reasons))
	}

	registry, err := database.NewRegistry(quizzes)
	if err != nil {
		log.Fatal("Failed to index content", "error", err)
	}

	for _, year := range registry.Years() {
		fmt.Printf("%d\n", year)
		for _, series := range registry.SeriesFor(year) {
			fmt.Printf("  series %d\n", series)
			for _, quiz := range registry.Quizzes(year, series) {
				s := utils.Summarize(quiz)
				fmt.Printf("    %-20s %2d questions  %-6s ~%d min  %s\n",
					s.ID, s.QuestionCount, s.Difficulty, s.EstimatedTime, s.Title)
			}
		}
	}
	log.Info("Content is valid", "quizzes", len(registry.AllQuizzes()))
}
