package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabquiz/config"
	"vocabquiz/database"
	"vocabquiz/logger"
	"vocabquiz/routers"
	"vocabquiz/services"
)

func main() {
	config.LoadConfig()

	log, err := logger.New(config.AppConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var registry *database.Registry
	if config.AppConfig.ContentDir != "" {
		registry, err = database.LoadDir(config.AppConfig.ContentDir)
	} else {
		registry, err = database.LoadEmbedded()
	}
	if err != nil {
		log.Fatal("failed to load quiz content", "error", err, "content_dir", config.AppConfig.ContentDir)
	}
	log.Info("quiz content loaded", "years", registry.Years(), "quizzes", len(registry.AllQuizzes()))

	app := routers.NewApp(routers.Options{
		Service:     services.NewContentService(registry, config.AppConfig.PassingScore),
		Log:         log,
		FrontendURL: config.AppConfig.FrontendURL,
		ExposeStack: config.AppConfig.IsDevelopment(),
		AccessLog:   true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("server is running", "port", config.AppConfig.Port, "env", config.AppConfig.Env)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
