package routers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	controllers "vocabquiz/controllers/content"
	applog "vocabquiz/logger"
	"vocabquiz/middleware"
	"vocabquiz/routers/quizRoutes"
	"vocabquiz/routers/yearRoutes"
	"vocabquiz/services"
)

// Options wire the HTTP application
type Options struct {
	Service     *services.ContentService
	Log         *applog.Logger
	FrontendURL string
	ExposeStack bool // attach stack details to 500 responses
	AccessLog   bool
}

// NewApp builds the Fiber application with all routes mounted
func NewApp(opts Options) *fiber.App {
	log := opts.Log
	if log == nil {
		log = applog.NewNop()
	}
	origin := opts.FrontendURL
	if origin == "" {
		origin = "http://localhost:3000"
	}

	app := fiber.New(fiber.Config{
		AppName:      "Quiz Application API",
		ErrorHandler: middleware.ErrorHandler(log, opts.ExposeStack),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: opts.ExposeStack}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
			Output: os.Stdout,
		}))
	}

	h := controllers.NewContentController(opts.Service, log)

	app.Get("/", controllers.Root)

	api := app.Group("/api")
	api.Get("/", controllers.Index)
	api.Get("/health", controllers.Health)
	yearRoutes.SetupYearRoutes(api, h)
	quizRoutes.SetupQuizRoutes(api, h)

	app.Use(middleware.NotFoundHandler)

	return app
}
