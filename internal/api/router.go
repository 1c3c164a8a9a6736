package api

import (
	"time"

	"studyplanner/internal/service"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppConfig struct {
	ServiceName         string
	AppName             string
	APIVersion          string
	DefaultActorID      int64
	RateLimitMax        int
	RateLimitExpiration time.Duration
}

type Services struct {
	Users      service.UserService
	StudyPlans service.StudyPlanService
	Messages   service.MessageService
	Sessions   service.SessionService
}

// NewApp wires middleware and routes onto a new Fiber app.
func NewApp(cfg AppConfig, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	app.Use(PrometheusMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":  "Welcome to " + cfg.AppName,
			"app_name": cfg.AppName,
			"version":  cfg.APIVersion,
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.ServiceName})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	SetupRoutes(app, cfg, svc)

	return app
}

func SetupRoutes(app *fiber.App, cfg AppConfig, svc Services) {
	expiration := cfg.RateLimitExpiration
	if expiration <= 0 {
		expiration = time.Minute
	}
	maxRequests := cfg.RateLimitMax
	if maxRequests <= 0 {
		maxRequests = 100
	}

	apiGroup := app.Group("/api")
	apiGroup.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return respond(c, fiber.StatusTooManyRequests, CodeRateLimited, "Too many request, please try again later.")
		},
	}))
	apiGroup.Use(ActorMiddleware(cfg.DefaultActorID))

	sessionHandler := NewSessionHandler(svc.Sessions)
	apiGroup.Post("/sessions", sessionHandler.CreateSession)
	apiGroup.Get("/sessions", sessionHandler.ListSessions)

	planHandler := NewStudyPlanHandler(svc.StudyPlans)
	plans := apiGroup.Group("/study-plans")
	plans.Post("/", planHandler.CreateStudyPlan)
	plans.Get("/", planHandler.ListStudyPlans)
	plans.Get("/:id", planHandler.GetStudyPlan)
	plans.Put("/:id", planHandler.UpdateStudyPlan)
	plans.Delete("/:id", planHandler.DeleteStudyPlan)

	messageHandler := NewMessageHandler(svc.Messages)
	messages := apiGroup.Group("/messages")
	messages.Post("/", messageHandler.SendMessage)
	messages.Get("/", messageHandler.ListMessages)
	messages.Delete("/:id", messageHandler.DeleteMessage)

	userHandler := NewUserHandler(svc.Users)
	users := apiGroup.Group("/users")
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Get("/:id/settings", userHandler.GetUserSettings)
	users.Put("/:id/settings", userHandler.UpdateUserSettings)
	users.Post("/:id/avatar/upload-url", userHandler.GetAvatarUploadURL)
}
