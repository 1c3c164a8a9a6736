package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyplanner/internal/api"
	"studyplanner/internal/config"
	"studyplanner/internal/database"
	"studyplanner/internal/repository"
	"studyplanner/internal/s3"
	"studyplanner/internal/service"
	"studyplanner/internal/tracing"
	"studyplanner/migrations"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

const serviceName = "studyplanner"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Study planner API server",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runMigrate(cmd.Context()) },
	})

	return root
}

func runMigrate(ctx context.Context) error {
	api.SetupGlobalHandler(serviceName)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, dialect := connectDB(ctx, cfg)
	defer db.Close()

	if err := migrations.Up(ctx, db.DB, string(dialect)); err != nil {
		return err
	}

	log.Println("Migrations applied successfully!")
	return nil
}

func runServe(ctx context.Context) error {
	api.SetupGlobalHandler(serviceName)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTracer, err := tracing.InitTracerProvider(ctx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	db, dialect := connectDB(ctx, cfg)
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migrations.Up(ctx, db.DB, string(dialect)); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	var presigner service.AvatarPresigner
	if cfg.S3.Enabled() {
		filePresigner, err := s3.NewFilePresigner(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 presigner: %v", err)
		}
		presigner = filePresigner
		log.Println("Successfully initialized S3 presigner.")
	}

	userService := service.NewUserService(repository.NewUserRepository(db), presigner)
	planService := service.NewStudyPlanService(repository.NewStudyPlanRepository(db), cfg.ListMaxLimit)
	messageService := service.NewMessageService(repository.NewMessageRepository(db))
	sessionService := service.NewSessionService(repository.NewMemorySessionRepository())

	app := api.NewApp(api.AppConfig{
		ServiceName:         serviceName,
		AppName:             cfg.AppName,
		APIVersion:          cfg.APIVersion,
		DefaultActorID:      cfg.DefaultActorID,
		RateLimitMax:        cfg.RateLimitMax,
		RateLimitExpiration: time.Duration(cfg.RateLimitExpiration) * time.Second,
	}, api.Services{
		Users:      userService,
		StudyPlans: planService,
		Messages:   messageService,
		Sessions:   sessionService,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		slog.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("Server shutdown failed", slog.String("error", err.Error()))
		}
	}()

	log.Printf("Listening %s on port %s", serviceName, cfg.Port)
	return app.Listen(":" + cfg.Port)
}

func connectDB(ctx context.Context, cfg config.Config) (*sqlx.DB, database.Dialect) {
	db, dialect, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Successfully connected to the %s database.", dialect)
	return db, dialect
}
