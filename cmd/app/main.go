package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"serenity-backend/cmd/app/internal/controller"
	"serenity-backend/internal/cache"
	"serenity-backend/internal/chat"
	"serenity-backend/internal/config"
	"serenity-backend/internal/db"
	"serenity-backend/internal/imgur"
	"serenity-backend/internal/mood"
	"serenity-backend/internal/realtime"
	"serenity-backend/internal/repository"
	"serenity-backend/internal/service"
	"serenity-backend/pkg/middleware"
	"serenity-backend/utilities"
)

func main() {
	printStartUpBanner()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := utilities.SetupLogging(cfg.Logging); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer utilities.CloseLogs()
	utilities.SetupTokens(cfg.Authentication)

	// Initialize DB using the loaded config.
	if err := db.InitDBFromConfig(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Load the questionnaire and chatbot rules.
	moodEngine, err := mood.LoadEngine(cfg.Content.MoodFile)
	if err != nil {
		log.Fatalf("failed to load mood questionnaire: %v", err)
	}
	chatEngine, err := chat.LoadEngine(cfg.Content.ChatFile)
	if err != nil {
		log.Fatalf("failed to load chat rules: %v", err)
	}
	utilities.Info("loaded %d mood questions, chat rules: %s", len(moodEngine.Questions()), strings.Join(chatEngine.Rules(), ", "))

	// Create repositories.
	userRepo := repository.NewUserRepository()
	moodRepo := repository.NewMoodRepository()
	journalRepo := repository.NewJournalRepository()
	chatRepo := repository.NewChatRepository()
	therapistRepo := repository.NewTherapistRepository()
	meditationRepo := repository.NewMeditationRepository()

	bus := utilities.GlobalEventBus
	uploader := imgur.NewClient(cfg.THIRD_PARTY.ImgurBaseURL, cfg.THIRD_PARTY.ImgurClientID)

	checks := map[string]controller.Check{
		"database": func() error {
			sqlDB, err := db.GetDB().DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
	}

	// Therapist listings are cached in redis when enabled.
	var therapistCache cache.TherapistCache
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewClient(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			utilities.Warn("redis unavailable, therapist cache disabled: %v", err)
		} else {
			therapistCache = cache.NewTherapistCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
			checks["cache"] = func() error {
				return redisClient.Ping(context.Background()).Err()
			}
		}
	}

	// Create services.
	authService := service.NewAuthService(userRepo)
	therapistService := service.NewTherapistService(therapistRepo, therapistCache, uploader)

	if cfg.DB.Initialize {
		if err := db.Migrate(db.GetDB()); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		if err := seed(authService, therapistRepo); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	hub := realtime.NewHub()
	hub.Subscribe(bus)
	defer hub.Close()

	services := controller.Services{
		Auth:       authService,
		User:       service.NewUserService(userRepo, uploader),
		Mood:       service.NewMoodService(moodEngine, moodRepo, bus),
		Chat:       service.NewChatService(chatEngine, chatRepo),
		Journal:    service.NewJournalService(journalRepo, bus),
		Therapist:  therapistService,
		Meditation: service.NewMeditationService(meditationRepo, bus),
		Progress:   service.NewProgressService(moodRepo, journalRepo, meditationRepo),
		Report:     service.NewReportService(userRepo, moodRepo),
		Hub:        hub,
		Checks:     checks,
	}

	// Initialize Gin router.
	if !cfg.Logging.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)))
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, services)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		utilities.Info("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utilities.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utilities.Error("graceful shutdown failed: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("SERENITY", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("SERENITY API (v%s)\n\n", "1.0.0")
}
