// @title SnackCheck API
// @description API for the "SnackCheck" student nutrition logging app
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/limbo/snackcheck/docs"
	"github.com/limbo/snackcheck/internal/api"
	"github.com/limbo/snackcheck/internal/imagerecognition"
	"github.com/limbo/snackcheck/internal/nutrition"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/cleanup"
	"github.com/limbo/snackcheck/pkg/config"
	jwtservice "github.com/limbo/snackcheck/pkg/jwt_service"
	"github.com/lmittmann/tint"
)

func init() {
	service.InitValidator()
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := new(slog.LevelVar)
	switch strings.ToLower(cfg.GetStringOr("LOG_LEVEL", "info")) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}
	var handler slog.Handler
	if strings.ToLower(cfg.GetString("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

func main() {
	cfg := config.New()
	slog.SetDefault(setupLogger(cfg))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	policy, err := rewards.ParsePointsPolicy(cfg.GetString("POINTS_POLICY"))
	if err != nil {
		log.Fatal(err)
	}
	catalog := nutrition.DefaultCatalog()
	if path := cfg.GetString("NUTRITION_CATALOG_PATH"); path != "" {
		catalog, err = nutrition.LoadCatalog(path)
		if err != nil {
			log.Fatal("loading nutrition catalog error: " + err.Error())
		}
		slog.Info("nutrition catalog loaded", slog.String("path", path), slog.Int("foods", catalog.Len()))
	}
	var images nutrition.ImageClassifier
	if cfg.GetBool("IMAGE_RECOGNITION_ENABLED", false) {
		rc, err := imagerecognition.NewFromRegion(ctx, cfg.GetStringOr("AWS_REGION", "eu-west-1"))
		if err != nil {
			slog.Warn("image recognition disabled", slog.String("error", err.Error()))
		} else {
			images = rc
		}
	}
	classifier := nutrition.NewClassifier(catalog, images, cfg.GetDuration("IMAGE_RECOGNITION_TIMEOUT", 5*time.Second))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}

	engine := rewards.NewEngine(policy)
	calendar := service.NewCalendar(loc)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(repository.NewUsersRepo(pool)),
		FoodService:        service.NewFoodEntriesService(repository.NewFoodEntriesRepo(pool), classifier, engine, calendar, cfg.GetInt("GALLERY_MIN_SCORE", service.DefaultGalleryMinScore)),
		QuizService:        service.NewQuizService(repository.NewQuizRepo(pool), engine, calendar),
		GalleryService:     service.NewGalleryService(repository.NewGalleryRepo(pool)),
		ChatService:        service.NewChatService(repository.NewChatRepo(pool)),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		CORSAllowedOrigins: cfg.GetStringSlice("CORS_ALLOWED_ORIGINS", nil),
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
