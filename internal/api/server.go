package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	foodService    service.FoodEntriesServiceI
	quizService    service.QuizServiceI
	galleryService service.GalleryServiceI
	chatService    service.ChatServiceI
	jwtService     JWTServiceI
	corsOrigins    []string
}

type ServicesList struct {
	UserService    service.UserServiceI
	FoodService    service.FoodEntriesServiceI
	QuizService    service.QuizServiceI
	GalleryService service.GalleryServiceI
	ChatService    service.ChatServiceI
	JwtService     JWTServiceI
	// Empty list allows every origin
	CORSAllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		foodService:    servicesOptions.FoodService,
		quizService:    servicesOptions.QuizService,
		galleryService: servicesOptions.GalleryService,
		chatService:    servicesOptions.ChatService,
		jwtService:     servicesOptions.JwtService,
		corsOrigins:    servicesOptions.CORSAllowedOrigins,
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler)
	s.mx.Use(middleware.Recoverer)

	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Get("/daily-questions/today", s.TodaysQuestions)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/me", s.Me)
			r.Post("/food-entries", s.SubmitFoodEntry)
			r.Get("/food-entries", s.ListOwnEntries)
			r.Get("/food-entries/all", s.ListRecentEntries)
			r.Post("/calorie-check", s.CheckCalories)
			r.Post("/food-compare", s.CompareFoods)
			r.Get("/gallery", s.ListGallery)
			r.Post("/gallery/{id}/like", s.LikeGalleryItem)
			r.Post("/chat/messages", s.SendChatMessage)
			r.Get("/chat/messages", s.ListChatMessages)
			r.Post("/question-responses", s.SubmitQuestionResponse)
			r.Get("/leaderboard", s.Leaderboard)
			r.Get("/analytics/user-stats", s.UserStats)
			r.Get("/analytics/class-summary", s.ClassSummary)

			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)
				r.Post("/users", s.AdminCreateUser)
				r.Get("/users", s.AdminListUsers)
				r.Delete("/users/{id}", s.AdminDeleteUser)
				r.Post("/users/{id}/reset-progress", s.AdminResetProgress)
				r.Post("/questions", s.AdminCreateQuestion)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
