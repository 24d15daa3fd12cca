package server

import (
	"net/http"

	"fitness-backend/internal/config"
	"fitness-backend/internal/handler"
	"fitness-backend/internal/mailer"
	"fitness-backend/internal/middleware"
	"fitness-backend/internal/models"
	"fitness-backend/internal/repository"
	"fitness-backend/internal/service"
	"fitness-backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
	log    *logrus.Logger
	mail   mailer.Mailer
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, log *logrus.Logger, mail mailer.Mailer) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
		log:    log,
		mail:   mail,
	}

	s.setupRoutes()

	return s
}

// Router exposes the assembled handler for the HTTP server in main.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	tokens := token.NewManager(s.cfg.Auth.JWTSecret, s.cfg.TokenTTL())

	userRepo := repository.NewUserRepository(s.db, s.logger)
	scheduleRepo := repository.NewScheduleRepository(s.db, s.logger)

	authService := service.NewAuthService(userRepo, tokens, s.mail, s.cfg.App.BaseURL, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.log)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo, s.log)

	// Health check
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Fitness Center API is running!")
	})

	api := s.router.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/verify-email", authHandler.VerifyEmail)

	// Authenticated routes
	authRequired := api.Group("")
	authRequired.Use(middleware.AuthMiddleware(tokens, s.logger))
	{
		authRequired.GET("/profile", authHandler.Profile)
	}

	// Admin-only routes
	admin := authRequired.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/schedule", scheduleHandler.List)
		admin.POST("/schedule/create", scheduleHandler.Create)
		admin.POST("/schedule/update", scheduleHandler.Update)
		admin.POST("/schedule/delete", scheduleHandler.Delete)

		admin.GET("/ref/trainers", scheduleHandler.Trainers)
		admin.GET("/ref/rooms", scheduleHandler.Rooms)
		admin.GET("/ref/activities", scheduleHandler.Activities)
	}
}
