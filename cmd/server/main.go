package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/hqanh/theorytrainer/config"
	"github.com/hqanh/theorytrainer/database"
	"github.com/hqanh/theorytrainer/internal/controller"
	"github.com/hqanh/theorytrainer/internal/logger"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/repository"
	"github.com/hqanh/theorytrainer/internal/service"
)

// @title Theory Trainer API
// @version 1.0
// @description Quiz and analytics API over a curated concept/definition store.
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			func() *rand.Rand {
				return rand.New(rand.NewSource(time.Now().UnixNano()))
			},
		),

		// Repositories layer
		fx.Provide(
			repository.NewConceptRepository,
			repository.NewAttemptRepository,
		),

		// Services layer
		fx.Provide(
			service.NewConceptService,
			service.NewQuizService,
			service.NewAnalyticsService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewConceptController,
			controller.NewQuizController,
			controller.NewAnalyticsController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html; run `swag init` to generate docs.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	conceptCtrl *controller.ConceptController,
	quizCtrl *controller.QuizController,
	analyticsCtrl *controller.AnalyticsController,
) {
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/concepts", conceptCtrl.CreateConcept)
	}

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/concepts", conceptCtrl.GetConcepts)
		apiGroup.GET("/categories", conceptCtrl.GetCategories)

		quizGroup := apiGroup.Group("/quiz")
		quizGroup.POST("/sessions", quizCtrl.StartSession)
		quizGroup.GET("/sessions/:id", quizCtrl.GetSession)
		quizGroup.GET("/sessions/:id/question", quizCtrl.GetQuestion)
		quizGroup.POST("/sessions/:id/answers", quizCtrl.SubmitAnswer)

		apiGroup.GET("/analytics/trouble-spots", analyticsCtrl.GetTroubleSpots)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Theory Trainer API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Concept{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
