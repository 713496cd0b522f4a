package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/imilab/chartme/config"
	"github.com/imilab/chartme/database"
	_ "github.com/imilab/chartme/docs" // Swagger docs
	adminctrl "github.com/imilab/chartme/internal/controller/admin"
	publicctrl "github.com/imilab/chartme/internal/controller/public"
	"github.com/imilab/chartme/internal/logger"
	"github.com/imilab/chartme/internal/model"
	"github.com/imilab/chartme/internal/repository"
	"github.com/imilab/chartme/internal/service"
	"github.com/imilab/chartme/internal/session"
)

// Idle sessions are kept in memory this long after the last interaction
// before being dropped without a trace.
const sessionTTL = 2 * time.Hour

// @title ChartMe API
// @version 1.0
// @description Multi-tenant platform for AI-assisted multiple-choice assessments: test authoring, candidate sessions, training paths and progress reports.
// @contact.name API Support
// @contact.email support@chartme.io
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewSessionStore,
		),

		fx.Provide(
			repository.NewOrganizationRepository,
			repository.NewUserRepository,
			repository.NewInvitationRepository,
			repository.NewTestRepository,
			repository.NewSubmissionRepository,
			repository.NewTrainingPathRepository,
		),

		fx.Provide(
			service.NewMailer,
			service.NewGenerationService,
			service.NewAdminTestService,
			service.NewCandidateSessionService,
			service.NewTrainingPathService,
			service.NewReportService,
			service.NewInvitationService,
			service.NewBillingService,
		),

		fx.Provide(
			adminctrl.NewController,
			publicctrl.NewController,
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

// NewSessionStore wires the in-memory session store into the fx lifecycle so
// timers and the reaper stop with the process.
func NewSessionStore(lc fx.Lifecycle) *session.Store {
	store := session.NewStore(sessionTTL)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
	return store
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Organization-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts both API surfaces and ties the HTTP
// server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.Controller,
	publicCtrl *publicctrl.Controller,
) {
	adminCtrl.RegisterRoutes(router)
	publicCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ChartMe API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Organization{},
		&model.User{},
		&model.Invitation{},
		&model.Test{},
		&model.Question{},
		&model.Submission{},
		&model.TrainingPath{},
		&model.PlannedSession{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
