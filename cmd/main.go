package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/database"
	_ "github.com/lshigami/intervue/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/intervue/internal/controller/admin"
	interviewctrl "github.com/lshigami/intervue/internal/controller/interview"
	resumectrl "github.com/lshigami/intervue/internal/controller/resume"
	"github.com/lshigami/intervue/internal/logger"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/lshigami/intervue/internal/server"
	"github.com/lshigami/intervue/internal/service"
	"github.com/lshigami/intervue/internal/storage"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interview Prep API
// @version 1.0
// @description Resume upload and parsing, resume-based question generation and a technical question bank with mock AI feedback.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			server.NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewResumeRepository,
			repository.NewTechnicalQuestionRepository,
			repository.NewUserResponseRepository,
		),

		// Resume storage chain
		fx.Provide(
			storage.NewKV,
			storage.NewResumeChain,
			func(chain *storage.Chain) service.ResumeStore { return chain },
		),

		// Services
		fx.Provide(
			service.NewUploadValidator,
			service.NewTextExtractor,
			service.NewResumeService,
			service.NewTechnicalQuestionService,
			service.NewAdminQuestionService,
			service.NewFeedbackProvider,
			service.NewResponseService,
		),

		// Controllers
		fx.Provide(
			resumectrl.NewResumeController,
			interviewctrl.NewInterviewController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(database.SeedQuestions),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	kv storage.KV,
	resumeCtrl *resumectrl.ResumeController,
	interviewCtrl *interviewctrl.InterviewController,
	adminCtrl *adminctrl.AdminQuestionController,
) {
	server.RegisterRoutes(router, cfg, server.Controllers{
		Resume:    resumeCtrl,
		Interview: interviewCtrl,
		Admin:     adminCtrl,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview prep API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := srv.Shutdown(shutdownCtx)
			if closer, ok := kv.(interface{ Close() error }); ok {
				if cerr := closer.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("Closing KV failed")
				}
			}
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.AutoMigrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
