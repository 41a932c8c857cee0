// Package server builds the gin engine and registers the API routes.
package server

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/config"
	adminctrl "github.com/lshigami/intervue/internal/controller/admin"
	interviewctrl "github.com/lshigami/intervue/internal/controller/interview"
	resumectrl "github.com/lshigami/intervue/internal/controller/resume"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unrolled/secure"
)

// Controllers groups the handlers mounted by RegisterRoutes.
type Controllers struct {
	Resume    *resumectrl.ResumeController
	Interview *interviewctrl.InterviewController
	Admin     *adminctrl.AdminQuestionController
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	r.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	return r
}

func RegisterRoutes(router *gin.Engine, cfg *config.Config, ctrl Controllers) {
	uploadLimit := uploadRateLimiter(cfg.Upload.RatePerMinute)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/resumes", uploadLimit, ctrl.Resume.Upload)
		v1.GET("/resumes", ctrl.Resume.List)
		v1.GET("/resumes/:id", ctrl.Resume.Get)
		v1.GET("/resumes/:id/questions", ctrl.Resume.Questions)

		v1.GET("/tech-questions", ctrl.Interview.ListQuestions)
		v1.GET("/tech-questions/stacks", ctrl.Interview.TechStacks)
		v1.GET("/tech-questions/:id", ctrl.Interview.QuestionDetails)

		v1.POST("/responses", ctrl.Interview.SubmitResponse)
		v1.POST("/responses/:id/feedback", ctrl.Interview.GenerateFeedback)
		v1.GET("/users/:user_id/responses", ctrl.Interview.ListUserResponses)

		admin := v1.Group("/admin")
		admin.POST("/tech-questions", ctrl.Admin.CreateQuestion)
	}

	// Paths served before the v1 prefix existed.
	legacy := router.Group("/api")
	{
		legacy.POST("/upload-resume", uploadLimit, ctrl.Resume.LegacyUpload)
		legacy.GET("/get-resumes", ctrl.Resume.LegacyList)
		legacy.GET("/tech-questions", ctrl.Interview.ListQuestions)
		legacy.GET("/tech-questions/:id", ctrl.Interview.QuestionDetails)
		legacy.POST("/tech-questions/submit-response", ctrl.Interview.LegacySubmitResponse)
	}
}

// uploadRateLimiter limits uploads per client IP. A zero rate disables it.
func uploadRateLimiter(perMinute uint) gin.HandlerFunc {
	if perMinute == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: perMinute,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			log.Warn().Str("client_ip", c.ClientIP()).Time("reset", info.ResetTime).Msg("Upload rate limit hit")
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many uploads. Try again later.",
				Code:  "rate_limited",
			})
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
