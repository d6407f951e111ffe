package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/growthbridge/growthbridge-backend/internal/handlers"
  "github.com/growthbridge/growthbridge-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware    *middleware.AuthMiddleware
  AssessmentHandler *handlers.AssessmentHandler
  CatalogHandler    *handlers.CatalogHandler
  UserHandler       *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware("growthbridge-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Assessment
  protected.GET("/assessment/catalog", cfg.CatalogHandler.GetCatalog)
  protected.GET("/assessment/:user/pending", cfg.AssessmentHandler.GetPending)
  protected.POST("/assessment/answers", cfg.AssessmentHandler.SubmitAnswers)
  protected.GET("/assessment/:user/result", cfg.AssessmentHandler.GetResults)
  // Profile
  protected.GET("/profile/me", cfg.UserHandler.GetMe)
  protected.PUT("/profile/me", cfg.UserHandler.UpdateMe)

  return router
}
