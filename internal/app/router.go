package app

import (
	"github.com/gin-gonic/gin"
	"github.com/growthbridge/growthbridge-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:    middleware.Auth,
		AssessmentHandler: handlers.Assessment,
		CatalogHandler:    handlers.Catalog,
		UserHandler:       handlers.User,
	})
}
