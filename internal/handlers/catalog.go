package handlers

import (
  "github.com/gin-gonic/gin"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/services"
)

type CatalogHandler struct {
  log        *logger.Logger
  catalogSvc services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogSvc services.CatalogService) *CatalogHandler {
  return &CatalogHandler{
    log:        log.With("handler", "CatalogHandler"),
    catalogSvc: catalogSvc,
  }
}

// GET /assessment/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
  catalog, err := h.catalogSvc.GetCatalog(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Catalog retrieved", catalog)
}
