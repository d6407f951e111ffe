package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	redisclient "github.com/growthbridge/growthbridge-backend/internal/clients/redis"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/repos"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

const (
	catalogCacheKey = "assessment:catalog:v1"
	catalogCacheTTL = 12 * time.Hour
)

type Catalog struct {
	Dimensions []*types.Dimension          `json:"dimensions"`
	Questions  []*types.AssessmentQuestion `json:"questions"`
}

type CatalogService interface {
	GetCatalog(ctx context.Context) (*Catalog, error)
}

type catalogService struct {
	db            *gorm.DB
	log           *logger.Logger
	cache         redisclient.Cache
	dimensionRepo repos.DimensionRepo
	questionRepo  repos.AssessmentQuestionRepo
}

// NewCatalogService serves the immutable question catalog, read through an
// optional Redis cache. cache may be nil; reads then always hit Postgres.
func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	cache redisclient.Cache,
	dimensionRepo repos.DimensionRepo,
	questionRepo repos.AssessmentQuestionRepo,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:            db,
		log:           serviceLog,
		cache:         cache,
		dimensionRepo: dimensionRepo,
		questionRepo:  questionRepo,
	}
}

func (cs *catalogService) GetCatalog(ctx context.Context) (*Catalog, error) {
	if cs.cache != nil {
		var cached Catalog
		hit, err := cs.cache.GetJSON(ctx, catalogCacheKey, &cached)
		if err != nil {
			cs.log.Warn("Catalog cache read failed, falling back to postgres", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	dimensions, err := cs.dimensionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to load dimensions: %w", err)
	}
	questions, err := cs.questionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to load catalog questions: %w", err)
	}
	catalog := &Catalog{Dimensions: dimensions, Questions: questions}

	if cs.cache != nil {
		if err := cs.cache.SetJSON(ctx, catalogCacheKey, catalog, catalogCacheTTL); err != nil {
			cs.log.Warn("Catalog cache write failed", "error", err)
		}
	}
	return catalog, nil
}
