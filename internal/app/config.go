package app

import (
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	CatalogSeedPath string
	Environment     string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	catalogSeedPath := utils.GetEnv("CATALOG_SEED_PATH", "catalog.yaml", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	return Config{
		JWTSecretKey:    jwtSecretKey,
		CatalogSeedPath: catalogSeedPath,
		Environment:     environment,
	}
}
