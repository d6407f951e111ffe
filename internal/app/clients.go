package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/growthbridge/growthbridge-backend/internal/clients/redis"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
)

type Clients struct {
	Cache redis.Cache
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis is optional; without REDIS_ADDR the catalog reads go straight
	// to Postgres.
	var cache redis.Cache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, err := redis.NewCache(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
		cache = c
	}

	return Clients{Cache: cache}, nil
}
