package db

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

type seedLevel struct {
	Title     string `yaml:"title"`
	Narrative string `yaml:"narrative"`
}

type seedDimension struct {
	Key       string               `yaml:"key"`
	Name      string               `yaml:"name"`
	Questions []string             `yaml:"questions"`
	Levels    map[string]seedLevel `yaml:"levels"`
}

type catalogSeed struct {
	Dimensions []seedDimension `yaml:"dimensions"`
}

var seedLevelKeys = map[string]string{
	"low":      types.LevelLow,
	"moderate": types.LevelModerate,
	"high":     types.LevelHigh,
}

func (s *PostgresService) SeedCatalog(path string) error {
	return SeedCatalogFromFile(s.db, s.log, path)
}

// SeedCatalogFromFile loads the saboteur inventory reference data
// (dimensions, questions, level descriptions) from a YAML file and upserts
// it by natural key. Idempotent; safe to run on every boot. Every dimension
// must carry all three level narratives, otherwise the classifier could
// reach a (dimension, level) pair with no description row.
func SeedCatalogFromFile(db *gorm.DB, log *logger.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog seed: %w", err)
	}
	var seed catalogSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(seed.Dimensions) == 0 {
		return fmt.Errorf("catalog seed has no dimensions")
	}
	for _, dim := range seed.Dimensions {
		for key := range seedLevelKeys {
			if _, ok := dim.Levels[key]; !ok {
				return fmt.Errorf("catalog seed: dimension %q is missing level %q", dim.Key, key)
			}
		}
	}

	log.Info("Seeding assessment catalog...", "path", path, "dimensions", len(seed.Dimensions))
	questionPosition := 0
	return db.Transaction(func(tx *gorm.DB) error {
		for i, dim := range seed.Dimensions {
			dimension := &types.Dimension{
				ID:       uuid.New(),
				Key:      dim.Key,
				Name:     dim.Name,
				Position: i,
			}
			if err := tx.Where("key = ?", dim.Key).
				Assign(map[string]interface{}{"name": dim.Name, "position": i}).
				FirstOrCreate(dimension).Error; err != nil {
				return fmt.Errorf("upsert dimension %q: %w", dim.Key, err)
			}

			for _, prompt := range dim.Questions {
				question := &types.AssessmentQuestion{
					ID:          uuid.New(),
					DimensionID: dimension.ID,
					Prompt:      prompt,
					Position:    questionPosition,
				}
				if err := tx.Where("dimension_id = ? AND position = ?", dimension.ID, questionPosition).
					Assign(map[string]interface{}{"prompt": prompt}).
					FirstOrCreate(question).Error; err != nil {
					return fmt.Errorf("upsert question %d of dimension %q: %w", questionPosition, dim.Key, err)
				}
				questionPosition++
			}

			for key, label := range seedLevelKeys {
				lvl := dim.Levels[key]
				description := &types.LevelDescription{
					ID:          uuid.New(),
					DimensionID: dimension.ID,
					Level:       label,
					Title:       lvl.Title,
					Narrative:   lvl.Narrative,
				}
				if err := tx.Where("dimension_id = ? AND level = ?", dimension.ID, label).
					Assign(map[string]interface{}{"title": lvl.Title, "narrative": lvl.Narrative}).
					FirstOrCreate(description).Error; err != nil {
					return fmt.Errorf("upsert level description %s/%s: %w", dim.Key, label, err)
				}
			}
		}
		return nil
	})
}
