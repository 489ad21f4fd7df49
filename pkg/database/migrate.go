package database

import (
	"sync"

	"gorm.io/gorm"
)

var (
	modelsMu         sync.Mutex
	registeredModels []any
)

// RegisterModels records models for AutoMigrate.
func RegisterModels(models ...any) {
	modelsMu.Lock()
	defer modelsMu.Unlock()
	registeredModels = append(registeredModels, models...)
}

func AutoMigrate(db *gorm.DB) error {
	modelsMu.Lock()
	models := append([]any(nil), registeredModels...)
	modelsMu.Unlock()
	return db.AutoMigrate(models...)
}
