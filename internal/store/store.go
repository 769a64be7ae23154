// internal/store/store.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopkart/backend/internal/models"
)

// Store is durable key-value persistence of whole serialized blobs, one per
// storage key. Reads happen on every query, writes on every mutation; there is
// no partial update and no merge, last write wins.
type Store interface {
	Load(key string, out interface{}) error
	Save(key string, value interface{}) error
	Delete(key string) error
}

// GormStore keeps blobs in a storage_records table. It is constructed by the
// application entry point and passed into the services that need it, never
// reached through a package-level singleton.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load unmarshals the blob under key into out. A missing key leaves out
// untouched and returns nil, mirroring an empty local storage slot.
func (s *GormStore) Load(key string, out interface{}) error {
	var record models.StorageRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load %q: %w", key, err)
	}

	if err := json.Unmarshal(record.Data, out); err != nil {
		return fmt.Errorf("corrupt blob under %q: %w", key, err)
	}
	return nil
}

// Save serializes value and overwrites the blob under key.
func (s *GormStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize blob for %q: %w", key, err)
	}

	record := models.StorageRecord{Key: key, Data: data}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(key string) error {
	if err := s.db.Delete(&models.StorageRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
