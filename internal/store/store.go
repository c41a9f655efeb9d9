package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultTable is the table used when the config does not name one
const DefaultTable = "_namecraft_store"

// Entry is one key/value row in the store table
type Entry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the default table name for entries
func (Entry) TableName() string {
	return DefaultTable
}

// Store is a local key/value store backed by a single gorm table. Values
// are opaque text.
type Store struct {
	db    *gorm.DB
	table string
}

// NewStore creates a new store
func NewStore(db *gorm.DB, tableName string) *Store {
	if tableName == "" {
		tableName = DefaultTable
	}
	return &Store{
		db:    db,
		table: tableName,
	}
}

// Initialize creates the store table
func (s *Store) Initialize() error {
	if err := s.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key VARCHAR(255) PRIMARY KEY,
			value TEXT,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, s.table)).Error; err != nil {
		return fmt.Errorf("failed to create store table: %w", err)
	}
	return nil
}

// Get returns the value stored under key. ok is false when the key is
// absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	var entry Entry
	if err := s.db.Table(s.table).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Put writes the whole value for key, replacing any previous value
func (s *Store) Put(key, value string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Table(s.table).Where("key = ?", key).
			Updates(map[string]interface{}{"value": value, "updated_at": time.Now()})
		if res.Error != nil {
			return fmt.Errorf("failed to write key %s: %w", key, res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
		if err := tx.Table(s.table).Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to write key %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Table(s.table).Where("key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Keys returns every stored key in ascending order
func (s *Store) Keys() ([]string, error) {
	var entries []Entry
	if err := s.db.Table(s.table).Order("key ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys, nil
}
