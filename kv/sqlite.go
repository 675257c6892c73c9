package kv

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// blob is the single-table schema backing the SQLite store.
type blob struct {
	Key  string `gorm:"primaryKey"`
	Data []byte
}

func (blob) TableName() string { return "blobs" }

// SQLite keeps every collection in one database file. Handy when the ledger
// should travel as a single artifact.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the database file and migrates the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store %q: %w", path, err)
	}
	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("migrating sqlite store %q: %w", path, err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(key string) ([]byte, bool, error) {
	var b blob
	err := s.db.First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading %q: %w", key, err)
	}
	return b.Data, true, nil
}

func (s *SQLite) Save(key string, data []byte) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&blob{Key: key, Data: data}).Error
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}
