package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one key/value row in the SQL backends.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (Record) TableName() string {
	return "kv_records"
}

// sqlStore backs the KV contract with a single key/value table through GORM,
// SQLite for development and PostgreSQL for server deployments.
type sqlStore struct {
	db *gorm.DB
}

// OpenSQL opens a SQL-backed store of the given type ("sqlite" or "postgres").
func OpenSQL(dbType string, dsn string) (KV, error) {
	var (
		db  *gorm.DB
		err error
	)

	if dbType == "postgres" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		// Default to SQLite
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	// Connection pool settings (conservative for SQLite)
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dbType == "sqlite" {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	return &sqlStore{db: db}, nil
}

func (s *sqlStore) Get(key string) ([]byte, error) {
	var rec Record
	result := s.db.Where("key = ?", key).First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, result.Error
	}
	return rec.Value, nil
}

func (s *sqlStore) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *sqlStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&Record{}).Error
}

func (s *sqlStore) Keys(prefix string) ([]string, error) {
	var keys []string
	result := s.db.Model(&Record{}).
		Where("key LIKE ?", prefix+"%").
		Pluck("key", &keys)
	if result.Error != nil {
		return nil, result.Error
	}
	return keys, nil
}

func (s *sqlStore) Apply(batch Batch) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range batch.Set {
			rec := Record{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}
		for _, key := range batch.Delete {
			if err := tx.Where("key = ?", key).Delete(&Record{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
