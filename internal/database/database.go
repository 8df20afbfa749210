package database

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bdelucia/blog/internal/config"
)

var (
	globalDB *gorm.DB
	dbMutex  sync.RWMutex
)

// GetDB returns the current database connection
func GetDB() *gorm.DB {
	dbMutex.RLock()
	defer dbMutex.RUnlock()
	return globalDB
}

// SetDB sets the global database connection
func SetDB(db *gorm.DB) {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	globalDB = db
}

// IsConnected returns true if the database is reachable
func IsConnected() bool {
	db := GetDB()
	if db == nil {
		return false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// New opens a PostgreSQL connection, configures the pool and runs migrations
func New(cfg config.DatabaseConfig, env string) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	logLevel := logger.Silent
	if env == "dev" {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	SetDB(db)
	return db, nil
}

// NewAsync retries the connection in the background so a slow database
// does not block startup.
func NewAsync(cfg config.DatabaseConfig, env string, retryInterval time.Duration) {
	go func() {
		for {
			if IsConnected() {
				return
			}
			if _, err := New(cfg, env); err != nil {
				log.Printf("failed to connect to database, retrying in %v: %v", retryInterval, err)
				time.Sleep(retryInterval)
				continue
			}
			log.Println("database connected (async)")
			return
		}
	}()
}
