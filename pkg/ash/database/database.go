package database

import (
	"fmt"
	"time"

	"github.com/ashub/ash/pkg/ash/models"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Options describes how to reach the store
type Options struct {
	Driver       string
	Path         string // SQLite file (or ":memory:")
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	LogSQL       bool
}

// DSN returns the driver-specific data source name
func (o Options) DSN() string {
	if o.Driver == DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=10s",
			o.User, o.Password, o.Host, o.Port, o.Name)
	}
	return o.Path
}

// Connect opens the connection pool.
// Duplicate-key and check-constraint failures are translated into gorm's sentinel
// errors so callers can rely on the storage layer for uniqueness.
// SQLite is limited to a single connection: writers serialize on it and
// ":memory:" databases stay shared across the pool.
func Connect(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(opts.DSN())
	case DriverMySQL:
		dialector = mysql.Open(opts.DSN())
	default:
		return nil, errors.Errorf("unsupported database driver %q", opts.Driver)
	}

	cfg := &gorm.Config{TranslateError: true}
	if !opts.LogSQL {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "database handle")
	}
	switch {
	case opts.Driver == DriverMySQL && opts.MaxOpenConns > 0:
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	case opts.Driver != DriverMySQL:
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	return errors.Wrap(models.AutoMigrate(db), "auto-migrate")
}

// Ping checks the store is reachable
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// OpenTest returns a migrated in-memory SQLite database for tests
func OpenTest() (*gorm.DB, error) {
	db, err := Connect(Options{Driver: DriverSQLite, Path: ":memory:"})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
