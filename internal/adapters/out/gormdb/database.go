package gormdb

import (
	"fmt"
	"time"

	"orderdesk/internal/adapters/out/gormdb/clientrepo"
	"orderdesk/internal/adapters/out/gormdb/draftrepo"
	"orderdesk/internal/adapters/out/gormdb/orderrepo"
	"orderdesk/internal/adapters/out/gormdb/productrepo"
	"orderdesk/internal/adapters/out/gormdb/sequencerepo"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options configures the database connection.
type Options struct {
	Driver string
	DSN    string
	Logger zerolog.Logger
}

// Open connects to the store and creates the collections.
//
// SQLite runs on a single connection: transactions are serialised by the pool,
// which keeps the order number counter consistent without row locks.
// PostgreSQL goes through lib/pq and relies on the counter's compare-and-swap.
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(opts.DSN)
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{DriverName: "postgres", DSN: opts.DSN})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(&opts.Logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	if opts.Driver != DriverPostgres {
		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return nil, sqlErr
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables of every collection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&draftrepo.DraftOrderDTO{},
		&sequencerepo.CounterDTO{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// InMemoryDSN returns a DSN for a private in-memory SQLite database. The
// database lives as long as one connection to it stays open.
func InMemoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}
