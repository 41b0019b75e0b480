package sqlstore

import (
	"context"
	"fmt"

	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/domain"
	"github.com/dom/champion-rotations/internal/repository"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DialectorFunc builds a fresh gorm dialector for every connection.
type DialectorFunc func() gorm.Dialector

// Connector hands out one short-lived connection per logical read. Nothing
// is pooled between calls.
type Connector struct {
	dialect DialectorFunc
	logger  logger.Interface
}

func NewConnector(cfg *config.Config) *Connector {
	dsn := cfg.DSN()

	dialect := func() gorm.Dialector { return mysql.Open(dsn) }
	if cfg.DBDriver == config.DriverPostgres {
		dialect = func() gorm.Dialector { return postgres.Open(dsn) }
	}

	level := logger.Warn
	if cfg.Environment == "development" {
		level = logger.Info
	}

	return NewConnectorWithDialector(dialect, logger.Default.LogMode(level))
}

func NewConnectorWithDialector(dialect DialectorFunc, gormLogger logger.Interface) *Connector {
	return &Connector{dialect: dialect, logger: gormLogger}
}

// WithConnection opens a connection, runs fn with it and closes it on every
// exit path. Open and ping failures are reported as domain.ErrConnection.
func (c *Connector) WithConnection(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(c.dialect(), &gorm.Config{Logger: c.logger})
	if db != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			defer sqlDB.Close()
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	return fn(db.WithContext(ctx))
}

// Migrate creates the rotation tables. Production schemas are owned by the
// ingestion job; this exists for local setups and tests.
func (c *Connector) Migrate(ctx context.Context) error {
	return c.WithConnection(ctx, Migrate)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Champion{},
		&domain.ChampionRotation{},
		&domain.RotationChampion{},
	)
}

func NewRepositories(connector *Connector) *repository.Repositories {
	return &repository.Repositories{
		Rotation: NewRotationRepository(connector),
	}
}
