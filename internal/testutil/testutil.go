package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dom/champion-rotations/internal/api"
	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/repository"
	"github.com/dom/champion-rotations/internal/repository/sqlstore"
	"github.com/dom/champion-rotations/internal/service"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a file-backed SQLite database. DB is a long-lived handle
// for seeding; Connector opens its own connections the way production does.
type TestDB struct {
	DB        *gorm.DB
	Connector *sqlstore.Connector
	Path      string
}

// NewTestDB creates a fresh database with the rotation schema
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rotations.db")
	connector := NewSQLiteConnector(path)

	if err := connector.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	testDB := &TestDB{
		DB:        db,
		Connector: connector,
		Path:      path,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// NewSQLiteConnector returns a Connector that opens the SQLite file at path
func NewSQLiteConnector(path string) *sqlstore.Connector {
	return sqlstore.NewConnectorWithDialector(
		func() gorm.Dialector { return sqlite.Open(path) },
		logger.Default.LogMode(logger.Silent),
	)
}

// UnreachableConnector returns a Connector whose every open fails
func UnreachableConnector(t *testing.T) *sqlstore.Connector {
	t.Helper()
	return NewSQLiteConnector(filepath.Join(t.TempDir(), "missing", "dir", "rotations.db"))
}

// Cleanup closes the seeding handle
func (tdb *TestDB) Cleanup() {
	if tdb.DB == nil {
		return
	}
	if sqlDB, err := tdb.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"rotation_champions",
		"champion_rotations",
		"champions",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:              "0", // Random port
		Environment:       "test",
		DBDriver:          config.DriverMySQL,
		DBHost:            "localhost",
		DBPort:            "3306",
		DBUser:            "test",
		DBPassword:        "test",
		DBName:            "homewatch",
		DataDragonBaseURL: "https://ddragon.leagueoflegends.com/cdn",
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewTestServer creates a complete test server backed by a fresh database
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	ts := NewTestServerWithConnector(t, testDB.Connector)
	ts.DB = testDB
	return ts
}

// NewTestServerWithConnector creates a test server reading through connector
func NewTestServerWithConnector(t *testing.T, connector *sqlstore.Connector) *TestServer {
	t.Helper()

	cfg := TestConfig()
	log := zap.NewNop()

	repos := sqlstore.NewRepositories(connector)
	services := service.NewServices(repos, cfg, log)
	router := api.NewRouter(services, log)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// URL returns the full URL for a page path
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}
