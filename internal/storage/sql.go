package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrations embed.FS

type dialect struct {
	name   string
	get    string
	upsert string
	remove string
}

var (
	sqliteDialect = dialect{
		name:   "sqlite",
		get:    `SELECT storage_value FROM local_storage WHERE storage_key = ?`,
		upsert: `INSERT INTO local_storage (storage_key, storage_value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (storage_key) DO UPDATE SET storage_value = excluded.storage_value, updated_at = excluded.updated_at`,
		remove: `DELETE FROM local_storage WHERE storage_key = ?`,
	}
	postgresDialect = dialect{
		name:   "postgres",
		get:    `SELECT storage_value FROM local_storage WHERE storage_key = $1`,
		upsert: `INSERT INTO local_storage (storage_key, storage_value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (storage_key) DO UPDATE SET storage_value = EXCLUDED.storage_value, updated_at = EXCLUDED.updated_at`,
		remove: `DELETE FROM local_storage WHERE storage_key = $1`,
	}
)

// SQLStorage keeps records in the local_storage table.
type SQLStorage struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQLite opens the database file at path (":memory:" for a throwaway
// one) and applies migrations.
func OpenSQLite(path string) (*SQLStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// an in-memory database exists per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	if err := runMigrations(driver, sqliteDialect.name); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStorage{db: db, dialect: sqliteDialect}, nil
}

// OpenPostgres connects with dsn and applies migrations.
func OpenPostgres(dsn string) (*SQLStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	if err := runMigrations(driver, postgresDialect.name); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStorage{db: db, dialect: postgresDialect}, nil
}

func runMigrations(driver database.Driver, name string) error {
	src, err := iofs.New(migrations, "migrations/"+name)
	if err != nil {
		return fmt.Errorf("could not read migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

func (s *SQLStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLStorage) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.remove, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
