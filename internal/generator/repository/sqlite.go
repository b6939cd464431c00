package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ============================================================
// SQLite Repository
// ============================================================

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when no record matches the id.
var ErrNotFound = errors.New("not found")

// Record is a stored door model.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	SDF       string `json:"sdf,omitempty"`
	CreatedAt string `json:"created_at"`
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет встроенные миграции.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Save stores a generated model and returns the new record.
func (r *Repository) Save(ctx context.Context, name, kind string, sdf []byte) (*Record, error) {
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO door_models (id, name, kind, sdf)
        VALUES (?, ?, ?, ?)
    `, id, name, kind, string(sdf))
	if err != nil {
		return nil, fmt.Errorf("insert model: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *Repository) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, kind, sdf, created_at
        FROM door_models
        WHERE id = ?
    `, id)

	var rec Record
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.SDF, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List возвращает записи без тела SDF, новые первыми.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, kind, created_at
        FROM door_models
        ORDER BY created_at DESC, rowid DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Kind, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, entry := range entries {
		data, err := migrations.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
