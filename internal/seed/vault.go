package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// migrations is an ordered list of SQL statements applied on startup.
// Each entry is idempotent (IF NOT EXISTS) so re-running is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS seeds (
		id          TEXT PRIMARY KEY,
		material    BLOB NOT NULL,
		label       TEXT NOT NULL DEFAULT '',
		imported_at TEXT NOT NULL
	)`,
}

// Record describes a stored seed without exposing its material.
type Record struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Label      string    `json:"label"`
	ImportedAt time.Time `json:"imported_at"`
}

// Vault stores seed material in a SQLite database and serves it as a
// Source. Only seeds live here; device credentials are never persisted.
type Vault struct {
	db *sql.DB
}

// OpenVault opens (or creates) a vault database at path and runs migrations.
func OpenVault(path string) (*Vault, error) {
	dsn := fmt.Sprintf("%s?_journal=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite handles one writer at a time.

	v := &Vault{db: db}
	if err := v.migrate(); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return v, nil
}

func (v *Vault) migrate() error {
	for _, stmt := range migrations {
		if _, err := v.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
	}
	return nil
}

// Close releases database resources.
func (v *Vault) Close() error { return v.db.Close() }

// Put stores seed material under id, replacing any previous material.
func (v *Vault) Put(ctx context.Context, id string, material []byte, label string) error {
	if len(material) == 0 {
		return fmt.Errorf("%w: empty material", ErrInvalidSeed)
	}
	_, err := v.db.ExecContext(ctx,
		`INSERT INTO seeds (id, material, label, imported_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET material = excluded.material, label = excluded.label,
		 imported_at = excluded.imported_at`,
		id, material, label, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store seed %s: %w", id, err)
	}
	return nil
}

// Load implements Source.
func (v *Vault) Load(id string) ([]byte, error) {
	var material []byte
	err := v.db.QueryRowContext(context.Background(),
		`SELECT material FROM seeds WHERE id = ?`, id).Scan(&material)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", id, err)
	}
	return material, nil
}

// List returns metadata for all stored seeds, newest first.
func (v *Vault) List(ctx context.Context) ([]*Record, error) {
	rows, err := v.db.QueryContext(ctx,
		`SELECT id, length(material), label, imported_at FROM seeds ORDER BY imported_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var records []*Record
	for rows.Next() {
		var r Record
		var importedAt string
		if err := rows.Scan(&r.ID, &r.Size, &r.Label, &importedAt); err != nil {
			return nil, err
		}
		r.ImportedAt, _ = time.Parse(time.RFC3339, importedAt)
		records = append(records, &r)
	}
	return records, rows.Err()
}

// Delete removes a stored seed.
func (v *Vault) Delete(ctx context.Context, id string) error {
	_, err := v.db.ExecContext(ctx, `DELETE FROM seeds WHERE id = ?`, id)
	return err
}
