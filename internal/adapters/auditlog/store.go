// Package auditlog records pipeline outcomes in a local SQLite database and fans them out to remote sinks.
package auditlog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // SQLite driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the local execution log. It implements ports.ExecutionLog and ports.ExecutionHistory.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "create execution log directory"), "path", path)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "open execution log"), "path", path)
	}
	// One connection keeps writers from tripping over SQLITE_BUSY and keeps
	// an in-memory database alive for the life of the store.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode = WAL"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, "configure execution log"), "pragma", pragma)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one entry.
func (s *Store) Append(ctx context.Context, entry domain.ExecutionLogEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO executions (run_id, recorded_at, project_id, project_name, status, message, document_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), ts.UTC().Format(time.RFC3339Nano), entry.ProjectID, entry.ProjectName,
		string(entry.Status), entry.Message, entry.DocumentURL,
	)
	if err != nil {
		return errors.Join(domain.ErrExecutionLogFailed, zerr.With(err, "project_id", entry.ProjectID))
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.ExecutionLogEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT recorded_at, project_id, project_name, status, message, document_url
		 FROM executions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, zerr.Wrap(err, "query execution log")
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.ExecutionLogEntry
	for rows.Next() {
		var (
			recorded string
			status   string
			entry    domain.ExecutionLogEntry
		)
		if err := rows.Scan(&recorded, &entry.ProjectID, &entry.ProjectName, &status,
			&entry.Message, &entry.DocumentURL); err != nil {
			return nil, zerr.Wrap(err, "scan execution log row")
		}
		entry.Status = domain.RunStatus(status)
		if ts, err := time.Parse(time.RFC3339Nano, recorded); err == nil {
			entry.Timestamp = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, "read execution log")
	}
	return entries, nil
}

// migrate applies embedded migrations in file name order, each in its own transaction.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return zerr.Wrap(err, "create schema_version table")
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return zerr.Wrap(err, "read migrations")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		version, err := migrationVersion(name)
		if err != nil {
			return err
		}
		if err := s.apply(version, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) apply(version int, name string) error {
	var applied int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&applied); err != nil {
		return zerr.With(zerr.Wrap(err, "check migration"), "migration", name)
	}
	if applied > 0 {
		return nil
	}

	content, err := migrationsFS.ReadFile("migrations/" + name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "read migration"), "migration", name)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "begin migration"), "migration", name)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		_ = tx.Rollback()
		return zerr.With(zerr.Wrap(err, "apply migration"), "migration", name)
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return zerr.With(zerr.Wrap(err, "record migration"), "migration", name)
	}
	return zerr.Wrap(tx.Commit(), "commit migration")
}

func migrationVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, zerr.With(zerr.New("migration name has no version prefix"), "migration", name)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "parse migration version"), "migration", name)
	}
	return v, nil
}
