// Package sqlite persists the inflected-form index in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cours-de-latin/paradigm"
	"github.com/cours-de-latin/paradigm/index"
)

//go:embed migrations/*.sql
var migrations embed.FS

// migrationTable is the goose version table.
const migrationTable = "schema_migrations"

// goose configures itself through package state.
var gooseMu sync.Mutex

// Store is an index.Sink backed by SQLite. Only the rows of the latest
// run are kept; earlier runs remain as bookkeeping in index_runs.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

var _ index.Sink = (*Store)(nil)

// Open opens (creating if needed) the database at path and brings its
// schema up to date.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path, logger: logger}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(gooseLogger{s.logger.Sugar()})
	goose.SetBaseFS(migrations)
	goose.SetTableName(migrationTable)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	return goose.UpContext(ctx, s.db, "migrations")
}

// gooseLogger routes goose output to zap. Fatalf does not exit: the error
// is returned from Open instead.
type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.log.Debugf(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.log.Errorf(format, v...) }

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Replace records the run and swaps in its rows, in one transaction.
func (s *Store) Replace(ctx context.Context, runID string, rows []index.InflectedForm) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM inflected_forms`); err != nil {
		return fmt.Errorf("clearing forms: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO index_runs (id, forms, created_at) VALUES (?, ?, ?)`,
		runID, len(rows), time.Now().UTC()); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO inflected_forms (run_id, surface, normalized, folded, entry_id, lemma, part_of_speech, form_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()
	for _, r := range rows {
		if _, err = stmt.ExecContext(ctx, runID, r.Surface, r.Normalized, paradigm.Fold(r.Normalized), r.EntryID, r.Lemma, r.PartOfSpeech, r.Key); err != nil {
			return fmt.Errorf("inserting form %q: %w", r.Surface, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	s.logger.Info("index stored", zap.String("run_id", runID), zap.Int("forms", len(rows)))
	return nil
}

// Lookup returns the rows whose surface form matches form, compared the
// way index.Table compares them.
func (s *Store) Lookup(ctx context.Context, form string) ([]index.InflectedForm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT surface, normalized, entry_id, lemma, part_of_speech, form_key
		FROM inflected_forms
		WHERE folded = ?
		ORDER BY id`, paradigm.Fold(form))
	if err != nil {
		return nil, fmt.Errorf("querying forms: %w", err)
	}
	defer rows.Close()

	out := []index.InflectedForm{}
	for rows.Next() {
		var r index.InflectedForm
		if err := rows.Scan(&r.Surface, &r.Normalized, &r.EntryID, &r.Lemma, &r.PartOfSpeech, &r.Key); err != nil {
			return nil, fmt.Errorf("scanning form: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Rows loads every stored row in insertion order, e.g. to fill an
// index.Table at startup.
func (s *Store) Rows(ctx context.Context) (string, []index.InflectedForm, error) {
	run, err := s.LatestRun(ctx)
	if err != nil {
		return "", nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT surface, normalized, entry_id, lemma, part_of_speech, form_key
		FROM inflected_forms
		ORDER BY id`)
	if err != nil {
		return "", nil, fmt.Errorf("querying forms: %w", err)
	}
	defer rows.Close()

	out := make([]index.InflectedForm, 0, run.Forms)
	for rows.Next() {
		var r index.InflectedForm
		if err := rows.Scan(&r.Surface, &r.Normalized, &r.EntryID, &r.Lemma, &r.PartOfSpeech, &r.Key); err != nil {
			return "", nil, fmt.Errorf("scanning form: %w", err)
		}
		out = append(out, r)
	}
	return run.ID, out, rows.Err()
}

// Run is a recorded index run.
type Run struct {
	ID        string    `json:"id"`
	Forms     int       `json:"forms"`
	CreatedAt time.Time `json:"created_at"`
}

// LatestRun returns the most recent run, or index.ErrNoRun.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, forms, created_at FROM index_runs
		ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(&r.ID, &r.Forms, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, index.ErrNoRun
	}
	if err != nil {
		return Run{}, fmt.Errorf("querying runs: %w", err)
	}
	return r, nil
}
