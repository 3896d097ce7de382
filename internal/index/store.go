// Package index keeps a SQLite catalog of the instruments in a sample
// library: one row per .sfz file with its summary, plus the sample files
// each instrument plays so they can be searched.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"sfzkit/internal/driver"
)

// ErrNotFound is returned by Get for an unknown instrument ID.
var ErrNotFound = errors.New("instrument not found")

// instrumentSpace namespaces instrument IDs so the same relative path maps
// to the same ID in every index.
var instrumentSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://sfzformat.com/sfzkit/instrument"))

// InstrumentID derives the stable ID of an instrument from its path
// relative to the library root.
func InstrumentID(rel string) string {
	return uuid.NewSHA1(instrumentSpace, []byte(filepath.ToSlash(rel))).String()
}

// Instrument is one indexed .sfz file.
type Instrument struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Regions   int       `json:"regions"`
	Groups    int       `json:"groups"`
	Masters   int       `json:"masters"`
	Dialect   string    `json:"dialect,omitempty"`
	LoKey     int       `json:"lokey"`
	HiKey     int       `json:"hikey"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
	Failed    bool      `json:"failed"`
	Labels    []string  `json:"labels,omitempty"`
	Samples   []string  `json:"samples,omitempty"`
	IndexedAt time.Time `json:"indexed_at"`
}

// FromSummary builds the row for the instrument at rel.
func FromSummary(rel string, s driver.Summary) *Instrument {
	rel = filepath.ToSlash(rel)
	return &Instrument{
		ID:       InstrumentID(rel),
		Path:     rel,
		Regions:  s.Regions,
		Groups:   s.Groups,
		Masters:  s.Masters,
		Dialect:  s.Dialect,
		LoKey:    s.LoKey,
		HiKey:    s.HiKey,
		Errors:   s.Errors,
		Warnings: s.Warnings,
		Failed:   s.Failed,
		Labels:   s.Labels,
		Samples:  s.Samples,
	}
}

// Stats summarises the whole index.
type Stats struct {
	Instruments int `json:"instruments"`
	Failed      int `json:"failed"`
	Regions     int `json:"regions"`
	Samples     int `json:"samples"`
}

// Store is a SQLite-backed instrument index.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (or creates) the index database at path. ":memory:" opens a
// private in-memory database.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// одно соединение: in-memory база живёт, пока живо соединение
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS instruments (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL UNIQUE,
		regions INTEGER NOT NULL DEFAULT 0,
		groups_count INTEGER NOT NULL DEFAULT 0,
		masters INTEGER NOT NULL DEFAULT 0,
		dialect TEXT NOT NULL DEFAULT '',
		lokey INTEGER NOT NULL DEFAULT -1,
		hikey INTEGER NOT NULL DEFAULT -1,
		errors INTEGER NOT NULL DEFAULT 0,
		warnings INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		labels TEXT,
		indexed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS samples (
		instrument_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		path TEXT NOT NULL,
		PRIMARY KEY (instrument_id, position),
		FOREIGN KEY (instrument_id) REFERENCES instruments(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_samples_path ON samples(path);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.migrate()
}

// migrate adds columns that indexes written by older versions lack.
func (s *Store) migrate() error {
	rows, err := s.db.Query(`PRAGMA table_info(instruments)`)
	if err != nil {
		return err
	}
	have := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			def     sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &def, &pk); err != nil {
			rows.Close()
			return err
		}
		have[name] = true
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if !have["dialect"] {
		if _, err := s.db.Exec(`ALTER TABLE instruments ADD COLUMN dialect TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add dialect column: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert stores inst, replacing any earlier row with the same ID.
func (s *Store) Upsert(ctx context.Context, inst *Instrument) error {
	if inst.ID == "" {
		return fmt.Errorf("instrument ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst.IndexedAt.IsZero() {
		inst.IndexedAt = time.Now().UTC()
	}
	labels, err := json.Marshal(inst.Labels)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO instruments (id, path, regions, groups_count, masters, dialect, lokey, hikey, errors, warnings, failed, labels, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			path = excluded.path,
			regions = excluded.regions,
			groups_count = excluded.groups_count,
			masters = excluded.masters,
			dialect = excluded.dialect,
			lokey = excluded.lokey,
			hikey = excluded.hikey,
			errors = excluded.errors,
			warnings = excluded.warnings,
			failed = excluded.failed,
			labels = excluded.labels,
			indexed_at = excluded.indexed_at
	`, inst.ID, inst.Path, inst.Regions, inst.Groups, inst.Masters, inst.Dialect, inst.LoKey, inst.HiKey,
		inst.Errors, inst.Warnings, inst.Failed, string(labels), inst.IndexedAt)
	if err != nil {
		return fmt.Errorf("failed to store instrument %s: %w", inst.Path, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE instrument_id = ?`, inst.ID); err != nil {
		return err
	}
	for i, p := range inst.Samples {
		if _, err := tx.ExecContext(ctx, `INSERT INTO samples (instrument_id, position, path) VALUES (?, ?, ?)`, inst.ID, i, p); err != nil {
			return fmt.Errorf("failed to store sample %s: %w", p, err)
		}
	}
	return tx.Commit()
}

const selectInstrument = `
	SELECT id, path, regions, groups_count, masters, dialect, lokey, hikey, errors, warnings, failed, labels, indexed_at
	FROM instruments`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstrument(row rowScanner) (*Instrument, error) {
	var (
		inst   Instrument
		labels sql.NullString
	)
	err := row.Scan(&inst.ID, &inst.Path, &inst.Regions, &inst.Groups, &inst.Masters, &inst.Dialect,
		&inst.LoKey, &inst.HiKey, &inst.Errors, &inst.Warnings, &inst.Failed, &labels, &inst.IndexedAt)
	if err != nil {
		return nil, err
	}
	if labels.Valid && labels.String != "" {
		if err := json.Unmarshal([]byte(labels.String), &inst.Labels); err != nil {
			return nil, fmt.Errorf("instrument %s: bad labels: %w", inst.Path, err)
		}
	}
	return &inst, nil
}

// Get returns the instrument with the given ID, samples included.
func (s *Store) Get(ctx context.Context, id string) (*Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, err := scanInstrument(s.db.QueryRowContext(ctx, selectInstrument+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inst.Samples, err = s.samples(ctx, id)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *Store) samples(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM samples WHERE instrument_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns every instrument ordered by path. Samples are not loaded.
func (s *Store) List(ctx context.Context) ([]*Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query(ctx, selectInstrument+` ORDER BY path`)
}

// FindBySample returns instruments playing a sample whose path contains
// fragment, compared case-insensitively.
func (s *Store) FindBySample(ctx context.Context, fragment string) ([]*Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	return s.query(ctx, selectInstrument+`
		WHERE id IN (SELECT instrument_id FROM samples WHERE lower(path) LIKE ? ESCAPE '\')
		ORDER BY path`, pattern)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]*Instrument, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Instrument
	for rows.Next() {
		inst, err := scanInstrument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

// Prune deletes instruments whose ID is not in keep and returns how many
// rows went away.
func (s *Store) Prune(ctx context.Context, keep []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TEMP TABLE IF NOT EXISTS keep_ids (id TEXT PRIMARY KEY)`); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM keep_ids`); err != nil {
		return 0, err
	}
	for _, id := range keep {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO keep_ids (id) VALUES (?)`, id); err != nil {
			return 0, err
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM instruments WHERE id NOT IN (SELECT id FROM keep_ids)`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), tx.Commit()
}

// Statistics counts instruments, regions and distinct samples.
func (s *Store) Statistics(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(failed), 0), COALESCE(SUM(regions), 0),
			(SELECT COUNT(DISTINCT path) FROM samples)
		FROM instruments`).Scan(&st.Instruments, &st.Failed, &st.Regions, &st.Samples)
	return st, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
