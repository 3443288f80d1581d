package capture

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/sha3"
)

// ErrNotFound is returned when no call has the requested sequence number.
var ErrNotFound = errors.New("capture: entry not found")

// Digest identifies a dump body by its SHA3-256 hash.
type Digest [32]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Record is one serialized call ready to be stored.
type Record struct {
	Name       string
	Body       []byte
	RecordedAt time.Time
}

// Entry is a stored call joined with its dump body.
type Entry struct {
	Seq        int64
	Name       string
	Digest     Digest
	Body       []byte
	RecordedAt time.Time
}

type Stats struct {
	Calls     int64
	Dumps     int64
	BodyBytes int64
	ByName    map[string]int64
}

// Store persists dumped calls in a sqlite database. Identical dump bodies
// are kept once and shared between calls.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS dumps (
	digest BLOB PRIMARY KEY,
	body   TEXT NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS calls (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	digest      BLOB NOT NULL REFERENCES dumps(digest),
	recorded_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS calls_name ON calls(name);
`

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection also keeps :memory: databases alive.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("capture: failed to execute %s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("capture: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores one record and returns its sequence number.
func (s *Store) Append(ctx context.Context, r Record) (int64, error) {
	seqs, err := s.AppendBatch(ctx, []Record{r})
	if err != nil {
		return 0, err
	}
	return seqs[0], nil
}

// AppendBatch stores records in order inside a single transaction. Either
// all of them are stored or none are.
func (s *Store) AppendBatch(ctx context.Context, records []Record) ([]int64, error) {
	if len(records) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("capture: begin: %w", err)
	}
	defer tx.Rollback()

	insertDump, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dumps (digest, body) VALUES (?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("capture: prepare: %w", err)
	}
	defer insertDump.Close()

	insertCall, err := tx.PrepareContext(ctx, `INSERT INTO calls (name, digest, recorded_at) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("capture: prepare: %w", err)
	}
	defer insertCall.Close()

	seqs := make([]int64, len(records))
	for i, r := range records {
		digest := Digest(sha3.Sum256(r.Body))
		if _, err := insertDump.ExecContext(ctx, digest[:], string(r.Body)); err != nil {
			return nil, fmt.Errorf("capture: store dump for %s: %w", r.Name, err)
		}
		at := r.RecordedAt
		if at.IsZero() {
			at = time.Now()
		}
		res, err := insertCall.ExecContext(ctx, r.Name, digest[:], at.UnixNano())
		if err != nil {
			return nil, fmt.Errorf("capture: store call %s: %w", r.Name, err)
		}
		if seqs[i], err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("capture: store call %s: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("capture: commit: %w", err)
	}
	return seqs, nil
}

const selectEntries = `
SELECT c.seq, c.name, c.digest, d.body, c.recorded_at
FROM calls c JOIN dumps d ON d.digest = c.digest`

// Entries returns every stored call in sequence order.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectEntries+` ORDER BY c.seq`)
	if err != nil {
		return nil, fmt.Errorf("capture: query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("capture: iterate entries: %w", err)
	}
	return entries, nil
}

func (s *Store) Entry(ctx context.Context, seq int64) (Entry, error) {
	row := s.db.QueryRowContext(ctx, selectEntries+` WHERE c.seq = ?`, seq)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: seq %d", ErrNotFound, seq)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e      Entry
		digest []byte
		body   string
		at     int64
	)
	if err := row.Scan(&e.Seq, &e.Name, &digest, &body, &at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("capture: scan entry: %w", err)
	}
	copy(e.Digest[:], digest)
	e.Body = []byte(body)
	e.RecordedAt = time.Unix(0, at)
	return e, nil
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByName: make(map[string]int64)}
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calls`).Scan(&st.Calls)
	if err != nil {
		return Stats{}, fmt.Errorf("capture: count calls: %w", err)
	}
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(LENGTH(body)), 0) FROM dumps`).Scan(&st.Dumps, &st.BodyBytes)
	if err != nil {
		return Stats{}, fmt.Errorf("capture: count dumps: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, COUNT(*) FROM calls GROUP BY name`)
	if err != nil {
		return Stats{}, fmt.Errorf("capture: group calls: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			return Stats{}, fmt.Errorf("capture: scan stats: %w", err)
		}
		st.ByName[name] = n
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("capture: iterate stats: %w", err)
	}
	return st, nil
}
