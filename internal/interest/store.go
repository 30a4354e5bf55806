// Package interest persists the pets a user said yes to.
package interest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/five82/pawsmatch/internal/deck"
)

const (
	createTableStmt = `
CREATE TABLE IF NOT EXISTS interest (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    profile_id TEXT NOT NULL,
    name TEXT NOT NULL,
    breed TEXT,
    image_url TEXT NOT NULL,
    recorded_at TEXT NOT NULL
);`
	createIndexStmt = `CREATE INDEX IF NOT EXISTS idx_interest_profile ON interest(profile_id);`
	insertStmt      = `INSERT INTO interest(profile_id, name, breed, image_url, recorded_at) VALUES(?, ?, ?, ?, ?)`
	listStmt        = `SELECT id, profile_id, name, breed, image_url, recorded_at FROM interest ORDER BY id DESC LIMIT ?`
	countStmt       = `SELECT COUNT(*) FROM interest`

	memoryDSN = ":memory:"
)

// Record is one stored expression of interest.
type Record struct {
	ID         int64
	ProfileID  string
	Name       string
	Breed      string
	ImageURL   string
	RecordedAt time.Time
}

// Store writes interest records into SQLite.
type Store struct {
	db     *sql.DB
	insert *sql.Stmt
	now    func() time.Time
}

// Open initializes a Store at path. An empty path keeps records in memory for
// the life of the process.
func Open(path string) (*Store, error) {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		dsn = memoryDSN
	} else if dir := filepath.Dir(dsn); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create interest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open interest database: %w", err)
	}
	// One connection: an in-memory database lives and dies with it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure interest table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createIndexStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure interest index: %w", err)
	}
	stmt, err := db.PrepareContext(ctx, insertStmt)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert statement: %w", err)
	}
	return &Store{db: db, insert: stmt, now: time.Now}, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.insert != nil {
		err = errors.Join(err, s.insert.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}

// Record stores interest in profile and returns the stored row.
func (s *Store) Record(ctx context.Context, profile deck.Profile) (Record, error) {
	if strings.TrimSpace(profile.ID) == "" {
		return Record{}, errors.New("record interest: profile has no id")
	}
	rec := Record{
		ProfileID:  profile.ID,
		Name:       profile.Name,
		Breed:      profile.Breed,
		ImageURL:   profile.ImageURL,
		RecordedAt: s.now().UTC(),
	}
	res, err := s.insert.ExecContext(ctx,
		rec.ProfileID,
		rec.Name,
		rec.Breed,
		rec.ImageURL,
		rec.RecordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("record interest: %w", err)
	}
	if rec.ID, err = res.LastInsertId(); err != nil {
		return Record{}, fmt.Errorf("record interest: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, listStmt, limit)
	if err != nil {
		return nil, fmt.Errorf("list interest: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec      Record
			breed    sql.NullString
			recorded string
		)
		if err := rows.Scan(&rec.ID, &rec.ProfileID, &rec.Name, &breed, &rec.ImageURL, &recorded); err != nil {
			return nil, fmt.Errorf("scan interest: %w", err)
		}
		rec.Breed = breed.String
		if rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recorded); err != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", recorded, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interest: %w", err)
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, countStmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interest: %w", err)
	}
	return n, nil
}
