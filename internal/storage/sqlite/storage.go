package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/storage"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens the database, creating it if needed, and applies migrations
func New(cfg Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// One writer at a time; avoids SQLITE_BUSY under concurrent locks
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// migrate applies embedded migrations in lexical order, recording each in _migrations
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}

		script, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(script)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations (name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, name string) ([]string, error) {
	var found string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM dictionaries WHERE name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDictionaryNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM dictionary_words WHERE name = ? ORDER BY word`, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, name string, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_words WHERE name = ?`, name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO dictionaries (name) VALUES (?)`, name); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary_words (name, word) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, word := range words {
		if _, err := stmt.ExecContext(ctx, name, word); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Turn log operations

func (s *Storage) AppendTurnRecord(ctx context.Context, record *model.TurnRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO turn_records (game_id, turn, data, locked_at) VALUES (?, ?, ?, ?)`,
		string(record.GameID), record.Turn, string(data), record.LockedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Storage) GetTurnRecords(ctx context.Context, gameID model.GameID) ([]*model.TurnRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM turn_records WHERE game_id = ? ORDER BY id`, string(gameID))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records := []*model.TurnRecord{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var record model.TurnRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

func (s *Storage) DeleteTurnRecords(ctx context.Context, gameID model.GameID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM turn_records WHERE game_id = ?`, string(gameID))
	return err
}
