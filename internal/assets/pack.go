package assets

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tilequest/internal/level"
)

const (
	upsertLevel = `INSERT INTO levels (name, position, body)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM levels), ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`

	upsertDialog = `INSERT INTO dialogs (id, body) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`
)

// Pack is a content set stored in a single SQLite file. It holds level
// documents and the dialog blob; no game state is ever written to it.
type Pack struct {
	db *sql.DB
}

// PackEntry describes one stored level.
type PackEntry struct {
	Name      string
	Position  int
	Bytes     int
	UpdatedAt time.Time
}

// OpenPack creates or opens a content pack at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenPack(dbPath string) (*Pack, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("assets: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open pack: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("assets: cannot connect to pack: %w", err)
	}

	p := &Pack{db: db}
	if err := p.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("assets: migration failed: %w", err)
	}

	return p, nil
}

func (p *Pack) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_position ON levels(position);

		CREATE TABLE IF NOT EXISTS dialogs (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := p.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (p *Pack) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// PutLevel stores a level document under name, replacing any previous
// version. The document must parse. New names are appended to the pack order.
func (p *Pack) PutLevel(name, text string) error {
	if _, err := level.Parse(text); err != nil {
		return fmt.Errorf("assets: level %q: %w", name, err)
	}

	if _, err := p.db.Exec(upsertLevel, name, text); err != nil {
		return fmt.Errorf("assets: cannot save level %q: %w", name, err)
	}
	return nil
}

// PutDialog stores the dialog blob, replacing any previous one.
func (p *Pack) PutDialog(text string) error {
	if _, err := p.db.Exec(upsertDialog, text); err != nil {
		return fmt.Errorf("assets: cannot save dialog: %w", err)
	}
	return nil
}

// Level implements Source.
func (p *Pack) Level(name string) (string, error) {
	var body string
	err := p.db.QueryRow("SELECT body FROM levels WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: level %q", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("assets: cannot query level %q: %w", name, err)
	}
	return body, nil
}

// Dialog implements Source.
func (p *Pack) Dialog() (string, error) {
	var body string
	err := p.db.QueryRow("SELECT body FROM dialogs WHERE id = 1").Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: dialog", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("assets: cannot query dialog: %w", err)
	}
	return body, nil
}

// Names implements Source. Levels come back in insertion order.
func (p *Pack) Names() ([]string, error) {
	entries, err := p.Entries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Entries lists the stored levels in pack order.
func (p *Pack) Entries() ([]PackEntry, error) {
	rows, err := p.db.Query(
		`SELECT name, position, LENGTH(body), updated_at
		 FROM levels
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []PackEntry
	for rows.Next() {
		var e PackEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.Position, &e.Bytes, &updatedAt); err != nil {
			return nil, fmt.Errorf("assets: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("assets: row iteration error: %w", err)
	}

	return entries, nil
}

// Import copies the named levels and the dialog blob from src into the pack
// in a single transaction. Every level must parse. A source without a dialog
// blob stores an empty one.
func (p *Pack) Import(src Source, names []string) error {
	docs := make([]string, len(names))
	for i, name := range names {
		text, err := src.Level(name)
		if err != nil {
			return err
		}
		if _, err := level.Parse(text); err != nil {
			return fmt.Errorf("assets: level %q: %w", name, err)
		}
		docs[i] = text
	}

	dlg, err := src.Dialog()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("assets: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	for i, name := range names {
		if _, err := tx.Exec(upsertLevel, name, docs[i]); err != nil {
			return fmt.Errorf("assets: cannot save level %q: %w", name, err)
		}
	}
	if _, err := tx.Exec(upsertDialog, dlg); err != nil {
		return fmt.Errorf("assets: cannot save dialog: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("assets: cannot commit import: %w", err)
	}
	return nil
}

var _ Source = (*Pack)(nil)
