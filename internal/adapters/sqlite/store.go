package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"jopvault/internal/application"
	"jopvault/internal/domain"
	"jopvault/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.SourceStore over a Joplin database file.
// All queries use bound placeholders; no user-supplied value is ever
// interpolated into query text.
type Store struct {
	db *sql.DB
}

var _ ports.SourceStore = (*Store)(nil)

// OpenSource verifies the database file exists and opens it. A missing
// file is the fatal ErrSourceMissing condition that aborts a whole run.
func OpenSource(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %s", application.ErrSourceMissing, dbPath)
	}
	return Open(dbPath)
}

// Open opens the Joplin database at dbPath for reading.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AllFolders returns every folder row.
func (s *Store) AllFolders(ctx context.Context) ([]domain.Folder, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, parent_id FROM folders
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		var f domain.Folder
		var title, parentID sql.NullString
		if err := rows.Scan(&f.ID, &title, &parentID); err != nil {
			return nil, err
		}
		f.Title = title.String
		f.ParentID = parentID.String
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// NotesIn returns the importable notes under the given folder ids,
// excluding conflict copies and deleted rows. Results come back in id
// order so repeated runs process notes in the same sequence.
func (s *Store) NotesIn(ctx context.Context, folderIDs []string) ([]domain.Note, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(folderIDs)), ",")
	args := make([]any, len(folderIDs))
	for i, id := range folderIDs {
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, title, body, parent_id FROM notes
		WHERE parent_id IN (%s) AND is_conflict = 0 AND deleted_time = 0
		ORDER BY id
	`, placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var title, body sql.NullString
		if err := rows.Scan(&n.ID, &title, &body, &n.ParentID); err != nil {
			return nil, err
		}
		n.Title = title.String
		n.Body = body.String
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
