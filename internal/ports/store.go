package ports

import (
	"context"

	"jopvault/internal/domain"
)

// SourceStore reads folders and notes out of the Joplin source database.
// The handle is opened once per run, shared read-only, and must be closed
// on every exit path.
type SourceStore interface {
	// AllFolders returns every folder row (id, title, parent id).
	AllFolders(ctx context.Context) ([]domain.Folder, error)

	// NotesIn returns the importable notes whose parent folder is in
	// folderIDs, excluding deleted and conflict rows.
	NotesIn(ctx context.Context, folderIDs []string) ([]domain.Note, error)

	Close() error
}
