package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// seedSourceDB creates a minimal Joplin-shaped database and returns its
// path.
func seedSourceDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "database.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("opening seed db: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE folders (
			id TEXT PRIMARY KEY,
			title TEXT,
			parent_id TEXT
		);
		CREATE TABLE notes (
			id TEXT PRIMARY KEY,
			title TEXT,
			body TEXT,
			parent_id TEXT,
			is_conflict INTEGER NOT NULL DEFAULT 0,
			deleted_time INTEGER NOT NULL DEFAULT 0
		);

		INSERT INTO folders VALUES ('f1', 'joplin', '');
		INSERT INTO folders VALUES ('f2', 'Work', 'f1');
		INSERT INTO folders VALUES ('f3', 'Other', '');

		INSERT INTO notes VALUES ('n1', 'First', 'body one', 'f1', 0, 0);
		INSERT INTO notes VALUES ('n2', 'Second', 'body two', 'f2', 0, 0);
		INSERT INTO notes VALUES ('n3', 'Conflict', 'x', 'f1', 1, 0);
		INSERT INTO notes VALUES ('n4', 'Deleted', 'x', 'f1', 0, 1700000000);
		INSERT INTO notes VALUES ('n5', 'Elsewhere', 'x', 'f3', 0, 0);
	`)
	if err != nil {
		t.Fatalf("seeding db: %v", err)
	}

	return dbPath
}

func TestAllFolders(t *testing.T) {
	store, err := Open(seedSourceDB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	folders, err := store.AllFolders(context.Background())
	if err != nil {
		t.Fatalf("AllFolders: %v", err)
	}
	if len(folders) != 3 {
		t.Fatalf("expected 3 folders, got %d", len(folders))
	}

	byID := make(map[string]string)
	for _, f := range folders {
		byID[f.ID] = f.Title
	}
	if byID["f2"] != "Work" {
		t.Errorf("folder f2 title = %q", byID["f2"])
	}
}

func TestNotesIn(t *testing.T) {
	store, err := Open(seedSourceDB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	tests := []struct {
		name      string
		folderIDs []string
		wantIDs   []string
	}{
		{
			name:      "subtree excluding conflict and deleted notes",
			folderIDs: []string{"f1", "f2"},
			wantIDs:   []string{"n1", "n2"},
		},
		{
			name:      "single folder",
			folderIDs: []string{"f2"},
			wantIDs:   []string{"n2"},
		},
		{
			name:      "unknown folder yields nothing",
			folderIDs: []string{"nope"},
			wantIDs:   nil,
		},
		{
			name:      "empty id set yields nothing",
			folderIDs: nil,
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := store.NotesIn(ctx, tt.folderIDs)
			if err != nil {
				t.Fatalf("NotesIn: %v", err)
			}
			if len(notes) != len(tt.wantIDs) {
				t.Fatalf("got %d notes, want %d", len(notes), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if notes[i].ID != id {
					t.Errorf("notes[%d].ID = %q, want %q", i, notes[i].ID, id)
				}
			}
		})
	}
}

func TestNotesInScansNullColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "database.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE folders (id TEXT PRIMARY KEY, title TEXT, parent_id TEXT);
		CREATE TABLE notes (
			id TEXT PRIMARY KEY, title TEXT, body TEXT, parent_id TEXT,
			is_conflict INTEGER NOT NULL DEFAULT 0,
			deleted_time INTEGER NOT NULL DEFAULT 0
		);
		INSERT INTO notes (id, title, body, parent_id) VALUES ('n1', NULL, NULL, 'f1');
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	notes, err := store.NotesIn(context.Background(), []string{"f1"})
	if err != nil {
		t.Fatalf("NotesIn: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "" || notes[0].Body != "" {
		t.Errorf("unexpected notes: %+v", notes)
	}
}
