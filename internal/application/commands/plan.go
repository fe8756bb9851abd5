package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"jopvault/internal/application"
	"jopvault/internal/domain"
	"jopvault/internal/ports"
)

// PlanCommand resolves what an import would do without writing anything.
type PlanCommand struct {
	store ports.SourceStore

	TargetFolder string
}

// PlanEntry is one note with its vault-relative destination.
type PlanEntry struct {
	NoteID string
	Title  string
	Path   string
}

// PlanResult describes the notes an import run would produce.
type PlanResult struct {
	Folders int
	Entries []PlanEntry
}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand(store ports.SourceStore, targetFolder string) *PlanCommand {
	return &PlanCommand{store: store, TargetFolder: targetFolder}
}

// Validate checks if the plan can be computed.
func (c *PlanCommand) Validate() error {
	if c.TargetFolder == "" {
		return &application.ValidationError{
			Field:   "targetFolder",
			Message: "target folder title is required",
		}
	}
	return nil
}

// Execute resolves the folder hierarchy and lists every importable note
// with its destination path. An empty result is informative here, not an
// error: the dry run is how a user finds out nothing would be imported.
func (c *PlanCommand) Execute(ctx context.Context) (*PlanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folders, err := c.store.AllFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}

	hierarchy, _, _, err := domain.ResolveHierarchy(folders, c.TargetFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder %q: %w", c.TargetFolder, err)
	}

	folderIDs := make([]string, 0, len(hierarchy))
	for id := range hierarchy {
		folderIDs = append(folderIDs, id)
	}
	sort.Strings(folderIDs)

	notes, err := c.store.NotesIn(ctx, folderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	result := &PlanResult{Folders: len(hierarchy)}
	for _, note := range notes {
		base := domain.NoteBaseName(note.Title)
		result.Entries = append(result.Entries, PlanEntry{
			NoteID: note.ID,
			Title:  note.Title,
			Path:   filepath.Join(hierarchy[note.ParentID], base+".md"),
		})
	}
	return result, nil
}
