package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"jopvault/internal/application"
	"jopvault/internal/domain"
	"jopvault/internal/ports"
)

// ImportCommand runs a full import of the target notebook into the vault.
type ImportCommand struct {
	store     ports.SourceStore
	resources ports.ResourceScanner
	vault     ports.VaultWriter
	notify    ports.Notifier

	TargetFolder string
}

// ImportResult tallies one import run.
type ImportResult struct {
	Folders   int
	Resources int
	Imported  int
	Failed    int
}

// NewImportCommand creates a new ImportCommand.
func NewImportCommand(store ports.SourceStore, resources ports.ResourceScanner, vault ports.VaultWriter, notify ports.Notifier, targetFolder string) *ImportCommand {
	return &ImportCommand{
		store:        store,
		resources:    resources,
		vault:        vault,
		notify:       notify,
		TargetFolder: targetFolder,
	}
}

// Validate checks if the import can be attempted.
func (c *ImportCommand) Validate() error {
	if c.TargetFolder == "" {
		return &application.ValidationError{
			Field:   "targetFolder",
			Message: "target folder title is required",
		}
	}
	return nil
}

// Execute runs the import. Setup failures (folder resolution, note query)
// abort the run with no partial output; individual note failures are
// counted and reported without stopping the rest.
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folders, err := c.store.AllFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}

	hierarchy, _, collisions, err := domain.ResolveHierarchy(folders, c.TargetFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder %q: %w", c.TargetFolder, err)
	}
	for _, col := range collisions {
		c.notify.Warnf("folders %s and %s share the path %q; their notes will be merged",
			col.CollidesWith, col.FolderID, col.Path)
	}
	c.notify.Progressf("found %d folders", len(hierarchy))

	catalog, err := c.buildCatalog()
	if err != nil {
		return nil, err
	}
	c.notify.Progressf("found %d resource files", len(catalog))

	folderIDs := make([]string, 0, len(hierarchy))
	for id := range hierarchy {
		folderIDs = append(folderIDs, id)
	}
	sort.Strings(folderIDs)

	notes, err := c.store.NotesIn(ctx, folderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w in folder %q", application.ErrNoNotes, c.TargetFolder)
	}
	c.notify.Progressf("found %d notes", len(notes))

	result := &ImportResult{
		Folders:   len(hierarchy),
		Resources: len(catalog),
	}
	for _, note := range notes {
		if err := c.importNote(note, hierarchy, catalog); err != nil {
			result.Failed++
			c.notify.Errorf("%v", &application.NoteError{NoteID: note.ID, Title: note.Title, Err: err})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// buildCatalog degrades a missing resource directory to a warning and an
// empty catalog; the import then proceeds with zero resolvable attachments.
func (c *ImportCommand) buildCatalog() (domain.Catalog, error) {
	catalog, err := c.resources.BuildCatalog()
	if errors.Is(err, fs.ErrNotExist) {
		c.notify.Warnf("resource directory does not exist, importing without attachments")
		return domain.Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build resource catalog: %w", err)
	}
	return catalog, nil
}

func (c *ImportCommand) importNote(note domain.Note, hierarchy domain.Hierarchy, catalog domain.Catalog) error {
	base := domain.NoteBaseName(note.Title)
	plan := domain.PlanRenames(note.Body, base, catalog)

	for _, id := range plan.Missing {
		c.notify.Warnf("resource %s referenced by %q not found", id, note.Title)
	}
	for id, name := range plan.Assigned {
		src := c.resources.ResourcePath(catalog[id])
		if err := c.vault.CopyAttachment(src, name); err != nil {
			return err
		}
	}

	body := domain.RewriteBody(note.Body, plan)
	path := c.vault.NotePath(hierarchy[note.ParentID], base)
	if err := c.vault.WriteNote(path, body); err != nil {
		return err
	}

	c.notify.Progressf("imported %s", path)
	return nil
}
