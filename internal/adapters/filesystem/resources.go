package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jopvault/internal/domain"
	"jopvault/internal/ports"
)

// Resources implements ports.ResourceScanner over the source resource
// directory.
type Resources struct {
	dir string
}

var _ ports.ResourceScanner = (*Resources)(nil)

// NewResources creates a scanner for the given resource directory.
// A leading ~ is expanded to the home directory.
func NewResources(dir string) *Resources {
	return &Resources{dir: ExpandHome(dir)}
}

// BuildCatalog lists the resource directory and keeps every entry whose
// name follows the resource naming scheme. Other entries are skipped.
func (r *Resources) BuildCatalog() (domain.Catalog, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource directory %s: %w", r.dir, err)
	}

	catalog := make(domain.Catalog)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !domain.IsResourceFilename(name) {
			continue
		}
		catalog[domain.ResourceID(name)] = name
	}
	return catalog, nil
}

// ResourcePath returns the absolute path of a cataloged file.
func (r *Resources) ResourcePath(filename string) string {
	return filepath.Join(r.dir, filename)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}
