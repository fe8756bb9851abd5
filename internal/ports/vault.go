package ports

import "jopvault/internal/domain"

// VaultWriter writes imported notes and attachments into the target vault.
type VaultWriter interface {
	// NotePath returns the absolute output path for a note file placed in
	// the vault-relative folderPath.
	NotePath(folderPath, baseName string) string

	// WriteNote writes UTF-8 note text to path, creating parent directories
	// on demand and overwriting any existing file.
	WriteNote(path, body string) error

	// CopyAttachment copies the file at src into the shared attachments
	// directory under name. Existing destinations and missing sources are
	// left alone; the directory is created on the first actual copy.
	CopyAttachment(src, name string) error
}

// ResourceScanner builds the resource catalog from the source resource
// directory.
type ResourceScanner interface {
	// BuildCatalog scans the resource directory (non-recursively) and maps
	// each resource id to its filename. A missing directory surfaces as an
	// error wrapping fs.ErrNotExist.
	BuildCatalog() (domain.Catalog, error)

	// ResourcePath returns the absolute path of a cataloged file.
	ResourcePath(filename string) string
}
