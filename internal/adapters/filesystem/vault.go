package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jopvault/internal/ports"
)

// Vault implements ports.VaultWriter on the local filesystem.
// Note files go under <vault>/<outputFolder>/<folder path>/, attachments
// into the single shared <vault>/<attachmentsFolder>/ directory.
type Vault struct {
	root           string
	outputDir      string
	attachmentsDir string

	// attachmentsMade flips after the first copy so the attachments
	// directory is only created when a note actually resolves a resource.
	attachmentsMade bool
}

var _ ports.VaultWriter = (*Vault)(nil)

// NewVault creates a writer rooted at vaultDir. An empty outputFolder puts
// notes directly under the vault root.
func NewVault(vaultDir, outputFolder, attachmentsFolder string) *Vault {
	root := ExpandHome(vaultDir)
	outputDir := root
	if outputFolder != "" {
		outputDir = filepath.Join(root, outputFolder)
	}
	return &Vault{
		root:           root,
		outputDir:      outputDir,
		attachmentsDir: filepath.Join(root, attachmentsFolder),
	}
}

// NotePath returns the absolute path for a note file in the vault-relative
// folderPath.
func (v *Vault) NotePath(folderPath, baseName string) string {
	return filepath.Join(v.outputDir, folderPath, baseName+".md")
}

// WriteNote writes body to path, creating intermediate directories on
// demand. An existing file is overwritten.
func (v *Vault) WriteNote(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// CopyAttachment copies src into the attachments directory under name.
// A missing source or an existing destination is a no-op, which makes
// re-running an import cheap.
func (v *Vault) CopyAttachment(src, name string) error {
	if _, err := os.Stat(src); err != nil {
		return nil
	}
	dst := filepath.Join(v.attachmentsDir, name)
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	if !v.attachmentsMade {
		if err := os.MkdirAll(v.attachmentsDir, 0755); err != nil {
			return fmt.Errorf("failed to create attachments directory: %w", err)
		}
		v.attachmentsMade = true
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to copy attachment %s: %w", name, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
