package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Catalog maps a resource identifier (32 lowercase hex characters) to the
// source filename it was stored under (identifier + original extension).
type Catalog map[string]string

// resourceFilename matches files in the source resource directory:
// a 32-hex identifier, a dot, and an extension.
var resourceFilename = regexp.MustCompile(`^[a-f0-9]{32}\.\w+$`)

// imageExtensions are the attachment types renamed per note; everything
// else keeps its catalog filename so shared attachments stay shared.
var imageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"svg":  true,
	"webp": true,
}

// IsResourceFilename reports whether name follows the resource file naming
// scheme.
func IsResourceFilename(name string) bool {
	return resourceFilename.MatchString(name)
}

// ResourceID returns the identifier portion of a resource filename.
// The caller must have checked IsResourceFilename first.
func ResourceID(name string) string {
	return strings.SplitN(name, ".", 2)[0]
}

// IsImageFilename reports whether a filename has one of the image
// extensions subject to per-note renaming.
func IsImageFilename(name string) bool {
	return imageExtensions[extensionOf(name)]
}

func extensionOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
