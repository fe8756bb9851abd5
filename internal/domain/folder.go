package domain

import (
	"errors"
	"path/filepath"
	"sort"
)

// Folder is one row of the source notebook tree. ParentID is empty for
// top-level folders.
type Folder struct {
	ID       string
	Title    string
	ParentID string
}

// Hierarchy maps a folder id to its sanitized vault-relative path.
// The root folder maps to "".
type Hierarchy map[string]string

var (
	// ErrFolderNotFound means no top-level folder matched the target title.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrFolderCycle means the parent relation loops back on itself.
	ErrFolderCycle = errors.New("folder hierarchy contains a cycle")
)

// PathCollision records two sibling folders whose sanitized titles map to
// the same relative path. Their notes end up merged into one directory.
type PathCollision struct {
	Path         string
	FolderID     string
	CollidesWith string
}

// ResolveHierarchy locates the top-level folder whose title equals
// targetTitle (exact match; the lowest id wins a tie) and computes the
// vault-relative path of every folder in its subtree. A parent relation
// that revisits a folder fails with ErrFolderCycle instead of looping.
func ResolveHierarchy(folders []Folder, targetTitle string) (Hierarchy, string, []PathCollision, error) {
	rootID := ""
	for _, f := range folders {
		if f.ParentID != "" || f.Title != targetTitle {
			continue
		}
		if rootID == "" || f.ID < rootID {
			rootID = f.ID
		}
	}
	if rootID == "" {
		return nil, "", nil, ErrFolderNotFound
	}

	children := make(map[string][]Folder)
	for _, f := range folders {
		children[f.ParentID] = append(children[f.ParentID], f)
	}
	for _, siblings := range children {
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].ID < siblings[j].ID })
	}

	hierarchy := Hierarchy{rootID: ""}
	owners := make(map[string]string)
	var collisions []PathCollision

	visited := map[string]bool{rootID: true}
	stack := []string{rootID}
	for len(stack) > 0 {
		parentID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		base := hierarchy[parentID]

		for _, child := range children[parentID] {
			if visited[child.ID] {
				return nil, "", nil, ErrFolderCycle
			}
			visited[child.ID] = true

			path := SanitizeTitle(child.Title)
			if base != "" {
				path = filepath.Join(base, path)
			}
			if prev, taken := owners[path]; taken {
				collisions = append(collisions, PathCollision{
					Path:         path,
					FolderID:     child.ID,
					CollidesWith: prev,
				})
			}
			owners[path] = child.ID
			hierarchy[child.ID] = path
			stack = append(stack, child.ID)
		}
	}

	return hierarchy, rootID, collisions, nil
}
