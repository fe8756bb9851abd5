package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"jopvault/internal/domain"
	"jopvault/internal/ports"
)

// ScanResourcesCommand builds the resource catalog and reports what it
// holds.
type ScanResourcesCommand struct {
	resources ports.ResourceScanner
}

// ScanResult summarizes the resource catalog.
type ScanResult struct {
	Total  int
	Images int
	Other  int
	// DirMissing is set when the resource directory does not exist; an
	// import would then run with zero resolvable attachments.
	DirMissing bool
}

// NewScanResourcesCommand creates a new ScanResourcesCommand.
func NewScanResourcesCommand(resources ports.ResourceScanner) *ScanResourcesCommand {
	return &ScanResourcesCommand{resources: resources}
}

// Execute scans the resource directory and classifies catalog entries.
func (c *ScanResourcesCommand) Execute(ctx context.Context) (*ScanResult, error) {
	catalog, err := c.resources.BuildCatalog()
	if errors.Is(err, fs.ErrNotExist) {
		return &ScanResult{DirMissing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build resource catalog: %w", err)
	}

	result := &ScanResult{Total: len(catalog)}
	for _, name := range catalog {
		if domain.IsImageFilename(name) {
			result.Images++
		} else {
			result.Other++
		}
	}
	return result, nil
}
