package commands

import (
	"context"
	"path/filepath"
	"testing"

	"jopvault/internal/adapters/filesystem"
)

func TestScanResourcesCommand_Execute(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, ridPNG+".png", "x")
	writeResource(t, dir, ridPDF+".pdf", "x")
	writeResource(t, dir, "not-a-resource.txt", "x")

	result, err := NewScanResourcesCommand(filesystem.NewResources(dir)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Total != 2 || result.Images != 1 || result.Other != 1 {
		t.Errorf("result = %+v, want total 2, images 1, other 1", result)
	}
	if result.DirMissing {
		t.Error("DirMissing should be false")
	}
}

func TestScanResourcesCommand_MissingDir(t *testing.T) {
	scanner := filesystem.NewResources(filepath.Join(t.TempDir(), "missing"))
	result, err := NewScanResourcesCommand(scanner).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.DirMissing || result.Total != 0 {
		t.Errorf("result = %+v, want DirMissing with empty catalog", result)
	}
}
