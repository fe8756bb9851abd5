package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jopvault/internal/adapters/filesystem"
	"jopvault/internal/adapters/sqlite"
	"jopvault/internal/application/commands"
	"jopvault/internal/config"
	"jopvault/internal/ports"
)

// RegisterImportTools adds the importer tools to the MCP server. Each call
// runs against a fresh store handle so the server holds no open database
// between requests.
func RegisterImportTools(s *server.MCPServer, cfg *config.Config) {
	s.AddTool(importTool(), importHandler(cfg))
	s.AddTool(planTool(), planHandler(cfg))
	s.AddTool(scanResourcesTool(), scanResourcesHandler(cfg))
}

// requestConfig overlays per-request options onto the server configuration.
func requestConfig(cfg *config.Config, req mcp.CallToolRequest) config.Config {
	overlaid := *cfg
	if v := req.GetString("target_folder", ""); v != "" {
		overlaid.TargetFolder = v
	}
	if v := req.GetString("vault_dir", ""); v != "" {
		overlaid.VaultDir = v
	}
	return overlaid
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("run_import",
		mcp.WithDescription("Import the target Joplin notebook into the Obsidian vault. Writes one markdown file per note and copies referenced attachments."),
		mcp.WithString("target_folder",
			mcp.Description("Notebook title to import. Defaults to the configured target folder."),
		),
		mcp.WithString("vault_dir",
			mcp.Description("Vault root to write into. Defaults to the configured vault."),
		),
	)
}

func importHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rc := requestConfig(cfg, req)

		store, err := sqlite.OpenSource(filesystem.ExpandHome(rc.SourceDBPath))
		if err != nil {
			return toolError(err)
		}
		defer store.Close()

		var log strings.Builder
		notify := logNotifier{out: &log}

		result, err := commands.NewImportCommand(
			store,
			filesystem.NewResources(rc.ResourceDir),
			filesystem.NewVault(rc.VaultDir, rc.OutputFolder, rc.AttachmentsFolder),
			notify,
			rc.TargetFolder,
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		fmt.Fprintf(&log, "imported %d notes (%d failed) from %d folders, %d resources cataloged\n",
			result.Imported, result.Failed, result.Folders, result.Resources)
		return mcp.NewToolResultText(log.String()), nil
	}
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan_import",
		mcp.WithDescription("Dry run: list the notes an import would produce and their destination paths, without writing anything."),
		mcp.WithString("target_folder",
			mcp.Description("Notebook title to plan for. Defaults to the configured target folder."),
		),
	)
}

func planHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rc := requestConfig(cfg, req)

		store, err := sqlite.OpenSource(filesystem.ExpandHome(rc.SourceDBPath))
		if err != nil {
			return toolError(err)
		}
		defer store.Close()

		result, err := commands.NewPlanCommand(store, rc.TargetFolder).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Entries) == 0 {
			return mcp.NewToolResultText("Nothing to import."), nil
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d folders, %d notes:\n", result.Folders, len(result.Entries))
		for _, e := range result.Entries {
			fmt.Fprintf(&sb, "%s\n", e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- scan_resources ---

func scanResourcesTool() mcp.Tool {
	return mcp.NewTool("scan_resources",
		mcp.WithDescription("Scan the Joplin resource directory and report how many attachments the catalog resolves."),
	)
}

func scanResourcesHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		scanner := filesystem.NewResources(cfg.ResourceDir)
		result, err := commands.NewScanResourcesCommand(scanner).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.DirMissing {
			return mcp.NewToolResultText("Resource directory does not exist; imports will run without attachments."), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%d resources (%d images, %d other)",
			result.Total, result.Images, result.Other)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// logNotifier collects importer messages into the tool result text.
type logNotifier struct {
	out *strings.Builder
}

var _ ports.Notifier = logNotifier{}

func (n logNotifier) Progressf(format string, args ...any) {
	fmt.Fprintf(n.out, format+"\n", args...)
}

func (n logNotifier) Warnf(format string, args ...any) {
	fmt.Fprintf(n.out, "warning: "+format+"\n", args...)
}

func (n logNotifier) Errorf(format string, args ...any) {
	fmt.Fprintf(n.out, "error: "+format+"\n", args...)
}
