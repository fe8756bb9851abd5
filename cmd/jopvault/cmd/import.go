package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jopvault/internal/adapters/console"
	"jopvault/internal/adapters/filesystem"
	"jopvault/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the target notebook into the vault",
	Long: `Import every note of the target notebook and its sub-notebooks.

The notebook's folder structure is recreated under the output folder,
note bodies are rewritten so resource links point at the copied
attachment files, and failures of individual notes are reported without
stopping the rest of the run.

Examples:
  jopvault import
  jopvault import --target Inbox --vault ~/vaults/main`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notify := console.NewNotifier(os.Stderr)

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := commands.NewImportCommand(
			store,
			filesystem.NewResources(cfg.ResourceDir),
			filesystem.NewVault(cfg.VaultDir, cfg.OutputFolder, cfg.AttachmentsFolder),
			notify,
			cfg.TargetFolder,
		).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("imported %d notes (%d failed) from %d folders\n",
			result.Imported, result.Failed, result.Folders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
