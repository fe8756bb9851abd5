package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jopvault/internal/adapters/filesystem"
	"jopvault/internal/application/commands"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Scan the Joplin resource directory",
	Long: `Build the resource catalog and report how many attachment files it
resolves, split into images (renamed per note on import) and other
attachments (imported under their original names).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		scanner := filesystem.NewResources(cfg.ResourceDir)
		result, err := commands.NewScanResourcesCommand(scanner).Execute(ctx)
		if err != nil {
			return err
		}

		if result.DirMissing {
			fmt.Println("resource directory does not exist; imports will run without attachments")
			return nil
		}

		fmt.Printf("%d resources (%d images, %d other)\n", result.Total, result.Images, result.Other)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
