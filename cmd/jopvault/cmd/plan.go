package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jopvault/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what an import would do without writing anything",
	Long: `Resolve the target notebook's folder hierarchy and list every note
that would be imported, with its destination path relative to the vault.

Examples:
  jopvault plan
  jopvault plan --target Inbox`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := commands.NewPlanCommand(store, cfg.TargetFolder).Execute(ctx)
		if err != nil {
			return err
		}

		if len(result.Entries) == 0 {
			fmt.Println("Nothing to import")
			return nil
		}

		for _, e := range result.Entries {
			fmt.Println(e.Path)
		}
		fmt.Printf("\n%d notes in %d folders\n", len(result.Entries), result.Folders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
