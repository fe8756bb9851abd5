package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jopvault/internal/adapters/filesystem"
	"jopvault/internal/adapters/sqlite"
	"jopvault/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config

	flagDB          string
	flagResources   string
	flagVault       string
	flagTarget      string
	flagOutput      string
	flagAttachments string
)

var rootCmd = &cobra.Command{
	Use:   "jopvault",
	Short: "Import Joplin notebooks into an Obsidian vault",
	Long: `jopvault reads a Joplin desktop database and writes the notes of one
notebook (and its sub-notebooks) into an Obsidian vault as plain markdown
files, one file per note.

Embedded resource links are resolved against the Joplin resource
directory: images are renamed per note (MyNote-001.png, MyNote-002.jpg),
other attachments keep their original filenames, and all of them are
copied into a shared attachments folder.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		return cfg.Validate()
	},
}

// applyFlags lets explicit flags win over file and environment values.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.SourceDBPath = flagDB
	}
	if flags.Changed("resources") {
		cfg.ResourceDir = flagResources
	}
	if flags.Changed("vault") {
		cfg.VaultDir = flagVault
	}
	if flags.Changed("target") {
		cfg.TargetFolder = flagTarget
	}
	if flags.Changed("output") {
		cfg.OutputFolder = flagOutput
	}
	if flags.Changed("attachments") {
		cfg.AttachmentsFolder = flagAttachments
	}
}

// openStore opens the configured source database; a missing file aborts
// with the fatal source-missing error before anything is written.
func openStore() (*sqlite.Store, error) {
	return sqlite.OpenSource(filesystem.ExpandHome(cfg.SourceDBPath))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", config.DefaultSourceDBPath, "path to the Joplin database")
	rootCmd.PersistentFlags().StringVar(&flagResources, "resources", config.DefaultResourceDir, "path to the Joplin resource directory")
	rootCmd.PersistentFlags().StringVarP(&flagVault, "vault", "v", config.DefaultVaultDir, "path to the Obsidian vault")
	rootCmd.PersistentFlags().StringVarP(&flagTarget, "target", "t", config.DefaultTargetFolder, "title of the notebook to import")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", config.DefaultOutputFolder, "vault-relative folder for imported notes")
	rootCmd.PersistentFlags().StringVar(&flagAttachments, "attachments", config.DefaultAttachmentsFolder, "vault-relative folder for copied attachments")
}
