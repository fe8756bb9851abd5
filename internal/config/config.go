package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the flat importer configuration record. Every option has a
// default; path options support a leading ~.
type Config struct {
	SourceDBPath      string `mapstructure:"source_db_path"`
	ResourceDir       string `mapstructure:"resource_dir"`
	TargetFolder      string `mapstructure:"target_folder"`
	VaultDir          string `mapstructure:"vault_dir"`
	OutputFolder      string `mapstructure:"output_folder"`
	AttachmentsFolder string `mapstructure:"attachments_folder"`
}

// Defaults mirror a stock Joplin desktop installation.
const (
	DefaultSourceDBPath      = "~/.config/joplin-desktop/database.sqlite"
	DefaultResourceDir       = "~/.config/joplin-desktop/resources"
	DefaultTargetFolder      = "joplin"
	DefaultVaultDir          = "."
	DefaultOutputFolder      = "joplin"
	DefaultAttachmentsFolder = "assets"
)

// Config validation errors.
var (
	ErrTargetFolderEmpty      = errors.New("target_folder must not be empty")
	ErrAttachmentsFolderEmpty = errors.New("attachments_folder must not be empty")
)

// Load reads configuration with precedence: environment (JOPVAULT_*), then
// the config file, then defaults. When cfgFile is empty the default
// location ~/.config/jopvault/config.yaml is tried and may be absent.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source_db_path", DefaultSourceDBPath)
	v.SetDefault("resource_dir", DefaultResourceDir)
	v.SetDefault("target_folder", DefaultTargetFolder)
	v.SetDefault("vault_dir", DefaultVaultDir)
	v.SetDefault("output_folder", DefaultOutputFolder)
	v.SetDefault("attachments_folder", DefaultAttachmentsFolder)

	v.SetEnvPrefix("JOPVAULT")
	for _, key := range []string{
		"source_db_path", "resource_dir", "target_folder",
		"vault_dir", "output_folder", "attachments_folder",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/jopvault")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the Config is well-formed.
func (c *Config) Validate() error {
	if c.TargetFolder == "" {
		return ErrTargetFolderEmpty
	}
	if c.AttachmentsFolder == "" {
		return ErrAttachmentsFolderEmpty
	}
	return nil
}
