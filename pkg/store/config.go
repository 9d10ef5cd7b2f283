package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the habit document and export directory.
type Config interface {
	BasePath() string
	ExportPath() string
}

// LoadConfig resolves configuration from an optional .habits file and the
// HABITS_* environment. Paths may use a leading ~.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.habits.db")
	viper.SetDefault("export-dir", filepath.Join("~", "Documents", "habit-exports"))
	viper.SetConfigName(".habits") // .yaml is implicit
	viper.SetEnvPrefix("HABITS")
	viper.AutomaticEnv()

	if override := os.Getenv("HABITS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand data path: %w", err)
	}
	export, err := homedir.Expand(viper.GetString("export-dir"))
	if err != nil {
		return nil, fmt.Errorf("store: expand export path: %w", err)
	}

	return &fileConfig{Path: base, Export: export}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Export string `json:"export"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ExportPath() string {
	return f.Export
}
