package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the store and library care about.
type Config interface {
	BasePath() string
	VersionsKeep() int
	Model() string
}

// LoadConfig resolves configuration from a .promptdb file (yaml implicit)
// and PROMPTDB_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.promptdb.db")
	viper.SetDefault("versions.keep", 0)
	viper.SetDefault("genai.model", "gpt-4o-mini")
	viper.SetConfigName(".promptdb")
	viper.SetEnvPrefix("PROMPTDB")
	viper.AutomaticEnv()

	if override := os.Getenv("PROMPTDB_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:  path,
		Keep:  viper.GetInt("versions.keep"),
		GenAI: viper.GetString("genai.model"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Keep  int    `json:"versionsKeep"`
	GenAI string `json:"genaiModel"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) VersionsKeep() int { return f.Keep }
func (f *fileConfig) Model() string     { return f.GenAI }
