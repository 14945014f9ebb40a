package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where its data lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .travver config file or the
// TRAVVER_PATH environment variable, defaulting to ~/.travver.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.travver.db")
	viper.SetConfigName(".travver") // .yaml is implicit
	viper.SetEnvPrefix("TRAVVER")
	viper.AutomaticEnv()

	if override := os.Getenv("TRAVVER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
