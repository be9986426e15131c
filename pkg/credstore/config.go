package credstore

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// PathConfig tells the store where its on-disk data lives.
type PathConfig interface {
	BasePath() string
}

// LoadPathConfig resolves the local store location from a .momentchen
// config file or MOMENTCHEN_* environment variables.
func LoadPathConfig() (PathConfig, error) {
	viper.SetDefault("path", "~/.momentchen.db")
	viper.SetConfigName(".momentchen") // .yaml is implicit
	viper.SetEnvPrefix("MOMENTCHEN")
	viper.AutomaticEnv()

	if override := os.Getenv("MOMENTCHEN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
