package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const defaultBackend = "http://localhost:3000/api/be"

// Config carries the client-side settings: where the backend proxy lives,
// how long to wait on it, and where the local snapshot cache goes.
type Config interface {
	Backend() string
	CachePath() string
	Timeout() time.Duration
}

// LoadConfig reads .ordo.yaml from the working directory (or the directory
// named by ORDO_CONFIG_PATH) with ORDO_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("backend", defaultBackend)
	viper.SetDefault("cache", "~/.ordo.db")
	viper.SetDefault("timeout", "10s")
	viper.SetConfigName(".ordo") // .yaml is implicit
	viper.SetEnvPrefix("ORDO")
	viper.AutomaticEnv()

	if override := os.Getenv("ORDO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cache, err := homedir.Expand(viper.GetString("cache"))
	if err != nil {
		return nil, fmt.Errorf("expanding cache path: %w", err)
	}

	return &fileConfig{
		backend: viper.GetString("backend"),
		cache:   cache,
		timeout: viper.GetDuration("timeout"),
	}, nil
}

type fileConfig struct {
	backend string
	cache   string
	timeout time.Duration
}

func (f *fileConfig) Backend() string { return f.backend }

func (f *fileConfig) CachePath() string { return f.cache }

func (f *fileConfig) Timeout() time.Duration {
	if f.timeout <= 0 {
		return 10 * time.Second
	}
	return f.timeout
}
