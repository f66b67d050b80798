package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_NEW_PRESET is the custom preset the demo appends
	NewPreset int `envconfig:"E2E_NEW_PRESET" default:"30"`
	// E2E_HISTORY_TABLE renders the history as a table instead of a single line
	HistoryTable bool `envconfig:"E2E_HISTORY_TABLE" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
