package internal

import (
	"audio-lab/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel     string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	NewPreset    int    `env:"NEW_PRESET,default=30"`
	Colours      bool   `env:"COLOURS,default=false"`
	HistoryTable bool   `env:"HISTORY_TABLE,default=false"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}
