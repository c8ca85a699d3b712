package internal

import (
	"aarambh/errors"
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	Message  *string `env:"MESSAGE"`
	LogLevel string  `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Colours  bool    `env:"COLOURS,default=true"`
}

// LoadConfig reads the configuration from the environment.
// A .env file in the working directory is loaded first when present,
// without overriding variables that are already set.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return config, nil
}
