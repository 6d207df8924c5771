package config

import (
	"fmt"
	"io/fs"
	"strconv"

	env "github.com/caarlos0/env/v11"
)

// FileMode parses octal permission bits such as "0644".
type FileMode fs.FileMode

func (m *FileMode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", text, err)
	}
	if v > uint64(fs.ModePerm) {
		return fmt.Errorf("invalid file mode %q: only permission bits are allowed", text)
	}
	*m = FileMode(v)
	return nil
}

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	StatementFileMode FileMode `env:"STATEMENT_FILE_MODE" envDefault:"0644"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
