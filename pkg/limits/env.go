package limits

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig maps platform-wide bound overrides from the environment.
type envConfig struct {
	MaxStringLength int      `env:"INPUTGUARD_MAX_STRING_LENGTH" envDefault:"10000"`
	MaxArrayLength  int      `env:"INPUTGUARD_MAX_ARRAY_LENGTH" envDefault:"1000"`
	MaxObjectDepth  int      `env:"INPUTGUARD_MAX_OBJECT_DEPTH" envDefault:"10"`
	MaxFileSize     int64    `env:"INPUTGUARD_MAX_FILE_SIZE" envDefault:"10485760"`
	AllowedTypes    []string `env:"INPUTGUARD_ALLOWED_TYPES" envSeparator:","`
}

var defaultEnvLoaded sync.Once

// FromEnv builds a Limits from INPUTGUARD_* environment variables, falling
// back to the documented defaults for unset variables. A .env file in the
// working directory is loaded once per process if present.
func FromEnv() (Limits, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional in deployed environments.
		_ = godotenv.Load()
	})

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return Limits{}, err
	}

	p := Partial{
		MaxStringLength: &cfg.MaxStringLength,
		MaxArrayLength:  &cfg.MaxArrayLength,
		MaxObjectDepth:  &cfg.MaxObjectDepth,
		MaxFileSize:     &cfg.MaxFileSize,
	}
	for _, t := range cfg.AllowedTypes {
		p.AllowedTypes = append(p.AllowedTypes, TypeName(t))
	}
	return Default().Merge(p)
}
