package planfile

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables Load consults.
const envPrefix = "COLLATE"

// LoadConfig holds optional inputs for Load.
type LoadConfig struct {
	EnvFile string // dotenv file loaded into the process environment (optional)
}

// LoadOption is a functional option for Load.
type LoadOption func(*LoadConfig)

// WithEnvFile loads a dotenv file before the manifest is read, so its
// variables can participate in overrides.
func WithEnvFile(path string) LoadOption {
	return func(lc *LoadConfig) { lc.EnvFile = path }
}

// Load reads a manifest file, applies COLLATE_-prefixed environment
// overrides for scalar keys, and validates the result.
func Load(path string, opts ...LoadOption) (*Manifest, error) {
	var lc LoadConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("planfile: load env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("planfile: read manifest %s: %w", path, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees explicitly bound env keys.
	if err := v.BindEnv("name"); err != nil {
		return nil, fmt.Errorf("planfile: bind env: %w", err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("planfile: unmarshal manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
