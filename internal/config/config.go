// Package config resolves irops defaults from the environment.
//
// Defaults can be set with environment variables, optionally loaded from a
// .env file in the working directory. Variables already present in the
// environment are never overridden by the file. Command-line flags always
// take precedence over anything resolved here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvOutputDir sets the default output directory.
	EnvOutputDir = "IROPS_OUTPUT_DIR"

	// EnvFormat sets the default output format.
	EnvFormat = "IROPS_FORMAT"

	// DotEnvFile is the optional file read by Load.
	DotEnvFile = ".env"
)

// Config contains the defaults resolved from the environment.
type Config struct {
	// OutputDir is the default output directory (empty: stdout)
	OutputDir string

	// Format is the default output format (empty: text)
	Format string
}

// Load reads the optional .env file and returns the resolved defaults.
func Load() (*Config, error) {
	return LoadFile(DotEnvFile)
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv(), nil
}

// FromEnv returns the defaults currently set in the environment.
func FromEnv() *Config {
	return &Config{
		OutputDir: os.Getenv(EnvOutputDir),
		Format:    os.Getenv(EnvFormat),
	}
}
