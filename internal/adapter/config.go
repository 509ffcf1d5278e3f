package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	m "github.com/leriomaggio/pyre-check/internal/model"
)

// configFileName is searched for from the start directory upward.
const configFileName = "pyre.toml"

type configFile struct {
	Analysis analysisConfig `toml:"analysis"`
	Scan     scanConfig     `toml:"scan"`
}

type analysisConfig struct {
	Infer   bool `toml:"infer"`
	Strict  bool `toml:"strict"`
	Declare bool `toml:"declare"`
}

type scanConfig struct {
	Exclude []string `toml:"exclude"`
	Reports string   `toml:"reports"`
}

// ConfigLoader reads the global analysis configuration.
type ConfigLoader interface {
	// Load finds and decodes pyre.toml walking up from startDir. The boolean
	// reports whether a file was found; absence is not an error.
	Load(startDir m.Path) (m.Configuration, bool, error)
}

// TOMLConfigLoader loads configuration from pyre.toml files on disk.
type TOMLConfigLoader struct{}

// NewTOMLConfigLoader constructs a TOMLConfigLoader.
func NewTOMLConfigLoader() *TOMLConfigLoader {
	return &TOMLConfigLoader{}
}

// Load walks up from startDir looking for pyre.toml and decodes the first one
// found.
func (l *TOMLConfigLoader) Load(startDir m.Path) (m.Configuration, bool, error) {
	path, ok, err := findConfigFile(string(startDir))
	if err != nil || !ok {
		return m.Configuration{}, false, err
	}

	var decoded configFile
	if _, err := toml.DecodeFile(path, &decoded); err != nil {
		return m.Configuration{}, false, fmt.Errorf("decoding %s: %w", path, err)
	}

	return m.Configuration{
		Infer:   decoded.Analysis.Infer,
		Strict:  decoded.Analysis.Strict,
		Declare: decoded.Analysis.Declare,
		Exclude: decoded.Scan.Exclude,
		Reports: m.Path(decoded.Scan.Reports),
	}, true, nil
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}
