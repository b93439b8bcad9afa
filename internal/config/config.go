package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	json "github.com/goccy/go-json"
	"github.com/kelseyhightower/envconfig"
	"go.yaml.in/yaml/v3"

	"github.com/ruminaider/ric/cmd/ric/tui"
	"github.com/ruminaider/ric/internal/paths"
)

const (
	// ProjectJSONFile is the project config file read first.
	ProjectJSONFile = "ric.config.json"
	// ProjectYAMLFile is the YAML alternative, read when no JSON file exists.
	ProjectYAMLFile = "ric.config.yaml"
	// UserFile is looked up under the XDG config directories.
	UserFile = "ric/config.yaml"

	DefaultDestination = "src/components/icons.tsx"
	DefaultPageSize    = tui.DefaultPageSize

	envPrefix = "ric"
)

// Config holds the settings for one run. Environment overrides are
// RIC_DESTINATION, RIC_NODE_MODULES and RIC_PAGE_SIZE.
type Config struct {
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" split_words:"true"`
	NodeModules string `json:"nodeModules,omitempty" yaml:"nodeModules,omitempty" split_words:"true"`
	PageSize    int    `json:"pageSize,omitempty" yaml:"pageSize,omitempty" split_words:"true"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Destination: DefaultDestination,
		NodeModules: paths.DefaultNodeModules,
		PageSize:    DefaultPageSize,
	}
}

// Parse parses YAML config bytes.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ParseJSON parses ric.config.json bytes.
func ParseJSON(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Loaded is the effective config plus the layers that contributed to it.
type Loaded struct {
	Config
	Sources []string
}

// Load builds the effective config for a project rooted at dir. Layers, from
// lowest precedence: defaults, the user config file, the project config file,
// RIC_* environment variables. A missing file is skipped; a malformed one is
// an error.
func Load(dir string) (Loaded, error) {
	out := Loaded{Config: Default(), Sources: []string{"defaults"}}

	if userPath, err := xdg.SearchConfigFile(UserFile); err == nil {
		cfg, err := readFile(userPath, Parse)
		if err != nil {
			return Loaded{}, err
		}
		out.merge(cfg)
		out.Sources = append(out.Sources, userPath)
	}

	projectPath, cfg, err := readProject(dir)
	if err != nil {
		return Loaded{}, err
	}
	if projectPath != "" {
		out.merge(cfg)
		out.Sources = append(out.Sources, projectPath)
	}

	before := out.Config
	if err := envconfig.Process(envPrefix, &out.Config); err != nil {
		return Loaded{}, fmt.Errorf("reading environment: %w", err)
	}
	if out.Config != before {
		out.Sources = append(out.Sources, "environment")
	}

	return out, nil
}

// readProject returns the first project config found in dir, JSON first.
func readProject(dir string) (string, Config, error) {
	candidates := []struct {
		name  string
		parse func([]byte) (Config, error)
	}{
		{ProjectJSONFile, ParseJSON},
		{ProjectYAMLFile, Parse},
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		cfg, err := readFile(path, c.parse)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", Config{}, err
		}
		return path, cfg, nil
	}
	return "", Config{}, nil
}

func readFile(path string, parse func([]byte) (Config, error)) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge copies every set field of o over c.
func (c *Config) merge(o Config) {
	if o.Destination != "" {
		c.Destination = o.Destination
	}
	if o.NodeModules != "" {
		c.NodeModules = o.NodeModules
	}
	if o.PageSize > 0 {
		c.PageSize = o.PageSize
	}
}
