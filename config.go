package presentvk

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML document driving a Renderer and its window.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version uint32 `yaml:"version"`
	} `yaml:"app"`
	Window struct {
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
		Title     string `yaml:"title"`
		Resizable bool   `yaml:"resizable"`
	} `yaml:"window"`
	Shaders struct {
		Vertex   string `yaml:"vertex"`
		Fragment string `yaml:"fragment"`
	} `yaml:"shaders"`
	// Validation enables every layer whose name contains "validation" and
	// every extension whose name contains "debug".
	Validation      bool       `yaml:"validation"`
	DebugReport     string     `yaml:"debug_report"`
	PreferredDevice string     `yaml:"preferred_device"`
	ClearColor      [4]float32 `yaml:"clear_color,flow"`
	Log             struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	var c Config
	c.App.Name = "triangle"
	c.App.Version = 1
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "presentvk"
	c.Shaders.Vertex = DefaultVertexShaderPath
	c.Shaders.Fragment = DefaultFragmentShaderPath
	c.Validation = true
	c.DebugReport = DebugReportVerbose.String()
	c.ClearColor = DefaultClearColor
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// LoadConfig reads a YAML file over DefaultConfig, so omitted keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no renderer could start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("both shader paths are required")
	}
	if _, err := ParseDebugReportMode(c.DebugReport); err != nil {
		return errors.WithStack(err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
