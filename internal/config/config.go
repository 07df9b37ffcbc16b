// Package config holds the diagnostic and window settings of the application.
//
// The access token is deliberately absent: it is typed in every run and lives
// only in session state.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// PeopleURL is the HiBob endpoint returning the employee directory.
	PeopleURL = "https://api.hibob.com/v1/people"

	// EnvConfigFile points at an optional YAML overlay.
	EnvConfigFile = "EMPLOYEE_LIST_CONFIG"

	MinWindowWidth  = 400
	MinWindowHeight = 600
)

type Config struct {
	APIURL       string  `yaml:"api_url"`
	LogLevel     string  `yaml:"log_level"`
	JSONLogs     bool    `yaml:"json_logs"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

func Default() Config {
	return Config{
		APIURL:       PeopleURL,
		LogLevel:     "info",
		WindowWidth:  MinWindowWidth,
		WindowHeight: MinWindowHeight,
	}
}

// Load builds the configuration from defaults, the optional YAML file named by
// EMPLOYEE_LIST_CONFIG and finally the LOG_LEVEL/DEBUG environment overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: read %s", path)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, errors.Wrapf(err, "config: parse %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Parse overlays YAML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		c.LogLevel = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") == "1":
		c.LogLevel = "debug"
	}
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = PeopleURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	// The window never goes below the minimum form size.
	if c.WindowWidth < MinWindowWidth {
		c.WindowWidth = MinWindowWidth
	}
	if c.WindowHeight < MinWindowHeight {
		c.WindowHeight = MinWindowHeight
	}
}
