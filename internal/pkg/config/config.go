package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the UI catalog: everything the screens show that is not data
// from the backend.
type Config struct {
	Brand       string            `yaml:"brand"`
	Departments []string          `yaml:"departments"`
	Subtitles   map[string]string `yaml:"subtitles"`
}

// Default is used when no catalog file is configured.
func Default() *Config {
	return &Config{
		Brand: "HRMS Lite",
		Departments: []string{
			"Engineering",
			"Human Resources",
			"Marketing",
			"Sales",
			"Finance",
			"Operations",
			"Design",
			"Product",
		},
		Subtitles: map[string]string{
			"/":           "Welcome back! Here's your workforce overview",
			"/employees":  "Manage your organization's workforce",
			"/attendance": "Track and manage attendance records",
		},
	}
}

// NewConfig reads the catalog at path. Missing keys fall back to Default.
func NewConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}

	c := Default()
	c.Departments = nil
	if err = yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, errors.Wrapf(err, "parsing catalog %s", path)
	}

	if len(c.Departments) == 0 {
		return nil, errors.New("catalog must list at least one department")
	}
	seen := make(map[string]struct{}, len(c.Departments))
	for _, d := range c.Departments {
		if d == "" {
			return nil, errors.New("catalog lists an empty department name")
		}
		if _, ok := seen[d]; ok {
			return nil, errors.Errorf("catalog lists department %q twice", d)
		}
		seen[d] = struct{}{}
	}

	return c, nil
}
