package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
)

// Config represents the site configuration. Every field has a default, so a
// site root without kasdocs.yaml builds exactly like the stock KasOS docs.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Sections  []string        `yaml:"sections,omitempty"`
	Sitemap   SitemapConfig   `yaml:"sitemap"`
	Changelog ChangelogConfig `yaml:"changelog"`
	Version   VersionConfig   `yaml:"version"`
	Releases  []Release       `yaml:"releases,omitempty"`
	Roadmap   []string        `yaml:"roadmap,omitempty"`
	Log       LogConfig       `yaml:"log"`
}

// SiteConfig holds identity of the published site.
type SiteConfig struct {
	Title       string `yaml:"title"`
	BaseURL     string `yaml:"base_url"`
	ReleasesURL string `yaml:"releases_url,omitempty"`
}

// SitemapConfig lists the topics published in sitemap.xml. Empty means the
// canonical section order.
type SitemapConfig struct {
	Sections []string `yaml:"sections,omitempty"`
}

// ChangelogConfig controls the changelog header "# <Title> Changelog".
type ChangelogConfig struct {
	Title string `yaml:"title"`
}

// VersionConfig tells where the product version comes from.
type VersionConfig struct {
	// PackageJSON is resolved relative to the site root.
	PackageJSON string `yaml:"package_json"`
	// Current is the version shown in the versions & releases section.
	Current string `yaml:"current"`
}

// Release is one row of the versions & releases table. An empty Date renders as today.
type Release struct {
	Version    string   `yaml:"version"`
	Date       string   `yaml:"date,omitempty"`
	Highlights []string `yaml:"highlights,omitempty"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Order returns the canonical section order.
func (c *Config) Order() sections.Order {
	return sections.Order(c.Sections).Clone()
}

// SitemapOrder returns the sitemap topics, falling back to the canonical order.
func (c *Config) SitemapOrder() sections.Order {
	if len(c.Sitemap.Sections) == 0 {
		return c.Order()
	}
	return sections.Order(c.Sitemap.Sections).Clone()
}

// ChangelogHeader returns the header line new entries are inserted under.
func (c *Config) ChangelogHeader() string {
	return "# " + c.Changelog.Title + " Changelog"
}

// PackageJSONPath resolves the version source against root.
func (c *Config) PackageJSONPath(root string) string {
	if filepath.IsAbs(c.Version.PackageJSON) {
		return c.Version.PackageJSON
	}
	return filepath.Join(root, c.Version.PackageJSON)
}

// Load reads the configuration at configPath. A missing file yields the
// defaults; environment overrides and validation apply either way.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(configPath))
	switch {
	case err == nil:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
				Fatal().
				WithContext("path", configPath).
				Build()
		}
	case os.IsNotExist(err):
		// optional
	default:
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath picks the config file: an explicit path wins, otherwise
// kasdocs.yaml inside root.
func ResolvePath(root, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(root, "kasdocs.yaml")
}
