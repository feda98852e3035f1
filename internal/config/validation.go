package config

import (
	"fmt"
	"net/url"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
)

// Validate checks the section lists, the base URL and the release table.
func Validate(cfg *Config) error {
	if err := sections.Order(cfg.Sections).Validate(); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid sections").Fatal().Build()
	}
	if err := sections.Order(cfg.Sitemap.Sections).Validate(); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid sitemap.sections").Fatal().Build()
	}
	u, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ValidationError(fmt.Sprintf("site.base_url must be an absolute URL, got %q", cfg.Site.BaseURL)).Build()
	}
	for i, r := range cfg.Releases {
		if r.Version == "" {
			return errors.ValidationError(fmt.Sprintf("releases[%d]: version is required", i)).Build()
		}
	}
	return nil
}
