package config

import "slices"

// DefaultSections is the stock KasOS topic order.
var DefaultSections = []string{
	"introduction",
	"getting-started",
	"desktop-environment",
	"window-management",
	"application-system",
	"keyboard-shortcuts",
	"customization",
	"troubleshooting",
	"text-editor",
	"dev-tools",
	"terminal",
	"file-manager",
	"kaswallet",
	"kasia-messenger",
	"settings",
	"app-development",
	"api-reference",
	"advanced-development",
	"testing-debugging",
	"deployment",
	"security",
	"architecture",
	"crypto-integration",
	"wasm-sandbox",
	"ai-integration",
	"performance",
	"contributing",
	"versions-releases",
	"support",
}

// DefaultReleases is the stock release table. The newest entry carries no date
// and renders as the day of the update run.
var DefaultReleases = []Release{
	{
		Version: "v1.2.1",
		Highlights: []string{
			"Enhanced documentation structure",
			"Added modular build system",
			"Improved daily update automation",
			"Performance optimizations",
		},
	},
	{
		Version: "v1.2.0",
		Date:    "2025-07-01",
		Highlights: []string{
			"Launched comprehensive documentation site",
			"Enhanced security features",
			"New app manager capabilities",
			"UI/UX improvements",
		},
	},
	{
		Version: "v1.1.0",
		Date:    "2025-06-15",
		Highlights: []string{
			"Integrated KasWallet for cryptocurrency management",
			"Added multi-desktop support",
			"General bug fixes and optimizations",
		},
	},
	{
		Version: "v1.0.0",
		Date:    "2025-05-01",
		Highlights: []string{
			"Initial public release of KasOS",
			"Core desktop environment and built-in apps",
			"Window management and app system",
		},
	},
}

// DefaultRoadmap is the "Coming Soon" list of the versions section.
var DefaultRoadmap = []string{
	"Enhanced AI integration features",
	"Advanced security protocols",
	"Extended cryptocurrency support",
	"Mobile-responsive interface",
	"Plugin marketplace",
}

// Default returns a fresh configuration with all defaults applied.
func Default() *Config {
	releases := make([]Release, len(DefaultReleases))
	for i, r := range DefaultReleases {
		r.Highlights = slices.Clone(r.Highlights)
		releases[i] = r
	}
	return &Config{
		Site: SiteConfig{
			Title:       "KasOS Documentation",
			BaseURL:     "https://docs.kasos.io",
			ReleasesURL: "https://github.com/kasos-io/kasos/releases",
		},
		Sections:  slices.Clone(DefaultSections),
		Changelog: ChangelogConfig{Title: "KasOS Documentation"},
		Version: VersionConfig{
			PackageJSON: "../../package.json",
			Current:     "1.2.1",
		},
		Releases: releases,
		Roadmap:  slices.Clone(DefaultRoadmap),
		Log:      LogConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// applyDefaults fills fields a config file explicitly blanked.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Site.Title == "" {
		cfg.Site.Title = def.Site.Title
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = def.Site.BaseURL
	}
	if cfg.Changelog.Title == "" {
		cfg.Changelog.Title = def.Changelog.Title
	}
	if cfg.Version.PackageJSON == "" {
		cfg.Version.PackageJSON = def.Version.PackageJSON
	}
	if cfg.Version.Current == "" {
		cfg.Version.Current = def.Version.Current
	}
	cfg.Log.Level = NormalizeLogLevel(string(cfg.Log.Level))
	cfg.Log.Format = NormalizeLogFormat(string(cfg.Log.Format))
}
