package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kasdocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Len(t, cfg.Sections, 29)
	assert.Equal(t, "introduction", cfg.Sections[0])
	assert.Equal(t, "support", cfg.Sections[28])
	assert.Equal(t, cfg.Order(), cfg.SitemapOrder())
	assert.Equal(t, "# KasOS Documentation Changelog", cfg.ChangelogHeader())
	assert.Equal(t, "https://docs.kasos.io", cfg.Site.BaseURL)
	assert.Equal(t, "1.2.1", cfg.Version.Current)
	require.Len(t, cfg.Releases, 4)
	assert.Empty(t, cfg.Releases[0].Date)
	assert.Equal(t, "2025-05-01", cfg.Releases[3].Date)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
}

func TestLoad_OverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("KASDOCS_TEST_BASE", "https://docs.example.org")
	path := writeConfig(t, `
site:
  title: Example Docs
  base_url: ${KASDOCS_TEST_BASE}
sections: [intro, terminal]
sitemap:
  sections: [intro]
changelog:
  title: Example
releases:
  - version: v2.0.0
    date: "2026-01-02"
    highlights: [Rewrite]
log:
  level: DEBUG
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.org", cfg.Site.BaseURL)
	assert.Equal(t, []string{"intro", "terminal"}, []string(cfg.Order()))
	assert.Equal(t, []string{"intro"}, []string(cfg.SitemapOrder()))
	assert.Equal(t, "# Example Changelog", cfg.ChangelogHeader())
	require.Len(t, cfg.Releases, 1)
	assert.Equal(t, "v2.0.0", cfg.Releases[0].Version)
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
	// untouched keys keep defaults
	assert.Equal(t, "1.2.1", cfg.Version.Current)
	assert.Equal(t, "../../package.json", cfg.Version.PackageJSON)
}

func TestLoad_EnvOverridesLogging(t *testing.T) {
	t.Setenv(EnvLogLevel, "warning")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		category errors.ErrorCategory
		contains string
	}{
		{"duplicate section", "sections: [a, b, a]\n", errors.CategoryValidation, "duplicate section id"},
		{"unsafe section", "sections: [\"..\"]\n", errors.CategoryValidation, "relative path"},
		{"unsafe sitemap section", "sitemap:\n  sections: [\"a/b\"]\n", errors.CategoryValidation, "path separator"},
		{"relative base url", "site:\n  base_url: docs.kasos.io\n", errors.CategoryValidation, "absolute URL"},
		{"release without version", "releases:\n  - date: \"2025-01-01\"\n", errors.CategoryValidation, "version is required"},
		{"malformed yaml", "sections: [a\n", errors.CategoryConfig, "unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, tt.category), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDefault_IsIndependentCopy(t *testing.T) {
	a := Default()
	a.Sections[0] = "changed"
	a.Releases[0].Highlights[0] = "changed"

	b := Default()
	assert.Equal(t, "introduction", b.Sections[0])
	assert.Equal(t, "Enhanced documentation structure", b.Releases[0].Highlights[0])
}

func TestPackageJSONPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/srv", "site", "..", "..", "package.json"), cfg.PackageJSONPath(filepath.Join("/srv", "site")))

	cfg.Version.PackageJSON = "/opt/app/package.json"
	assert.Equal(t, "/opt/app/package.json", cfg.PackageJSONPath("/srv/site"))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "kasdocs.yaml"), ResolvePath("root", ""))
	assert.Equal(t, "other.yaml", ResolvePath("root", "other.yaml"))
}

func TestNormalizeLogging(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel(" Debug "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, LogLevelError, NormalizeLogLevel("error"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("logfmt"))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: LogLevelInfo, Format: LogFormatJSON}, false)
	logger.Debug("hidden")
	logger.Info("shown", "section", "intro")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler expected: %q", out)
	assert.Contains(t, out, `"section":"intro"`)

	buf.Reset()
	logger = NewLogger(&buf, LogConfig{Level: LogLevelInfo, Format: LogFormatText}, true)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	assert.Empty(t, LoadEnvFiles())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("KASDOCS_TEST_FROM_FILE=local\n"), 0o600))
	t.Setenv("KASDOCS_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("KASDOCS_TEST_FROM_FILE"))
	assert.Equal(t, ".env.local", LoadEnvFiles())
	assert.Equal(t, "local", os.Getenv("KASDOCS_TEST_FROM_FILE"))

	t.Setenv("KASDOCS_TEST_KEEP", "process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KASDOCS_TEST_KEEP=file\n"), 0o600))
	assert.Equal(t, ".env", LoadEnvFiles())
	assert.Equal(t, "process", os.Getenv("KASDOCS_TEST_KEEP"), "process env must win")
}
