package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// FallbackVersion is reported when no package.json version can be read.
const FallbackVersion = "1.0.0"

// BuildStats is the record written to build-stats.json after each build.
type BuildStats struct {
	BuildTime     string `json:"buildTime"`
	SectionsCount int    `json:"sectionsCount"`
	Version       string `json:"version"`
	Size          string `json:"size"`
}

// NewBuildStats derives the record. sectionsCount is the length of the
// canonical order, not the number of fragments found.
func NewBuildStats(now time.Time, sectionsCount int, version string, size int64, sizeErr error) BuildStats {
	s := site.UnknownSize
	if sizeErr == nil {
		s = site.FormatKB(size)
	}
	return BuildStats{
		BuildTime:     site.FormatTimestamp(now),
		SectionsCount: sectionsCount,
		Version:       version,
		Size:          s,
	}
}

// ReadVersion returns the "version" field of the package.json at path, or
// FallbackVersion when the file is missing, malformed or has no version.
func ReadVersion(path string) string {
	if path == "" {
		return FallbackVersion
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return FallbackVersion
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.Version == "" {
		return FallbackVersion
	}
	return pkg.Version
}
