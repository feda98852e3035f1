package site

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/kasdocs/internal/sections"
)

// Fixed layout of a documentation root.
const (
	PartialsDir     = "partials"
	TemplateFile    = "template.html"
	OutputFile      = "index.html"
	BuildStatsFile  = "build-stats.json"
	StatsFile       = "stats.json"
	BuildNumberFile = "build-number.txt"
	ChangelogFile   = "CHANGELOG.md"
	SitemapFile     = "sitemap.xml"
	ConfigFile      = "kasdocs.yaml"
)

// Site resolves and accesses files below a documentation root.
type Site struct {
	root string
}

// New returns a Site rooted at root. An empty root means the working directory.
func New(root string) *Site {
	if root == "" {
		root = "."
	}
	return &Site{root: filepath.Clean(root)}
}

// Root returns the cleaned root directory.
func (s *Site) Root() string { return s.root }

// Path joins elem onto the root.
func (s *Site) Path(elem ...string) string {
	return filepath.Join(append([]string{s.root}, elem...)...)
}

func (s *Site) PartialsPath() string    { return s.Path(PartialsDir) }
func (s *Site) TemplatePath() string    { return s.Path(TemplateFile) }
func (s *Site) OutputPath() string      { return s.Path(OutputFile) }
func (s *Site) BuildStatsPath() string  { return s.Path(BuildStatsFile) }
func (s *Site) StatsPath() string       { return s.Path(StatsFile) }
func (s *Site) BuildNumberPath() string { return s.Path(BuildNumberFile) }
func (s *Site) ChangelogPath() string   { return s.Path(ChangelogFile) }
func (s *Site) SitemapPath() string     { return s.Path(SitemapFile) }
func (s *Site) ConfigPath() string      { return s.Path(ConfigFile) }

// FragmentPath derives the partial path of a section id.
func (s *Site) FragmentPath(id string) (string, error) {
	if err := sections.ValidateID(id); err != nil {
		return "", err
	}
	return s.Path(PartialsDir, sections.FileName(id)), nil
}

// String implements fmt.Stringer for log output.
func (s *Site) String() string {
	return fmt.Sprintf("site(%s)", s.root)
}
