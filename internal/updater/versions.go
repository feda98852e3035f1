package updater

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// VersionsSectionID is the fragment owned by the versions step.
const VersionsSectionID = "versions-releases"

var versionsFileName = sections.FileName(VersionsSectionID)

//go:embed templates/*.tmpl
var templateFS embed.FS

var versionsTemplate = template.Must(template.ParseFS(templateFS, "templates/versions.html.tmpl"))

type versionsData struct {
	Current     string
	Releases    []config.Release
	ReleasesURL string
	Roadmap     []string
}

// RenderVersions renders the versions & releases fragment. Releases without a
// date are shown with today's date.
func RenderVersions(cfg *config.Config, now time.Time) (string, error) {
	data := versionsData{
		Current:     cfg.Version.Current,
		ReleasesURL: cfg.Site.ReleasesURL,
		Roadmap:     cfg.Roadmap,
	}
	today := site.FormatDate(now)
	for _, r := range cfg.Releases {
		if r.Date == "" {
			r.Date = today
		}
		data.Releases = append(data.Releases, r)
	}

	var buf bytes.Buffer
	if err := versionsTemplate.ExecuteTemplate(&buf, "versions.html.tmpl", data); err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "render versions section").Build()
	}
	return strings.TrimSpace(buf.String()), nil
}

func (u *Updater) updateVersionsSection(now time.Time) (string, error) {
	html, err := RenderVersions(u.cfg, now)
	if err != nil {
		return "", err
	}
	if err := u.site.SaveFragment(VersionsSectionID, html); err != nil {
		return "", err
	}
	return "versions section updated", nil
}
