package updater

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/foundation"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

func TestWindowStart(t *testing.T) {
	now := runTime
	tests := []struct {
		name string
		prev foundation.Option[time.Time]
		want time.Time
	}{
		{"no previous run", foundation.None[time.Time](), now.Add(-24 * time.Hour)},
		{"previous run inside window", foundation.Some(now.Add(-2 * time.Hour)), now.Add(-2 * time.Hour)},
		{"previous run older than window", foundation.Some(now.Add(-72 * time.Hour)), now.Add(-24 * time.Hour)},
		{"previous run in the future", foundation.Some(now.Add(time.Hour)), now.Add(-24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowStart(now, tt.prev))
		})
	}
}

func TestRecentChanges(t *testing.T) {
	since := runTime.Add(-24 * time.Hour)
	infos := []site.FragmentInfo{
		{Name: "a.html", ModTime: runTime.Add(-time.Hour)},
		{Name: "b.html", ModTime: since},
		{Name: "versions-releases.html", ModTime: runTime},
		{Name: "c.txt", ModTime: runTime.Add(-time.Minute)},
	}
	got := RecentChanges(infos, since, "versions-releases.html")
	require.Len(t, got, 2)
	assert.Equal(t, "a.html", got[0].File)
	assert.Equal(t, "c.txt", got[1].File)
}

func TestChangelogEntryAndInsert(t *testing.T) {
	header := "# KasOS Documentation Changelog"
	entry := ChangelogEntry(runTime, []Change{
		{File: "a.html", Modified: time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)},
		{File: "b.html", Modified: time.Date(2025, 7, 2, 9, 30, 0, 500_000_000, time.UTC)},
	})
	assert.Equal(t, "\n## 2025-07-02 - Daily Update\n\n### Modified Files:\n- a.html (2025-07-02T09:00:00.000Z)\n- b.html (2025-07-02T09:30:00.500Z)\n\n---\n", entry)

	out, err := InsertEntry(NewChangelog(header)+"older\n", header, entry)
	require.NoError(t, err)
	assert.Equal(t, header+"\n"+entry+"older\n", out)

	again, err := InsertEntry(out, header, entry)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(again, header+"\n"+entry+"## 2025-07-02"))
}

func TestInsertEntry_MissingHeader(t *testing.T) {
	doc := "Intro text\n\nRelease Notes\n=============\n\nbody\n"
	out, err := InsertEntry(doc, "# KasOS Documentation Changelog", "entry")
	require.Error(t, err)
	assert.Equal(t, doc, out)

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	found, _ := ce.Context().GetString("found")
	assert.Equal(t, "# Release Notes", found)

	_, err = InsertEntry("no headings at all", "# X Changelog", "entry")
	ce, ok = errors.AsClassified(err)
	require.True(t, ok)
	_, has := ce.Context().Get("found")
	assert.False(t, has)
}

func TestFirstHeading(t *testing.T) {
	got, ok := FirstHeading([]byte("## Sub\n\n# KasOS Docs  Changelog\n\n# Second\n"))
	require.True(t, ok)
	assert.Equal(t, "# KasOS Docs  Changelog", got)

	_, ok = FirstHeading([]byte("plain text"))
	assert.False(t, ok)
}

func TestRenderSitemap(t *testing.T) {
	got, err := RenderSitemap("https://docs.kasos.io/", sections.Order{"intro", "terminal"}, runTime)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
    <url>
        <loc>https://docs.kasos.io/</loc>
        <lastmod>2025-07-02</lastmod>
        <changefreq>daily</changefreq>
        <priority>1.0</priority>
    </url>
    <url>
        <loc>https://docs.kasos.io/#intro</loc>
        <lastmod>2025-07-02</lastmod>
        <changefreq>weekly</changefreq>
        <priority>0.8</priority>
    </url>
    <url>
        <loc>https://docs.kasos.io/#terminal</loc>
        <lastmod>2025-07-02</lastmod>
        <changefreq>weekly</changefreq>
        <priority>0.8</priority>
    </url>
</urlset>
`
	assert.Equal(t, want, got)
}

func TestRenderVersions(t *testing.T) {
	cfg := config.Default()
	cfg.Releases = append(cfg.Releases, config.Release{Version: "v0.9.0", Date: "2025-01-01", Highlights: []string{"<b>beta</b>"}})

	html, err := RenderVersions(cfg, runTime)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, `<section id="versions-releases">`))
	assert.True(t, strings.HasSuffix(html, `</section>`))
	assert.Contains(t, html, "<h2>Current Version: 1.2.1</h2>")
	assert.Contains(t, html, `<span id="build-number">Loading...</span>`)
	assert.Contains(t, html, `<span id="last-updated">Loading...</span>`)
	assert.Contains(t, html, "<td><strong>v1.2.1</strong></td>\n                <td>2025-07-02</td>")
	assert.Contains(t, html, "<td>2025-07-01</td>")
	assert.Contains(t, html, "<li>Plugin marketplace</li>")
	assert.Contains(t, html, `href="https://github.com/kasos-io/kasos/releases"`)
	assert.Contains(t, html, "<li>&lt;b&gt;beta&lt;/b&gt;</li>", "highlights are escaped")
	assert.Empty(t, cfg.Releases[0].Date, "rendering must not mutate the config")

	regions, _ := sections.Scan(html)
	require.Len(t, regions, 1)
	assert.Equal(t, VersionsSectionID, regions[0].ID)
}
