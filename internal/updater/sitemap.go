package updater

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// RenderSitemap returns the sitemap for baseURL: the root page first, then one
// fragment URL per topic.
func RenderSitemap(baseURL string, topics sections.Order, now time.Time) (string, error) {
	base := strings.TrimRight(baseURL, "/")
	lastMod := site.FormatDate(now)

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{Loc: base + "/", LastMod: lastMod, ChangeFreq: "daily", Priority: "1.0"})
	for _, id := range topics {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/#" + id,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "encode sitemap").Build()
	}
	return xml.Header + string(out) + "\n", nil
}

func (u *Updater) generateSitemap(now time.Time) (string, error) {
	topics := u.cfg.SitemapOrder()
	doc, err := RenderSitemap(u.cfg.Site.BaseURL, topics, now)
	if err != nil {
		return "", err
	}
	if err := u.site.WriteFile(u.site.SitemapPath(), []byte(doc)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d urls", len(topics)+1), nil
}
