package updater

import (
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// ChangelogEntry renders the dated block inserted for one run.
func ChangelogEntry(now time.Time, changes []Change) string {
	lines := make([]string, len(changes))
	for i, c := range changes {
		lines[i] = fmt.Sprintf("- %s (%s)", c.File, site.FormatTimestamp(c.Modified))
	}
	return fmt.Sprintf("\n## %s - Daily Update\n\n### Modified Files:\n%s\n\n---\n",
		site.FormatDate(now), strings.Join(lines, "\n"))
}

// NewChangelog returns the content of a changelog that has no entries yet.
func NewChangelog(header string) string {
	return header + "\n\n"
}

// InsertEntry places entry directly below header, which must be followed by a
// blank line. Newer entries end up above older ones.
func InsertEntry(changelog, header, entry string) (string, error) {
	anchor := header + "\n\n"
	if !strings.Contains(changelog, anchor) {
		err := errors.MetadataError("changelog header not found").
			WithContext("expected", header)
		if found, ok := FirstHeading([]byte(changelog)); ok {
			err = err.WithContext("found", found)
		}
		return changelog, err.Build()
	}
	return strings.Replace(changelog, anchor, header+"\n"+entry, 1), nil
}

// FirstHeading returns the first level-1 ATX or setext heading of a markdown
// document, rendered as "# <text>".
func FirstHeading(source []byte) (string, bool) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var found string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		lines := h.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(source))
		}
		found = "# " + strings.TrimSpace(b.String())
		return ast.WalkStop, nil
	})
	return found, found != ""
}

func (u *Updater) logChanges(now time.Time, changes []Change) error {
	header := u.cfg.ChangelogHeader()
	path := u.site.ChangelogPath()

	var existing string
	data, err := u.site.ReadFile(path)
	switch {
	case err == nil:
		existing = string(data)
	case site.IsNotExist(err):
		u.logger.Info("Creating changelog", logfields.Path(path))
		existing = NewChangelog(header)
	default:
		return err
	}

	updated, err := InsertEntry(existing, header, ChangelogEntry(now, changes))
	if err != nil {
		return err
	}
	if err := u.site.WriteFile(path, []byte(updated)); err != nil {
		return err
	}
	u.logger.Info("Changelog updated", logfields.Path(path), logfields.Count(len(changes)))
	return nil
}
