package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

const combined = `<!DOCTYPE html>
<html><body><main>
<section id="intro" class="doc">
  <h1>Intro</h1>
</section>

<section class="x" id="outside-order"><p>kept</p></section>
</main></body></html>`

func writeCombined(t *testing.T, s *site.Site, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.OutputPath(), []byte(doc), 0o644))
}

func TestExtract_WritesRegionsVerbatim(t *testing.T) {
	s := site.New(t.TempDir())
	writeCombined(t, s, combined)

	report, err := New(s).Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "outside-order"}, report.Written)
	assert.Empty(t, report.Failed)
	assert.Empty(t, report.Unordered, "no order configured")

	got, err := s.LoadFragment("intro")
	require.NoError(t, err)
	assert.Equal(t, "<section id=\"intro\" class=\"doc\">\n  <h1>Intro</h1>\n</section>", got)

	got, err = s.LoadFragment("outside-order")
	require.NoError(t, err)
	assert.Equal(t, `<section class="x" id="outside-order"><p>kept</p></section>`, got)
}

func TestExtract_FlagsIDsOutsideOrder(t *testing.T) {
	s := site.New(t.TempDir())
	writeCombined(t, s, combined)

	report, err := New(s).WithOrder(sections.Order{"intro", "terminal"}).Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "outside-order"}, report.Written, "unordered ids are still written")
	assert.Equal(t, []string{"outside-order"}, report.Unordered)

	_, err = s.LoadFragment("outside-order")
	require.NoError(t, err)
}

func TestExtract_OverwritesExisting(t *testing.T) {
	s := site.New(t.TempDir())
	require.NoError(t, s.SaveFragment("intro", "stale"))
	writeCombined(t, s, `<section id="intro">fresh</section>`)

	_, err := New(s).Extract(context.Background(), "")
	require.NoError(t, err)
	got, err := s.LoadFragment("intro")
	require.NoError(t, err)
	assert.Equal(t, `<section id="intro">fresh</section>`, got)
}

func TestExtract_DuplicateIDLastWins(t *testing.T) {
	s := site.New(t.TempDir())
	writeCombined(t, s, `<section id="a">one</section><section id="a">two</section>`)

	report, err := New(s).Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, report.Written)
	got, err := s.LoadFragment("a")
	require.NoError(t, err)
	assert.Equal(t, `<section id="a">two</section>`, got)
}

func TestExtract_PerFragmentFailureContinues(t *testing.T) {
	s := site.New(t.TempDir())
	writeCombined(t, s, `<section id="../evil">x</section><section id="blocked">y</section><section id="ok">z</section>`)
	require.NoError(t, os.MkdirAll(filepath.Join(s.PartialsPath(), "blocked.html", "child"), 0o755))

	report, err := New(s).Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, report.Written)
	require.Len(t, report.Failed, 2)
	assert.Equal(t, "../evil", report.Failed[0].ID)
	assert.True(t, errors.HasCategory(report.Failed[0].Err, errors.CategoryValidation))
	assert.Equal(t, "blocked", report.Failed[1].ID)

	_, statErr := os.Stat(filepath.Join(s.Root(), "evil.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_UnreadableSourceAborts(t *testing.T) {
	s := site.New(t.TempDir())

	_, err := New(s).Extract(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryBuild))
	assert.True(t, site.IsNotExist(err))
}

func TestExtract_ExplicitSourceAndWarnings(t *testing.T) {
	s := site.New(t.TempDir())
	src := filepath.Join(t.TempDir(), "old.html")
	require.NoError(t, os.WriteFile(src, []byte(`<section id="a">A</section><section id="open">never closed`), 0o644))

	report, err := New(s).Extract(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, src, report.Source)
	assert.Equal(t, []string{"a"}, report.Written)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "open", report.Warnings[0].ID)
}
