package foundation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	last := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)

	some := Some(last)
	assert.True(t, some.IsSome())
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, last, v)
	assert.Equal(t, last, some.UnwrapOr(time.Time{}))

	none := None[time.Time]()
	assert.True(t, none.IsNone())
	assert.Equal(t, "None", none.String())
	assert.Equal(t, last, none.UnwrapOr(last))

	after := func(t time.Time) bool { return t.After(last.Add(-time.Hour)) }
	assert.True(t, some.Filter(after).IsSome())
	assert.True(t, Some(last.Add(-2*time.Hour)).Filter(after).IsNone())

	assert.True(t, FromTupleOption(3, nil).IsSome())
	assert.True(t, FromTupleOption(0, errors.New("missing")).IsNone())
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]int{"Debug": 1, "info": 2, "warning": 3, "warn": 3}, 2)

	assert.Equal(t, 1, n.Normalize("  DEBUG "))
	assert.Equal(t, 3, n.Normalize("warning"))
	assert.Equal(t, 2, n.Normalize("verbose"))
	assert.Equal(t, []string{"debug", "info", "warn", "warning"}, n.Keys())

	_, err := n.NormalizeWithError("verbose")
	assert.ErrorContains(t, err, `invalid value "verbose"`)
	v, err := n.NormalizeWithError("Warn")
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}
