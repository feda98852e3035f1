package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runUpdate(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr, func(int) {})
	return code, stdout.String(), stderr.String()
}

func TestRun_CounterAfterRepeatedRuns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "partials"), 0o755))

	for i := 0; i < 3; i++ {
		code, out, errOut := runUpdate(t, context.Background(), "--root", root)
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, "Daily update completed successfully")
	}

	data, err := os.ReadFile(filepath.Join(root, "build-number.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))

	var stats struct {
		BuildNumber int `json:"buildNumber"`
	}
	data, err = os.ReadFile(filepath.Join(root, "stats.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &stats))
	assert.Equal(t, 3, stats.BuildNumber)
}

func TestRun_StepFailureStillExitsZero(t *testing.T) {
	root := t.TempDir()
	code, out, _ := runUpdate(t, context.Background(), "--root", root)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "⚠ changes:")
	assert.Contains(t, out, "✓ sitemap:")
	assert.True(t, strings.Contains(out, "failed step(s)"))
}

func TestRun_InvalidConfigExitsNonZero(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "kasdocs.yaml"), []byte("site:\n  base_url: nope\n"), 0o600))
	code, _, errOut := runUpdate(t, context.Background(), "--root", root)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "absolute URL")
}

func TestRun_CronStopsOnCancel(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	code, out, errOut := runUpdate(t, ctx, "--root", root, "--cron", "0 6 * * *")
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Scheduling documentation updates (0 6 * * *)")

	code, _, _ = runUpdate(t, context.Background(), "--root", root, "--cron", "bogus")
	assert.Equal(t, 7, code)
}

func TestRun_EveryRepeatsUntilCanceled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "partials"), 0o755))
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	code, out, errOut := runUpdate(t, ctx, "--root", root, "--every", "50ms")
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Scheduling documentation updates (every 50ms)")
	assert.Contains(t, out, "✓ stats:")
}

func TestRun_ScheduleFlagsConflict(t *testing.T) {
	root := t.TempDir()
	code, _, _ := runUpdate(t, context.Background(), "--root", root, "--cron", "0 6 * * *", "--every", "1h")
	assert.Equal(t, 2, code)

	code, _, errOut := runUpdate(t, context.Background(), "--root", root, "--every=-1s")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "interval must be positive")
}

func TestRun_MetricsWriteFailureIsLogged(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "partials"), 0o755))
	blocked := t.TempDir()

	code, _, errOut := runUpdate(t, context.Background(), "--root", root, "--metrics-file", blocked)
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Failed to write metrics file")
	assert.Contains(t, errOut, "error=")
}
