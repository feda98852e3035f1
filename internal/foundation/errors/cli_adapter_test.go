package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("duplicate section id").Build(), expected: 2},
		{name: "config error", err: ConfigError("bad yaml").Build(), expected: 7},
		{name: "git error", err: GitError("no repository").Build(), expected: 8},
		{name: "build error", err: BuildError("output unwritable").Build(), expected: 11},
		{name: "filesystem error", err: FileSystemError("read failed").Build(), expected: 11},
		{name: "wrapped build error", err: fmt.Errorf("build: %w", BuildError("x").Build()), expected: 11},
		{name: "internal error", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := WrapError(cause, CategoryBuild, "cannot write index.html").Fatal().Build()

	quiet := NewCLIErrorAdapter(false, nil)
	if got := quiet.FormatError(err); got != "Error: cannot write index.html: permission denied" {
		t.Errorf("unexpected quiet format: %q", got)
	}

	loud := NewCLIErrorAdapter(true, nil)
	if got := loud.FormatError(err); !strings.Contains(got, "[build:fatal]") {
		t.Errorf("verbose format should include classification, got %q", got)
	}

	if got := quiet.FormatError(&customError{msg: "plain"}); got != "Error: plain" {
		t.Errorf("unexpected unclassified format: %q", got)
	}
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := NewCLIErrorAdapter(false, logger).WithOutput(&out)

	if code := adapter.Handle(nil); code != 0 {
		t.Fatalf("nil error should map to 0, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("nil error should print nothing, got %q", out.String())
	}

	code := adapter.Handle(BuildError("template unreadable").Build())
	if code != 11 {
		t.Fatalf("expected exit code 11, got %d", code)
	}
	if !strings.Contains(out.String(), "template unreadable") {
		t.Fatalf("expected message on output, got %q", out.String())
	}
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
