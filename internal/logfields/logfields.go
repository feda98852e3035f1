package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySection     = "section"
	KeyPath        = "path"
	KeyFile        = "file"
	KeyStep        = "step"
	KeyRunID       = "run_id"
	KeyJobID       = "job_id"
	KeySchedule    = "schedule_name"
	KeyBuildNumber = "build_number"
	KeyCount       = "count"
	KeySizeBytes   = "size_bytes"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Section(s string) slog.Attr       { return slog.String(KeySection, s) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Step(name string) slog.Attr       { return slog.String(KeyStep, name) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func JobID(id string) slog.Attr        { return slog.String(KeyJobID, id) }
func ScheduleName(n string) slog.Attr  { return slog.String(KeySchedule, n) }
func BuildNumber(n int) slog.Attr      { return slog.Int(KeyBuildNumber, n) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func SizeBytes(n int64) slog.Attr      { return slog.Int64(KeySizeBytes, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
