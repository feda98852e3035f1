// Package errors provides foundational, type-safe error primitives used across kasdocs.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, build, filesystem, git, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, immediate, backoff, user action)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter mapping errors to exit codes and user-facing lines
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryBuild, "cannot write output").
//		Fatal().
//		WithContext("path", outputPath).
//		Build()
package errors
