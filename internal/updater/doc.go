// Package updater regenerates the metadata of a documentation root: update
// statistics, changelog entries, the versions & releases fragment and the
// sitemap.
//
// A run executes every step even when earlier ones fail. Each step outcome is
// kept as a foundation.Result in the run Report so callers and tests can see
// exactly which parts succeeded.
package updater
