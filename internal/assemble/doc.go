// Package assemble builds the combined documentation page from the partials
// of a site root.
//
// Fragments are loaded in canonical order, trimmed, joined with a blank line
// and substituted for the single {{SECTIONS_CONTENT}} placeholder of the
// template. A missing fragment is an omission, not an error. Only an
// unreadable template or an unwritable output aborts a build; the
// build-stats.json record written afterwards is best-effort.
package assemble
