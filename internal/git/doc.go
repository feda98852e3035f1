// Package git reads version-control metadata for a documentation root.
//
// The root does not need to be the repository top level: parent directories
// are searched for the .git directory, the same way the git CLI does.
package git
