// Package site is the single owner of a documentation root on disk.
//
// Every file the build tools read or write (partials, template, combined
// output, stats records, build counter, changelog, sitemap) is reached through
// a Site so path rules live in one place. Writes go to a temporary file in the
// target directory and are renamed over the destination.
package site
