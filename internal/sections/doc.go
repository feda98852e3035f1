// Package sections models documentation topics: the Topic Identifier rules, the
// Canonical Order that fixes their position in the combined document, and the
// tokenizer that recovers tagged section regions from an assembled page.
//
// A tagged region starts at a <section> start tag carrying an id attribute and
// ends at the first following </section> end tag. Regions never nest: a second
// <section> start tag inside an open region is kept as content and reported as
// a Warning. Scanning is a tokenizer pass, not a tree parse, so the recovered
// markup is the exact byte span of the input.
package sections
