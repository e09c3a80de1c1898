// Package lazystr provides strings whose concatenation, repetition, and
// slicing are O(1) descriptions instead of copies.
//
// A Str is backed by one of four shapes: a flat codepoint array stored
// at the narrowest sufficient width, a stepped window over another
// string, a balanced join of two strings, or a string repeated n times.
// Searches, membership scans, and classification predicates walk these
// shapes directly; a repeated string is searched in at most two passes
// over its base no matter how large the count.
//
// Representations can be flattened explicitly with Collapse, or
// automatically through the process-wide threshold installed with
// SetOptimizeThreshold. Equality, ordering, and hashing see only
// content, never shape.
package lazystr
