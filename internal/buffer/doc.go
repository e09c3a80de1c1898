// Package buffer implements the representation layer under lazystr: a
// tagged union of codepoint leaves, stepped views, balanced concat
// nodes, and repeat nodes, plus the structural search algorithms that
// walk those shapes without materializing them.
//
// Buffers are immutable in content and shared freely. Collapse is the
// one representational mutation: it swaps a composite for an
// equivalent leaf in place, which every sharer then benefits from.
package buffer
