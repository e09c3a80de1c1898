package lazystr

import (
	"sync/atomic"

	"github.com/dshills/lazystr/internal/buffer"
)

// optimizeThreshold is the process-global collapse policy. Composite
// results strictly shorter than the threshold are flattened as soon as
// they are built. Zero or negative disables the policy.
var optimizeThreshold atomic.Int64

// SetOptimizeThreshold installs the automatic collapse threshold and
// returns the previous value. A composite result with fewer codepoints
// than the threshold is flattened on construction; results at or above
// it stay lazy. Any value at or below zero disables automatic
// collapsing.
func SetOptimizeThreshold(n int) int {
	return int(optimizeThreshold.Swap(int64(n)))
}

// OptimizeThreshold returns the current automatic collapse threshold.
func OptimizeThreshold() int {
	return int(optimizeThreshold.Load())
}

// Collapse flattens the string into contiguous storage in place. Flat
// strings are left untouched. Strings sharing this one's representation
// observe the flattening, not a content change.
func (s *Str) Collapse() {
	buffer.Collapse(s.buf)
}

// Optimize applies the threshold policy to the string: it collapses
// when the policy is enabled and the string is strictly shorter than
// the threshold, and otherwise does nothing.
func (s *Str) Optimize() {
	s.maybeCollapse()
}

func (s *Str) maybeCollapse() {
	if s.buf.IsLeaf() {
		return
	}
	t := optimizeThreshold.Load()
	if t > 0 && int64(s.buf.Len()) < t {
		buffer.Collapse(s.buf)
	}
}
