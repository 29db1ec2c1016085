package classifier

import (
	"sync"

	"github.com/dshills/partmatch-mcp/internal/provider"
	"github.com/dshills/partmatch-mcp/internal/similarity"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// EquivalenceSet is an in-memory, order-insensitive set of documented
// equivalent MPN pairs. Pairs typically come from the cross-reference store at
// startup; Add is safe to call while the set is being queried.
type EquivalenceSet struct {
	mu    sync.RWMutex
	pairs map[string]struct{}
}

// NewEquivalenceSet creates an empty set.
func NewEquivalenceSet() *EquivalenceSet {
	return &EquivalenceSet{pairs: make(map[string]struct{})}
}

// Add records the pair in both orders.
func (s *EquivalenceSet) Add(mpnA, mpnB string) {
	key := pairKey(mpnA, mpnB)
	if key == "" {
		return
	}
	s.mu.Lock()
	s.pairs[key] = struct{}{}
	s.mu.Unlock()
}

// IsEquivalent implements similarity.CrossRef.
func (s *EquivalenceSet) IsEquivalent(mpnA, mpnB string) bool {
	key := pairKey(mpnA, mpnB)
	s.mu.RLock()
	_, ok := s.pairs[key]
	s.mu.RUnlock()
	return ok
}

// Len returns the number of recorded pairs.
func (s *EquivalenceSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pairs)
}

func pairKey(mpnA, mpnB string) string {
	a, b := types.NormalizeMPN(mpnA), types.NormalizeMPN(mpnB)
	if a == "" || b == "" {
		return ""
	}
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// providerCrossRef answers equivalence from the providers' documented
// replacement lists.
type providerCrossRef struct {
	providers []provider.RuleProvider
}

func (c providerCrossRef) IsEquivalent(mpnA, mpnB string) bool {
	for _, p := range c.providers {
		if p.IsOfficialReplacement(mpnA, mpnB) {
			return true
		}
	}
	return false
}

// multiCrossRef is the union of several cross-reference sources.
type multiCrossRef []similarity.CrossRef

func (m multiCrossRef) IsEquivalent(mpnA, mpnB string) bool {
	for _, x := range m {
		if x != nil && x.IsEquivalent(mpnA, mpnB) {
			return true
		}
	}
	return false
}
