// SPDX-License-Identifier: MIT
//
// Package bounds implements the per-slot lower/upper bound store. A
// slot is an integer in [0, m+n) identifying a structural or slack
// variable; bounds on structural variables are never set (they are
// unbounded), so the store is a pair of partial mappings rather than a
// dense array indexed by slot.
package bounds

import "github.com/katalvlaran/lpsimplex/rational"

// Store holds two partial slot -> rational.Q mappings: lower and upper
// bounds. The zero value is an empty store, ready to use.
type Store struct {
	lower map[int]rational.Q
	upper map[int]rational.Q
}

// New returns an empty Store.
func New() *Store {
	return &Store{lower: make(map[int]rational.Q), upper: make(map[int]rational.Q)}
}

// GetLower returns the lower bound of slot k and whether one is set.
// A missing lower bound means "no constraint" — callers must check the
// boolean rather than trust a zero-value rational.Q, which resolves the
// open question about treating an absent key as unbounded.
// Complexity: O(1).
func (s *Store) GetLower(k int) (rational.Q, bool) {
	v, ok := s.lower[k]
	return v, ok
}

// GetUpper returns the upper bound of slot k and whether one is set.
// Complexity: O(1).
func (s *Store) GetUpper(k int) (rational.Q, bool) {
	v, ok := s.upper[k]
	return v, ok
}

// SetLower records a lower bound for slot k.
// Complexity: O(1).
func (s *Store) SetLower(k int, v rational.Q) {
	if s.lower == nil {
		s.lower = make(map[int]rational.Q)
	}
	s.lower[k] = v
}

// SetUpper records an upper bound for slot k.
// Complexity: O(1).
func (s *Store) SetUpper(k int, v rational.Q) {
	if s.upper == nil {
		s.upper = make(map[int]rational.Q)
	}
	s.upper[k] = v
}

// SetEqual records both bounds of slot k to the same value v, the
// encoding an equality constraint uses on its slack.
// Complexity: O(1).
func (s *Store) SetEqual(k int, v rational.Q) {
	s.SetLower(k, v)
	s.SetUpper(k, v)
}

// Within reports whether v respects slot k's bounds: any bound that is
// not set imposes no constraint on that side.
// Complexity: O(1).
func (s *Store) Within(k int, v rational.Q) bool {
	if lo, ok := s.GetLower(k); ok && v.LessThan(lo) {
		return false
	}
	if hi, ok := s.GetUpper(k); ok && v.GreaterThan(hi) {
		return false
	}
	return true
}
