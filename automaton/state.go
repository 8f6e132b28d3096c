package automaton

import (
	"sort"
	"sync/atomic"
)

// nextStateID is the process-wide monotonic state-identity counter;
// it must stay unique across automata built concurrently, hence the
// atomic increment rather than a plain package-level int.
var nextStateID int64

// State is a node in an automaton's transition graph: a stable
// identity (for ordering/hashing), a mutable accept bit, a mutable
// number slot assigned during traversal for array indexing, and an
// ordered list of outgoing transitions. State equality is by
// reference identity, never by structure (structural equality is a
// distinct, narrower operation used only by the DAFSA builder).
type State struct {
	id          int64
	accept      bool
	number      int
	transitions []*Transition
}

func newState() *State {
	return &State{id: atomic.AddInt64(&nextStateID, 1) - 1}
}

// addTransition appends an outgoing edge. Transitions are not kept
// sorted as they're added; sortedTransitions / Automaton.reduce
// restore order and disjointness when needed.
func (s *State) addTransition(t *Transition) {
	s.transitions = append(s.transitions, t)
}

// step performs a deterministic lookup: the unique destination whose
// interval contains c, or nil. Callers that have not verified
// determinism may get an arbitrary match among overlapping
// transitions.
func (s *State) step(c int) *State {
	for _, t := range s.transitions {
		if c >= t.min && c <= t.max {
			return t.to
		}
	}
	return nil
}

// stepAll is the non-deterministic counterpart: every transition
// whose interval contains c has its destination appended to dest.
func (s *State) stepAll(c int, dest []*State) []*State {
	for _, t := range s.transitions {
		if c >= t.min && c <= t.max {
			dest = append(dest, t.to)
		}
	}
	return dest
}

// sortedTransitions returns a sorted copy of the outgoing
// transitions. When toFirst is false the order is (min, -max,
// to.number); when true it is (to.number, min, -max), with a nil
// destination sorting first.
func (s *State) sortedTransitions(toFirst bool) []*Transition {
	out := make([]*Transition, len(s.transitions))
	copy(out, s.transitions)
	sort.Sort(&transitionSorter{out, toFirst})
	return out
}

type transitionSorter struct {
	t       []*Transition
	toFirst bool
}

func (ts *transitionSorter) Len() int      { return len(ts.t) }
func (ts *transitionSorter) Swap(i, j int) { ts.t[i], ts.t[j] = ts.t[j], ts.t[i] }
func (ts *transitionSorter) Less(i, j int) bool {
	a, b := ts.t[i], ts.t[j]
	if ts.toFirst {
		an, bn := toNumber(a.to), toNumber(b.to)
		if an != bn {
			return an < bn
		}
		if a.min != b.min {
			return a.min < b.min
		}
		return a.max > b.max
	}
	if a.min != b.min {
		return a.min < b.min
	}
	if a.max != b.max {
		return a.max > b.max
	}
	return toNumber(a.to) < toNumber(b.to)
}

func toNumber(s *State) int {
	if s == nil {
		return -1
	}
	return s.number
}

// addEpsilon merges other's outgoing transitions into s and, if other
// accepts, marks s accepting. Epsilon transitions are never
// materialized as graph edges: this absorption at the call site is
// the only place an epsilon "exists".
func (s *State) addEpsilon(other *State) {
	if other.accept {
		s.accept = true
	}
	s.transitions = append(s.transitions, other.transitions...)
}
