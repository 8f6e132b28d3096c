package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// sortedIntSet is a small multiset of (NFA) state numbers with a
// refcount per member, used by determinize's subset construction to
// track which original states are "currently open" while sweeping
// start points.
type sortedIntSet struct {
	counts map[int]int
}

func newSortedIntSet() *sortedIntSet {
	return &sortedIntSet{counts: map[int]int{}}
}

func (s *sortedIntSet) incr(n int) {
	s.counts[n]++
}

func (s *sortedIntSet) decr(n int) {
	s.counts[n]--
	if s.counts[n] == 0 {
		delete(s.counts, n)
	}
}

func (s *sortedIntSet) isEmpty() bool { return len(s.counts) == 0 }

// sortedValues returns the member state numbers in ascending order.
func (s *sortedIntSet) sortedValues() []int {
	vs := make([]int, 0, len(s.counts))
	for v := range s.counts {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// frozenIntSet is an immutable snapshot of a sortedIntSet's current
// membership, paired with the (already allocated) destination DFA
// state it maps to. It is hashed by its sorted member list so
// determinize can recognize when a subset of NFA states has already
// been turned into a DFA state.
type frozenIntSet struct {
	values []int
	state  *State
}

func (s *sortedIntSet) freeze(state *State) *frozenIntSet {
	return &frozenIntSet{values: s.sortedValues(), state: state}
}

func (f *frozenIntSet) key() string {
	var b strings.Builder
	for i, v := range f.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
