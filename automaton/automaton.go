package automaton

import "sort"

// Options threads per-call mutation/minimization settings through an
// operation's call graph instead of relying on process-wide toggles.
// Zero value is the default: both false.
type Options struct {
	// AllowMutation lets an operation mutate its input automata in
	// place instead of cloning them first.
	AllowMutation bool
	// MinimizeAlways runs minimize() at the end of every operation
	// that may produce a non-minimal automaton.
	MinimizeAlways bool
	// InfoStream, if set, receives a state/transition-count message
	// from determinize and minimize when they build a result.
	// determinize sends none for an input already marked
	// deterministic, and minimize sends none when its input
	// determinizes to the single-state any-string automaton. Nil
	// disables tracing entirely.
	InfoStream InfoStream
}

// Automaton is a finite-state machine over character-interval
// transitions: non-deterministic unless Deterministic is set. The
// deterministic flag is a conservative guarantee from whoever
// produced the automaton ("no epsilon transitions, no overlapping
// intervals per state") -- false is always safe, true enables the
// fast single-path Run.
type Automaton struct {
	initial       *State
	deterministic bool

	// singleton holds the accepted string when this automaton is a
	// fast-path singleton: a language of exactly one string,
	// represented without a materialized state graph. All operations
	// transparently expand it (see expandSingleton) before touching
	// structure.
	singleton *[]rune

	hashCode int
}

func newAutomaton(initial *State) *Automaton {
	return &Automaton{initial: initial, deterministic: true}
}

func newSingletonAutomaton(s []rune) *Automaton {
	cp := append([]rune(nil), s...)
	return &Automaton{deterministic: true, singleton: &cp}
}

func (a *Automaton) isSingleton() bool { return a.singleton != nil }

// expandSingleton realizes a singleton automaton into a linear chain
// of states, one transition per character, the last one accepting,
// and clears the singleton field. A no-op on a non-singleton.
func (a *Automaton) expandSingleton() {
	if !a.isSingleton() {
		return
	}
	s := newState()
	a.initial = s
	for _, c := range *a.singleton {
		next := newState()
		s.addTransition(newTransitionChar(int(c), next))
		s = next
	}
	s.accept = true
	a.deterministic = true
	a.singleton = nil
}

// getStates performs a BFS from the initial state, assigning each
// reached state a sequential .number (used by determinize/minimize
// for array indexing) and returning the states in that BFS order.
func (a *Automaton) getStates() []*State {
	a.expandSingleton()
	visited := map[*State]bool{a.initial: true}
	order := []*State{a.initial}
	for i := 0; i < len(order); i++ {
		s := order[i]
		s.number = i
		for _, t := range s.transitions {
			if !visited[t.to] {
				visited[t.to] = true
				order = append(order, t.to)
			}
		}
	}
	return order
}

// getAcceptStates returns every reachable accepting state.
func (a *Automaton) getAcceptStates() []*State {
	var accept []*State
	for _, s := range a.getStates() {
		if s.accept {
			accept = append(accept, s)
		}
	}
	return accept
}

// getLiveStates returns the states from which some accept state is
// reachable, computed by reverse BFS over the reverse graph.
func (a *Automaton) getLiveStates() map[*State]bool {
	states := a.getStates()
	reverse := make(map[*State][]*State, len(states))
	for _, s := range states {
		for _, t := range s.transitions {
			reverse[t.to] = append(reverse[t.to], s)
		}
	}
	live := map[*State]bool{}
	var queue []*State
	for _, s := range states {
		if s.accept {
			live[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, pred := range reverse[s] {
			if !live[pred] {
				live[pred] = true
				queue = append(queue, pred)
			}
		}
	}
	return live
}

// getStartPoints returns the sorted, deduplicated set of
// interval-boundary characters used to partition the alphabet for
// subset construction: for every outgoing transition [min, max],
// contribute min and max+1 (dropped, i.e. capped, when max is already
// MaxChar), always including MinChar.
func (a *Automaton) getStartPoints() []int {
	pointSet := map[int]bool{MinChar: true}
	for _, s := range a.getStates() {
		for _, t := range s.transitions {
			pointSet[t.min] = true
			if t.max < MaxChar {
				pointSet[t.max+1] = true
			}
		}
	}
	points := make([]int, 0, len(pointSet))
	for p := range pointSet {
		points = append(points, p)
	}
	sort.Ints(points)
	return points
}

// totalize introduces a single trap state with a self-loop over
// [MinChar, MaxChar] and adds transitions from every existing state
// over each gap in its outgoing intervals, so every state ends up
// with total coverage of the alphabet.
func totalize(a *Automaton) *Automaton {
	trap := newState()
	trap.addTransition(newTransition(MinChar, MaxChar, trap))
	for _, s := range a.getStates() {
		if s == trap {
			continue
		}
		sorted := s.sortedTransitions(false)
		next := MinChar
		for _, t := range sorted {
			if t.min > next {
				s.addTransition(newTransition(next, t.min-1, trap))
			}
			if t.max+1 > next {
				next = t.max + 1
			}
		}
		if next <= MaxChar {
			s.addTransition(newTransition(next, MaxChar, trap))
		}
	}
	a.hashCode = 0
	return a
}

// reduce coalesces, for each state, adjacent or overlapping outgoing
// intervals that share a destination into a single interval. After
// reduce, no two transitions out of the same state share both a
// target and a touching/overlapping interval.
func reduce(a *Automaton) *Automaton {
	for _, s := range a.getStates() {
		if len(s.transitions) == 0 {
			continue
		}
		byDest := map[*State][]*Transition{}
		for _, t := range s.transitions {
			byDest[t.to] = append(byDest[t.to], t)
		}
		merged := make([]*Transition, 0, len(s.transitions))
		for dest, ts := range byDest {
			sortTransitionsByMin(ts)
			cur := ts[0]
			for _, t := range ts[1:] {
				if t.min <= cur.max+1 {
					if t.max > cur.max {
						cur = newTransition(cur.min, t.max, dest)
					}
					continue
				}
				merged = append(merged, cur)
				cur = t
			}
			merged = append(merged, cur)
		}
		s.transitions = merged
	}
	a.hashCode = 0
	return a
}

// removeDeadTransitions deletes transitions whose target is not
// live, then reduces.
func removeDeadTransitions(a *Automaton) *Automaton {
	live := a.getLiveStates()
	for _, s := range a.getStates() {
		kept := s.transitions[:0:0]
		for _, t := range s.transitions {
			if live[t.to] {
				kept = append(kept, t)
			}
		}
		s.transitions = kept
	}
	return reduce(a)
}

// clone deep-copies the automaton, preserving graph shape: cycles are
// handled via a source-to-copy map so every state is visited once.
func (a *Automaton) clone() *Automaton {
	if a.isSingleton() {
		return newSingletonAutomaton(*a.singleton)
	}
	seen := map[*State]*State{}
	var copyState func(s *State) *State
	copyState = func(s *State) *State {
		if c, ok := seen[s]; ok {
			return c
		}
		c := newState()
		c.accept = s.accept
		seen[s] = c
		for _, t := range s.transitions {
			c.addTransition(newTransition(t.min, t.max, copyState(t.to)))
		}
		return c
	}
	ans := &Automaton{
		initial:       copyState(a.initial),
		deterministic: a.deterministic,
	}
	return ans
}

// cloneIfRequired returns a, mutated in place, when opts allows
// mutation; otherwise a deep clone that the caller may mutate freely.
func cloneIfRequired(a *Automaton, opts Options) *Automaton {
	if opts.AllowMutation {
		return a
	}
	return a.clone()
}

// checkMinimizeAlways runs minimize on a when opts requests it,
// otherwise returns a unchanged.
func checkMinimizeAlways(a *Automaton, opts Options) *Automaton {
	if opts.MinimizeAlways {
		return minimize(a, opts)
	}
	return a
}

// HashCode returns 3*numStates + 2*numTransitions, forced nonzero,
// computing and caching it lazily. minimize clears the cache (by
// building a fresh Automaton, whose hashCode starts at zero) so the
// next call recomputes against the minimized graph.
func (a *Automaton) HashCode() int {
	if a.hashCode != 0 {
		return a.hashCode
	}
	states := a.getStates()
	numTransitions := 0
	for _, s := range states {
		numTransitions += len(s.transitions)
	}
	h := 3*len(states) + 2*numTransitions
	if h == 0 {
		h = 1
	}
	a.hashCode = h
	return h
}

func sortTransitionsByMin(ts []*Transition) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].min < ts[j].min })
}
