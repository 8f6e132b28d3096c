package automaton

import "sort"

// statePair memoizes a pair of states visited during product
// construction (intersection, subsetOf) or while closing an
// epsilon-pair relation (addEpsilons). Equality is the pair itself,
// which works directly as a Go map key since State pointers are
// comparable.
type statePair struct{ s1, s2 *State }

func setOf(states []*State) map[*State]bool {
	out := make(map[*State]bool, len(states))
	for _, s := range states {
		out[s] = true
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// isEmpty reports whether a accepts no strings at all.
func isEmpty(a *Automaton) bool {
	if a.isSingleton() {
		return false
	}
	return !a.initial.accept && len(a.initial.transitions) == 0
}

// isEmptyString reports whether a accepts the empty string and
// nothing else.
func isEmptyString(a *Automaton) bool {
	if a.isSingleton() {
		return len(*a.singleton) == 0
	}
	return a.initial.accept && len(a.initial.transitions) == 0
}

// concatenate returns an automaton accepting the concatenation of a
// and b's languages.
func concatenate(a, b *Automaton, opts Options) *Automaton {
	return concatenateN([]*Automaton{a, b}, opts)
}

// concatenateN returns an automaton accepting the concatenation, in
// order, of every automaton in list's language.
func concatenateN(list []*Automaton, opts Options) *Automaton {
	if len(list) == 0 {
		return EmptyString()
	}
	allSingleton := true
	for _, a := range list {
		if !a.isSingleton() {
			allSingleton = false
			break
		}
	}
	if allSingleton {
		var s []rune
		for _, a := range list {
			s = append(s, *a.singleton...)
		}
		return newSingletonAutomaton(s)
	}
	for _, a := range list {
		if isEmpty(a) {
			return Empty()
		}
	}

	seen := map[*Automaton]bool{}
	hasAliases := false
	for _, a := range list {
		if seen[a] {
			hasAliases = true
			break
		}
		seen[a] = true
	}

	result := list[0]
	if hasAliases || !opts.AllowMutation {
		result = result.clone()
	}
	result.expandSingleton()
	ac := setOf(result.getAcceptStates())

	for i := 1; i < len(list); i++ {
		a := list[i]
		if a.isSingleton() && len(*a.singleton) == 0 {
			continue
		}
		aa := a
		if hasAliases || !opts.AllowMutation {
			aa = aa.clone()
		}
		aa.expandSingleton()
		ns := setOf(aa.getAcceptStates())
		for s := range ac {
			s.accept = false
			s.addEpsilon(aa.initial)
			if s.accept {
				ns[s] = true
			}
		}
		ac = ns
	}
	result.deterministic = false
	result = removeDeadStates(result)
	return checkMinimizeAlways(result, opts)
}

// union returns an automaton accepting the union of a and b's
// languages.
func union(a, b *Automaton, opts Options) *Automaton {
	return unionN([]*Automaton{a, b}, opts)
}

// unionN returns an automaton accepting the union of every automaton
// in list's language. Empty-language operands are dropped.
func unionN(list []*Automaton, opts Options) *Automaton {
	kept := make([]*Automaton, 0, len(list))
	for _, a := range list {
		if !isEmpty(a) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return Empty()
	}
	if len(kept) == 1 {
		return cloneIfRequired(kept[0], opts)
	}

	seen := map[*Automaton]bool{}
	hasAliases := false
	for _, a := range kept {
		if seen[a] {
			hasAliases = true
			break
		}
		seen[a] = true
	}

	s := newState()
	for _, a := range kept {
		aa := a
		if hasAliases || !opts.AllowMutation {
			aa = aa.clone()
		}
		aa.expandSingleton()
		s.addEpsilon(aa.initial)
	}
	result := newAutomaton(s)
	result.deterministic = false
	result = removeDeadStates(result)
	return checkMinimizeAlways(result, opts)
}

// optional returns an automaton accepting the union of the empty
// string and a's language.
func optional(a *Automaton, opts Options) *Automaton {
	a = cloneIfRequired(a, opts)
	a.expandSingleton()
	s := newState()
	s.accept = true
	s.addEpsilon(a.initial)
	result := newAutomaton(s)
	result.deterministic = false
	result = removeDeadStates(result)
	return checkMinimizeAlways(result, opts)
}

// repeat returns an automaton accepting the Kleene star (zero or more
// concatenated repetitions) of a's language. Never modifies a's
// language (a.clone() is taken unless mutation is explicitly allowed).
func repeat(a *Automaton, opts Options) *Automaton {
	a = cloneIfRequired(a, opts)
	a.expandSingleton()
	s := newState()
	s.accept = true
	s.addEpsilon(a.initial)
	for _, acc := range a.getAcceptStates() {
		acc.addEpsilon(s)
	}
	result := newAutomaton(s)
	result.deterministic = false
	result = removeDeadStates(result)
	return checkMinimizeAlways(result, opts)
}

// repeatMin returns an automaton accepting min or more concatenated
// repetitions of a's language.
func repeatMin(a *Automaton, min int, opts Options) *Automaton {
	if min == 0 {
		return repeat(a, opts)
	}
	list := make([]*Automaton, 0, min+1)
	for i := 0; i < min; i++ {
		list = append(list, a)
	}
	list = append(list, repeat(a, opts))
	return concatenateN(list, opts)
}

// repeatMinMax returns an automaton accepting between min and max
// (inclusive) concatenated repetitions of a's language, or Empty()
// if min > max. The (max-min) optional tail is built as a
// right-folded chain of optional(concatenate(a, ...)) rather than a
// hand-spliced epsilon chain -- same language, reusing
// optional/concatenate instead of re-deriving their epsilon-splicing
// logic a third time.
func repeatMinMax(a *Automaton, min, max int, opts Options) *Automaton {
	if min > max {
		return Empty()
	}
	tail := EmptyString()
	for i := 0; i < max-min; i++ {
		tail = optional(concatenate(a, tail, opts), opts)
	}
	if min == 0 {
		return tail
	}
	list := make([]*Automaton, 0, min+1)
	for i := 0; i < min; i++ {
		list = append(list, a)
	}
	list = append(list, tail)
	return concatenateN(list, opts)
}

// complement returns a deterministic automaton accepting the
// complement of a's language.
func complement(a *Automaton, opts Options) *Automaton {
	a = cloneIfRequired(a, opts)
	a.expandSingleton()
	d := determinize(a, Options{AllowMutation: true})
	d = totalize(d)
	for _, s := range d.getStates() {
		s.accept = !s.accept
	}
	d.deterministic = true
	return removeDeadTransitions(d)
}

// minus returns an automaton accepting the intersection of a1's
// language and the complement of a2's language.
func minus(a1, a2 *Automaton, opts Options) *Automaton {
	if isEmpty(a1) || a1 == a2 {
		return Empty()
	}
	if isEmpty(a2) {
		return cloneIfRequired(a1, opts)
	}
	if a1.isSingleton() {
		if run(a2, string(*a1.singleton)) {
			return Empty()
		}
		return cloneIfRequired(a1, opts)
	}
	return intersection(a1, complement(a2, opts), opts)
}

// intersection returns an automaton accepting the intersection of a1
// and a2's languages, via product construction over sorted,
// interval-overlap-swept transitions. Never modifies a1 or a2.
func intersection(a1, a2 *Automaton, opts Options) *Automaton {
	if a1.isSingleton() {
		if run(a2, string(*a1.singleton)) {
			return cloneIfRequired(a1, opts)
		}
		return Empty()
	}
	if a2.isSingleton() {
		if run(a1, string(*a2.singleton)) {
			return cloneIfRequired(a2, opts)
		}
		return Empty()
	}
	if a1 == a2 {
		return cloneIfRequired(a1, opts)
	}

	newStates := map[statePair]*State{}
	initPair := statePair{a1.initial, a2.initial}
	resultInit := newState()
	resultInit.accept = a1.initial.accept && a2.initial.accept
	newStates[initPair] = resultInit
	worklist := []statePair{initPair}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		ps := newStates[p]
		t1 := p.s1.sortedTransitions(false)
		t2 := p.s2.sortedTransitions(false)
		for n1, b2 := 0, 0; n1 < len(t1); n1++ {
			for b2 < len(t2) && t2[b2].max < t1[n1].min {
				b2++
			}
			for n2 := b2; n2 < len(t2) && t1[n1].max >= t2[n2].min; n2++ {
				if t2[n2].max < t1[n1].min {
					continue
				}
				key := statePair{t1[n1].to, t2[n2].to}
				q, ok := newStates[key]
				if !ok {
					q = newState()
					q.accept = key.s1.accept && key.s2.accept
					newStates[key] = q
					worklist = append(worklist, key)
				}
				min := maxInt(t1[n1].min, t2[n2].min)
				max := minInt(t1[n1].max, t2[n2].max)
				ps.addTransition(newTransition(min, max, q))
			}
		}
	}
	result := newAutomaton(resultInit)
	result.deterministic = a1.deterministic && a2.deterministic
	result = removeDeadStates(result)
	return checkMinimizeAlways(result, opts)
}

// subsetOf reports whether a1's language is a subset of a2's. When a2
// is not already marked deterministic, a determinized copy of it is
// built; a2's own transitions are left as they are.
func subsetOf(a1, a2 *Automaton) bool {
	if a1 == a2 {
		return true
	}
	if a1.isSingleton() {
		if a2.isSingleton() {
			return string(*a1.singleton) == string(*a2.singleton)
		}
		return run(a2, string(*a1.singleton))
	}
	a2d := determinize(a2, Options{AllowMutation: true})

	visited := map[statePair]bool{}
	start := statePair{a1.initial, a2d.initial}
	visited[start] = true
	worklist := []statePair{start}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		if p.s1.accept && !p.s2.accept {
			return false
		}
		t1 := p.s1.sortedTransitions(false)
		t2 := p.s2.sortedTransitions(false)
		for n1, b2 := 0, 0; n1 < len(t1); n1++ {
			for b2 < len(t2) && t2[b2].max < t1[n1].min {
				b2++
			}
			min1, max1 := t1[n1].min, t1[n1].max
			for n2 := b2; n2 < len(t2) && t1[n1].max >= t2[n2].min; n2++ {
				if t2[n2].min > min1 {
					return false
				}
				if t2[n2].max < MaxChar {
					min1 = t2[n2].max + 1
				} else {
					min1, max1 = MaxChar, MinChar-1
				}
				key := statePair{t1[n1].to, t2[n2].to}
				if !visited[key] {
					visited[key] = true
					worklist = append(worklist, key)
				}
			}
			if min1 <= max1 {
				return false
			}
		}
	}
	return true
}

// sameLanguage reports whether a1 and a2 accept exactly the same
// language. This is a costly computation -- each operand that is not
// already marked deterministic is determinized into a new copy.
func sameLanguage(a1, a2 *Automaton) bool {
	if a1 == a2 {
		return true
	}
	return subsetOf(a2, a1) && subsetOf(a1, a2)
}

// run reports whether s is accepted by a.
func run(a *Automaton, s string) bool {
	if a.isSingleton() {
		return string(*a.singleton) == s
	}
	runes := []rune(s)
	if a.deterministic {
		p := a.initial
		for _, c := range runes {
			q := p.step(int(c))
			if q == nil {
				return false
			}
			p = q
		}
		return p.accept
	}

	states := a.getStates()
	cur := make([]bool, len(states))
	next := make([]bool, len(states))
	cur[a.initial.number] = true
	frontierAccepts := func(set []bool) bool {
		for i, on := range set {
			if on && states[i].accept {
				return true
			}
		}
		return false
	}
	for _, c := range runes {
		for i := range next {
			next[i] = false
		}
		for i, on := range cur {
			if !on {
				continue
			}
			for _, t := range states[i].transitions {
				if int(c) >= t.min && int(c) <= t.max {
					next[t.to.number] = true
				}
			}
		}
		cur, next = next, cur
	}
	return frontierAccepts(cur)
}

// removeDeadStates collapses a to the canonical Empty() automaton if
// its initial state cannot reach any accept state, otherwise removes
// transitions into dead states and reduces.
func removeDeadStates(a *Automaton) *Automaton {
	a.expandSingleton()
	live := a.getLiveStates()
	if !live[a.initial] {
		return Empty()
	}
	return removeDeadTransitions(a)
}

// addEpsilons computes the transitive closure of the supplied
// epsilon-pair relation using a worklist over forward/backward
// adjacency maps, then splices each resulting pair's secondState
// transitions and accept bit into firstState. A pair whose states
// have no recorded adjacency is treated as having an empty closure
// set rather than failing.
func addEpsilons(pairs [][2]*State) {
	forward := map[*State][]*State{}
	back := map[*State][]*State{}
	workSet := map[statePair]bool{}
	var worklist []statePair

	record := func(p statePair) {
		if workSet[p] {
			return
		}
		workSet[p] = true
		forward[p.s1] = append(forward[p.s1], p.s2)
		back[p.s2] = append(back[p.s2], p.s1)
		worklist = append(worklist, p)
	}
	for _, pr := range pairs {
		record(statePair{pr[0], pr[1]})
	}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, pre := range back[p.s1] {
			record(statePair{pre, p.s2})
		}
		for _, suc := range forward[p.s2] {
			record(statePair{p.s1, suc})
		}
	}
	for p := range workSet {
		p.s1.addEpsilon(p.s2)
	}
}

// determinize performs subset construction: for each DFA state (a
// frozen subset of NFA state numbers), the outgoing NFA transitions
// from that subset are swept left to right, maintaining which
// destination state numbers are currently "open" in a sortedIntSet,
// so that contiguous runs of start points sharing the same open set
// become a single DFA transition.
func determinize(a *Automaton, opts Options) *Automaton {
	a.expandSingleton()
	if a.deterministic {
		return cloneIfRequired(a, opts)
	}
	allStates := a.getStates()

	initSet := newSortedIntSet()
	initSet.incr(a.initial.number)
	initState := newState()
	initState.accept = a.initial.accept
	initFrozen := initSet.freeze(initState)
	doneKey := map[string]*frozenIntSet{initFrozen.key(): initFrozen}
	worklist := []*frozenIntSet{initFrozen}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		starts := map[int][]int{}
		ends := map[int][]int{}
		for _, num := range cur.values {
			for _, t := range allStates[num].transitions {
				starts[t.min] = append(starts[t.min], t.to.number)
				if t.max < MaxChar {
					ends[t.max+1] = append(ends[t.max+1], t.to.number)
				}
			}
		}
		if len(starts) == 0 {
			continue
		}
		pointSet := make(map[int]bool, len(starts)+len(ends))
		for p := range starts {
			pointSet[p] = true
		}
		for p := range ends {
			pointSet[p] = true
		}
		points := make([]int, 0, len(pointSet))
		for p := range pointSet {
			points = append(points, p)
		}
		sort.Ints(points)

		active := newSortedIntSet()
		for i, p := range points {
			for _, d := range ends[p] {
				active.decr(d)
			}
			for _, d := range starts[p] {
				active.incr(d)
			}
			if active.isEmpty() {
				continue
			}
			hi := MaxChar
			if i+1 < len(points) {
				hi = points[i+1] - 1
			}
			destNums := active.sortedValues()
			k := (&frozenIntSet{values: destNums}).key()
			fz, ok := doneKey[k]
			if !ok {
				destState := newState()
				for _, n := range destNums {
					if allStates[n].accept {
						destState.accept = true
						break
					}
				}
				fz = &frozenIntSet{values: destNums, state: destState}
				doneKey[k] = fz
				worklist = append(worklist, fz)
			}
			cur.state.addTransition(newTransition(p, hi, fz.state))
		}
	}
	result := newAutomaton(initState)
	result.deterministic = true
	result = removeDeadStates(result)
	trace(opts, "determinize", result)
	return result
}
