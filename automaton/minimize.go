package automaton

// minimize returns the minimal deterministic automaton accepting the
// same language as a, determinizing first if necessary.
func minimize(a *Automaton, opts Options) *Automaton {
	return minimizeHopcroft(a, opts)
}

// minimizeHopcroft runs Hopcroft's O(n log n) partition-refinement
// algorithm. The automaton is determinized and totalized first (a
// trap state is introduced so every state has an outgoing transition
// for every start point), partitioned into accept/non-accept blocks,
// then repeatedly split against the frontier of a "pending" worklist
// of (block, start-point) pairs until no further split applies.
func minimizeHopcroft(a *Automaton, opts Options) *Automaton {
	d := determinize(a, opts)
	if len(d.initial.transitions) == 1 {
		t := d.initial.transitions[0]
		if t.to == d.initial && t.min == MinChar && t.max == MaxChar {
			return d
		}
	}
	d = totalize(d)

	sigma := d.getStartPoints()
	states := d.getStates()
	n, sl := len(states), len(sigma)

	reverse := make([][][]*State, n)
	for i := range reverse {
		reverse[i] = make([][]*State, sl)
	}
	partition := make([]map[*State]bool, n)
	splitblock := make([][]*State, n)
	block := make([]int, n)
	active := make([][]*stateList, n)
	active2 := make([][]*stateListNode, n)
	for q := 0; q < n; q++ {
		partition[q] = map[*State]bool{}
		active[q] = make([]*stateList, sl)
		active2[q] = make([]*stateListNode, sl)
		for x := 0; x < sl; x++ {
			active[q][x] = &stateList{}
		}
	}
	split := make([]bool, n)
	refine := make([]bool, n)
	refine2 := make([]bool, n)

	// initial partition (accept / non-accept) and reverse edges
	for _, qq := range states {
		j := 0
		if qq.accept {
			j = 1
		}
		partition[j][qq] = true
		block[qq.number] = j
		for x, v := range sigma {
			dest := qq.step(v)
			reverse[dest.number][x] = append(reverse[dest.number][x], qq)
		}
	}
	for j := 0; j <= 1; j++ {
		for x := 0; x < sl; x++ {
			for qq := range partition[j] {
				if reverse[qq.number][x] != nil {
					active2[qq.number][x] = active[j][x].add(qq)
				}
			}
		}
	}

	type pendingItem struct{ block, point int }
	pending2 := make([]bool, sl*n)
	var pending []pendingItem
	for x := 0; x < sl; x++ {
		j := 0
		if active[0][x].size > active[1][x].size {
			j = 1
		}
		pending = append(pending, pendingItem{j, x})
		pending2[x*n+j] = true
	}

	k := 2
	for len(pending) > 0 {
		ip := pending[0]
		pending = pending[1:]
		p, x := ip.block, ip.point
		pending2[x*n+p] = false

		for m := active[p][x].first; m != nil; m = m.next {
			if r := reverse[m.q.number][x]; r != nil {
				for _, s := range r {
					i := s.number
					if !split[i] {
						split[i] = true
						j := block[i]
						splitblock[j] = append(splitblock[j], s)
						if !refine2[j] {
							refine2[j] = true
							refine[j] = true
						}
					}
				}
			}
		}

		limit := k
		for j := 0; j < limit; j++ {
			if !refine[j] {
				continue
			}
			sb := splitblock[j]
			if len(sb) < len(partition[j]) {
				b1, b2 := partition[j], partition[k]
				for _, s := range sb {
					delete(b1, s)
					b2[s] = true
					block[s.number] = k
					for c, sn := range active2[s.number] {
						if sn != nil && sn.sl == active[j][c] {
							sn.remove()
							active2[s.number][c] = active[k][c].add(s)
						}
					}
				}
				for c := 0; c < sl; c++ {
					aj := active[j][c].size
					ak := active[k][c].size
					ofs := c * n
					if !pending2[ofs+j] && 0 < aj && aj <= ak {
						pending2[ofs+j] = true
						pending = append(pending, pendingItem{j, c})
					} else {
						pending2[ofs+k] = true
						pending = append(pending, pendingItem{k, c})
					}
				}
				k++
			}
			refine2[j] = false
			for _, s := range sb {
				split[s.number] = false
			}
			splitblock[j] = splitblock[j][:0]
		}
		for i := range refine {
			refine[i] = false
		}
	}

	// build a new state per equivalence class; q.number is repurposed
	// to hold the class's index so transition targets can be remapped
	// in the pass below.
	newStates := make([]*State, k)
	for i := 0; i < k; i++ {
		s := newState()
		newStates[i] = s
		for q := range partition[i] {
			if q == d.initial {
				d.initial = s
			}
			s.accept = q.accept
			s.number = q.number
			q.number = i
		}
	}
	for _, s := range newStates {
		rep := states[s.number]
		s.accept = rep.accept
		for _, t := range rep.transitions {
			s.addTransition(newTransition(t.min, t.max, newStates[t.to.number]))
		}
	}

	result := newAutomaton(d.initial)
	result.deterministic = true
	result = removeDeadTransitions(result)
	trace(opts, "minimize", result)
	return result
}

// stateList and stateListNode are a minimal intrusive doubly-linked
// list with an O(1) size and O(1) node removal, used by
// minimizeHopcroft to track which states are members of each
// (block, start-point) active set.
type stateList struct {
	size        int
	first, last *stateListNode
}

func (sl *stateList) add(q *State) *stateListNode {
	return newStateListNode(q, sl)
}

type stateListNode struct {
	q          *State
	next, prev *stateListNode
	sl         *stateList
}

func newStateListNode(q *State, sl *stateList) *stateListNode {
	n := &stateListNode{q: q, sl: sl}
	sl.size++
	if sl.size == 1 {
		sl.first, sl.last = n, n
	} else {
		sl.last.next = n
		n.prev = sl.last
		sl.last = n
	}
	return n
}

func (n *stateListNode) remove() {
	n.sl.size--
	if n.sl.first == n {
		n.sl.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.sl.last == n {
		n.sl.last = n.prev
	} else {
		n.next.prev = n.prev
	}
}
