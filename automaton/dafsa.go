package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// dfsaState is a node of the trie being incrementally built by
// dafsaBuilder, before it has been folded into the shared Automaton
// State/Transition representation by convert.
type dfsaState struct {
	id       int
	accept   bool
	children map[rune]*dfsaState
}

func newDfsaState() *dfsaState {
	return &dfsaState{children: map[rune]*dfsaState{}}
}

// dafsaBuilder implements the Daciuk-Mihov incremental construction of
// a minimal acyclic DFA (a "DAFSA") from a sorted stream of strings:
// each add extends the trie along the previous word's uncommon
// suffix, canonicalizing (replacing with an already-seen equivalent
// state, or registering a new one) every trie node that can no longer
// change before starting the new word's branch.
type dafsaBuilder struct {
	root     *dfsaState
	register map[string]*dfsaState
	nextID   int
	previous []rune
	path     []*dfsaState
}

func newDafsaBuilder() *dafsaBuilder {
	root := newDfsaState()
	return &dafsaBuilder{root: root, register: map[string]*dfsaState{}, path: []*dfsaState{root}}
}

// add extends the trie with word, which must be lexicographically
// greater than or equal to every word added so far (per
// compareUTF16SortedAsUTF8).
func (b *dafsaBuilder) add(word []rune) {
	cp := 0
	for cp < len(b.previous) && cp < len(word) && b.previous[cp] == word[cp] {
		cp++
	}
	for i := len(b.previous); i > cp; i-- {
		b.replaceOrRegister(i - 1)
	}
	b.path = b.path[:cp+1]
	for i := cp; i < len(word); i++ {
		child := newDfsaState()
		b.path[len(b.path)-1].children[word[i]] = child
		b.path = append(b.path, child)
	}
	b.path[len(b.path)-1].accept = true
	b.previous = append([]rune(nil), word...)
}

// replaceOrRegister finalizes path[idx+1]: if a structurally identical
// state is already registered, path[idx]'s edge is rewritten to point
// at that canonical state instead; otherwise path[idx+1] itself
// becomes the canonical representative for its signature.
func (b *dafsaBuilder) replaceOrRegister(idx int) {
	parent, child := b.path[idx], b.path[idx+1]
	sig := dfsaSignature(child)
	if existing, ok := b.register[sig]; ok {
		parent.children[b.previous[idx]] = existing
		return
	}
	child.id = b.nextID
	b.nextID++
	b.register[sig] = child
}

// complete canonicalizes whatever remains of the last added word's
// path and returns the trie's root. No more strings may be added
// afterward.
func (b *dafsaBuilder) complete() *dfsaState {
	for i := len(b.previous); i > 0; i-- {
		b.replaceOrRegister(i - 1)
	}
	return b.root
}

// dfsaSignature is a structural key for a finalized dfsaState: its
// accept bit plus each child edge's character and the child's own
// (already-assigned) canonical id. Relying on children's ids rather
// than recursing works because replaceOrRegister always finalizes a
// state's children before the state itself.
func dfsaSignature(s *dfsaState) string {
	keys := make([]int, 0, len(s.children))
	for c := range s.children {
		keys = append(keys, int(c))
	}
	sort.Ints(keys)
	var b strings.Builder
	if s.accept {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	for _, c := range keys {
		fmt.Fprintf(&b, "|%d:%d", c, s.children[rune(c)].id)
	}
	return b.String()
}

// convert folds a canonicalized dfsaState trie into the package's
// ordinary State/Transition graph, sharing one State per distinct
// dfsaState pointer (already deduplicated by the builder's register).
func convert(s *dfsaState, seen map[*dfsaState]*State) *State {
	if st, ok := seen[s]; ok {
		return st
	}
	st := newState()
	st.accept = s.accept
	seen[s] = st
	keys := make([]int, 0, len(s.children))
	for c := range s.children {
		keys = append(keys, int(c))
	}
	sort.Ints(keys)
	for _, c := range keys {
		st.addTransition(newTransitionChar(c, convert(s.children[rune(c)], seen)))
	}
	return st
}

// BuildStringUnion returns the minimal deterministic automaton
// accepting exactly the strings in words. words must already be
// sorted per compareUTF16SortedAsUTF8 (plain lexicographic order for
// strings with no surrogate pairs); use sort.Strings for the common
// case.
func BuildStringUnion(words []string) (*Automaton, error) {
	b := newDafsaBuilder()
	var prev string
	var prevRunes []rune
	for i, w := range words {
		runes := []rune(w)
		if i > 0 && compareUTF16SortedAsUTF8(prevRunes, runes) > 0 {
			return nil, fmt.Errorf("automaton: BuildStringUnion input must be sorted: %q precedes %q", prev, w)
		}
		b.add(runes)
		prev, prevRunes = w, runes
	}
	initial := convert(b.complete(), map[*dfsaState]*State{})
	a := newAutomaton(initial)
	a.deterministic = true
	return a, nil
}

// compareUTF16SortedAsUTF8 orders two UTF-16 code-unit sequences the
// way their UTF-8 encodings would sort, by fixing up surrogate-range
// code units into code-point order before comparing.
func compareUTF16SortedAsUTF8(a, b []rune) int {
	for i, lenA, lenB := 0, len(a), len(b); i < lenA && i < lenB; i++ {
		aChar, bChar := a[i], b[i]
		if aChar != bChar {
			if aChar >= 0xd800 && bChar >= 0xd800 {
				if aChar >= 0xe000 {
					aChar -= 0x800
				} else {
					aChar += 0x2000
				}
				if bChar >= 0xe000 {
					bChar -= 0x800
				} else {
					bChar += 0x2000
				}
			}
			return int(aChar) - int(bChar)
		}
	}
	return len(a) - len(b)
}
