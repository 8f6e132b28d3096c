package automaton

import "math/rand"

// Accepts reports whether a accepts s.
func (a *Automaton) Accepts(s string) bool {
	return run(a, s)
}

// RandomString returns a string accepted by a, sampled by a random
// walk over its (determinized) transition graph. At every accepting
// state, "stop here" is offered as one extra candidate alongside each
// outgoing transition, so a state with many live branches keeps
// generating more often than it halts, while a plain terminal accept
// state (no outgoing transitions at all) always halts. This keeps a
// Kleene-starred subexpression from both degenerating into near-certain
// infinite-looking output and from almost always stopping at zero
// repetitions.
func (a *Automaton) RandomString(rng *rand.Rand) string {
	d := a
	if !a.deterministic {
		d = determinize(a, Options{})
	}
	d.expandSingleton()
	var out []rune
	s := d.initial
	for {
		ts := s.transitions
		n := len(ts)
		if s.accept {
			choice := rng.Intn(n + 1)
			if choice == n {
				return string(out)
			}
			s = pickTransition(ts[choice], rng, &out)
			continue
		}
		assert2(n > 0, "automaton: dead end reached in a supposedly live automaton")
		s = pickTransition(ts[rng.Intn(n)], rng, &out)
	}
}

func pickTransition(t *Transition, rng *rand.Rand, out *[]rune) *State {
	c := t.min
	if t.max > t.min {
		c += rng.Intn(t.max - t.min + 1)
	}
	*out = append(*out, rune(c))
	return t.to
}
