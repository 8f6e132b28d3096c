package automaton

import "fmt"

// Empty returns a new automaton accepting no strings at all.
func Empty() *Automaton {
	return newAutomaton(newState())
}

// EmptyString returns a new automaton accepting only the empty
// string.
func EmptyString() *Automaton {
	return newSingletonAutomaton(nil)
}

// AnyChar returns a new automaton accepting any single BMP code unit.
func AnyChar() *Automaton {
	return CharRange(MinChar, MaxChar)
}

// Char returns a new automaton accepting a single character c.
func Char(c int) *Automaton {
	return CharRange(c, c)
}

// CharRange returns a new automaton accepting a single character in
// [min, max] (both endpoints included). Returns Empty() if min > max.
func CharRange(min, max int) *Automaton {
	if min > max {
		return Empty()
	}
	s1 := newState()
	s2 := newState()
	s2.accept = true
	s1.addTransition(newTransition(min, max, s2))
	return newAutomaton(s1)
}

// CharSet returns an automaton accepting any one character drawn from
// the supplied (possibly overlapping) set of closed intervals.
func CharSet(ranges ...[2]int) *Automaton {
	if len(ranges) == 0 {
		return Empty()
	}
	s1 := newState()
	s2 := newState()
	s2.accept = true
	for _, r := range ranges {
		s1.addTransition(newTransition(r[0], r[1], s2))
	}
	a := newAutomaton(s1)
	a.deterministic = false
	return minimize(a, Options{})
}

// AnyString returns a new automaton accepting every string over the
// BMP alphabet, including the empty string.
func AnyString() *Automaton {
	s := newState()
	s.accept = true
	s.addTransition(newTransition(MinChar, MaxChar, s))
	return newAutomaton(s)
}

// String returns a new automaton accepting exactly the one string s,
// using the fast-path singleton representation.
func String(s string) *Automaton {
	return newSingletonAutomaton([]rune(s))
}

// Interval returns an automaton accepting the decimal string
// representations of every integer in [min, max] (both endpoints
// included), normalized so the smaller bound comes first. When
// min and max have the same number of digits, accepted strings are
// zero-padded to exactly that many digits; otherwise there is no
// fixed width.
func Interval(min, max int) (*Automaton, error) {
	if min > max {
		min, max = max, min
	}
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("interval bounds must be non-negative: %d-%d", min, max)
	}
	digits := 0
	if len(fmt.Sprint(min)) == len(fmt.Sprint(max)) {
		digits = len(fmt.Sprint(min))
	}
	return intervalAutomaton(min, max, digits), nil
}

// intervalAutomaton builds the automaton directly: a union over every
// integer in range, zero-padded to digits when digits > 0, minimized
// afterwards. The integer ranges that appear in regex literals are
// small enough that this naive enumeration is acceptable.
func intervalAutomaton(min, max, digits int) *Automaton {
	list := make([]*Automaton, 0, max-min+1)
	for n := min; n <= max; n++ {
		s := fmt.Sprint(n)
		if digits > 0 {
			for len(s) < digits {
				s = "0" + s
			}
		}
		list = append(list, String(s))
	}
	return minimize(unionN(list, Options{}), Options{})
}
