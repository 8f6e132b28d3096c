package automaton

// Built-in backslash character classes, precomputed once and shared
// (read-only) across every compiled regular expression that uses
// them. The regexp compiler clones a class automaton before handing
// it on (see the kindClass case in regexp.go), so an operation that
// mutates its input in place never corrupts the shared instance.
var (
	asciiPrintableClass *Automaton
	digitClass          *Automaton
	notDigitClass       *Automaton
	spaceClass          *Automaton
	notSpaceClass       *Automaton
	wordClass           *Automaton
	notWordClass        *Automaton
)

func init() {
	asciiPrintableClass = CharRange(0x20, 0x7e)
	digitClass = CharSet([2]int{'0', '9'})
	// Deliberately just {space, tab}, not the usual \s\n\r\f\v\t set:
	// this grammar only ever needs to drive a printable-string
	// generator, where a literal newline/control character in \s
	// would be surprising output.
	spaceClass = CharSet([2]int{0x09, 0x09}, [2]int{0x20, 0x20})
	wordClass = CharSet([2]int{'0', '9'}, [2]int{'A', 'Z'}, [2]int{'a', 'z'}, [2]int{'_', '_'})

	// \D \S \W are each "printable ASCII minus the positive class",
	// not a full-alphabet complement — same narrowing rationale as
	// '.' and char-class negation (see kindAnyChar in regexp.go): a
	// bare complement would let these classes emit surrogate and
	// control code units the generator has no business producing.
	//
	// Options{} (AllowMutation: false) is deliberate in the complement
	// calls below: complement clones its input before mutating, which
	// keeps digitClass/spaceClass/wordClass themselves untouched and
	// safe to keep sharing.
	notDigitClass = minimize(intersection(asciiPrintableClass, complement(digitClass, Options{}), Options{}), Options{})
	notSpaceClass = minimize(intersection(asciiPrintableClass, complement(spaceClass, Options{}), Options{}), Options{})
	notWordClass = minimize(intersection(asciiPrintableClass, complement(wordClass, Options{}), Options{}), Options{})
}

func classAutomaton(cls rune) *Automaton {
	switch cls {
	case 'd':
		return digitClass
	case 'D':
		return notDigitClass
	case 's':
		return spaceClass
	case 'S':
		return notSpaceClass
	case 'w':
		return wordClass
	case 'W':
		return notWordClass
	}
	panic("automaton: unknown class escape \\" + string(cls))
}
