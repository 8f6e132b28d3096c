package automaton

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseSimpleConcatenation(t *testing.T) {
	// Adjacent literal characters fold into a single string node.
	r, err := Parse("ab", All)
	assert.NilError(t, err)
	assert.Equal(t, kindString, r.kind)
}

func TestCompileAcceptsMatchingStrings(t *testing.T) {
	a, err := Compile("ab|cd")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("ab"))
	assert.Assert(t, a.Accepts("cd"))
	assert.Assert(t, !a.Accepts("ac"))
}

func TestCompileStarAndPlus(t *testing.T) {
	star, err := Compile("a*")
	assert.NilError(t, err)
	assert.Assert(t, star.Accepts(""))
	assert.Assert(t, star.Accepts("aaaa"))

	plus, err := Compile("a+")
	assert.NilError(t, err)
	assert.Assert(t, !plus.Accepts(""))
	assert.Assert(t, plus.Accepts("a"))
	assert.Assert(t, plus.Accepts("aaaa"))
}

func TestCompileOptional(t *testing.T) {
	a, err := Compile("colou?r")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("color"))
	assert.Assert(t, a.Accepts("colour"))
	assert.Assert(t, !a.Accepts("colouur"))
}

func TestCompileRepeatMinAndMinMax(t *testing.T) {
	a, err := Compile("a{2,4}")
	assert.NilError(t, err)
	assert.Assert(t, !a.Accepts("a"))
	assert.Assert(t, a.Accepts("aa"))
	assert.Assert(t, a.Accepts("aaaa"))
	assert.Assert(t, !a.Accepts("aaaaa"))

	b, err := Compile("a{3,}")
	assert.NilError(t, err)
	assert.Assert(t, !b.Accepts("aa"))
	assert.Assert(t, b.Accepts("aaa"))
	assert.Assert(t, b.Accepts("aaaaaaaa"))
}

func TestCompileCharClass(t *testing.T) {
	a, err := Compile("[a-c]+")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("abc"))
	assert.Assert(t, !a.Accepts("abcd"))

	neg, err := Compile("[^a-c]")
	assert.NilError(t, err)
	assert.Assert(t, !neg.Accepts("a"))
	assert.Assert(t, neg.Accepts("z"))
}

func TestCompileIntersectionAndComplement(t *testing.T) {
	a, err := Compile(".{4}&a.*")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("abcd"))
	assert.Assert(t, !a.Accepts("bcde"))
	assert.Assert(t, !a.Accepts("abcde"))

	c, err := CompileWithOptions("~a", Complement, nil, nil)
	assert.NilError(t, err)
	assert.Assert(t, !c.Accepts("a"))
	assert.Assert(t, c.Accepts("b"))
}

func TestCompileAnyStringAndEmpty(t *testing.T) {
	a, err := CompileWithOptions("@", AnyStringTok, nil, nil)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("anything at all"))
	assert.Assert(t, a.Accepts(""))

	e, err := CompileWithOptions("#", EmptyTok, nil, nil)
	assert.NilError(t, err)
	assert.Assert(t, isEmpty(e))
}

func TestCompileIntervalProduction(t *testing.T) {
	a, err := CompileWithOptions("<5-12>", IntervalTok, nil, nil)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("5"))
	assert.Assert(t, a.Accepts("12"))
	assert.Assert(t, !a.Accepts("13"))
}

func TestCompileIntervalProductionZeroPadded(t *testing.T) {
	a, err := CompileWithOptions("<007-015>", IntervalTok, nil, nil)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("007"))
	assert.Assert(t, a.Accepts("015"))
	assert.Assert(t, !a.Accepts("15"))
	assert.Assert(t, !a.Accepts("7"))
}

func TestCompileNamedAutomatonReference(t *testing.T) {
	named := map[string]*Automaton{"digits": CharSet([2]int{'0', '9'})}
	a, err := CompileWithOptions("<digits>+", AutomatonTok, named, nil)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("0129"))
	assert.Assert(t, !a.Accepts("abc"))
}

func TestCompileNamedAutomatonReferenceViaProvider(t *testing.T) {
	provider := func(name string) (*Automaton, error) {
		if name == "vowel" {
			return CharSet([2]int{'a', 'a'}, [2]int{'e', 'e'}, [2]int{'i', 'i'}, [2]int{'o', 'o'}, [2]int{'u', 'u'}), nil
		}
		return nil, nil
	}
	a, err := CompileWithOptions("<vowel>", AutomatonTok, nil, provider)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("e"))
	assert.Assert(t, !a.Accepts("x"))
}

func TestCompileRejectsUnresolvedAutomatonReference(t *testing.T) {
	_, err := CompileWithOptions("<missing>", AutomatonTok, nil, nil)
	assert.ErrorContains(t, err, "")
}

func TestCompileInvalidPatternReturnsError(t *testing.T) {
	_, err := Compile("(ab")
	assert.ErrorContains(t, err, "")
}

func TestDotMatchesOnlyPrintableASCII(t *testing.T) {
	a, err := Compile(".")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("x"))
	assert.Assert(t, a.Accepts(" "))
	assert.Assert(t, a.Accepts("~"))
	assert.Assert(t, !a.Accepts("\n"))
	assert.Assert(t, !a.Accepts("\t"))
	assert.Assert(t, !a.Accepts(string(rune(0x2603))))
}

func TestCharClassNegationIsScopedToPrintableASCII(t *testing.T) {
	a, err := Compile("[^a-c]")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("x"))
	assert.Assert(t, !a.Accepts("a"))
	assert.Assert(t, !a.Accepts("\n"))
	assert.Assert(t, !a.Accepts(string(rune(0x2603))))
}

func TestCompileNonCapturingGroupFlagsAreSkipped(t *testing.T) {
	a, err := Compile("(?i:ab)cd")
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("abcd"))
	assert.Assert(t, !a.Accepts("ABcd"))

	empty, err := Compile("(?:)cd")
	assert.NilError(t, err)
	assert.Assert(t, empty.Accepts("cd"))
}

func TestCompileBackslashClasses(t *testing.T) {
	a, err := Compile(`\d+`)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("0129"))
	assert.Assert(t, !a.Accepts("a1"))

	b, err := Compile(`\w+`)
	assert.NilError(t, err)
	assert.Assert(t, b.Accepts("abc_123"))
	assert.Assert(t, !b.Accepts("a b"))

	c, err := Compile(`\s`)
	assert.NilError(t, err)
	assert.Assert(t, c.Accepts(" "))
	assert.Assert(t, c.Accepts("\t"))
	assert.Assert(t, !c.Accepts("\n"))
}

func TestRegExpStringRoundTrips(t *testing.T) {
	r, err := Parse("ab|c*", All)
	assert.NilError(t, err)
	assert.Equal(t, "(ab|c*)", r.String())
}
