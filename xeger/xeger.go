// Package xeger generates random strings that match a regular
// expression, by compiling the pattern to an automaton once and
// repeatedly sampling a random accepting path through it.
package xeger

import (
	"math/rand"
	"time"

	"github.com/go-automaton/automaton"
)

// Generator produces random strings matching a regular expression. A
// Generator compiles its pattern once at construction and reuses the
// resulting automaton for every subsequent Generate call.
type Generator struct {
	compiled *automaton.Automaton
	rng      *rand.Rand
}

// New compiles pattern, with every optional regexp syntax production
// enabled except "@" (any-string), and returns a Generator seeded
// from the current time.
func New(pattern string) (*Generator, error) {
	return NewWithSeed(pattern, time.Now().UnixNano())
}

// generatorFlags enables every optional regexp syntax production
// except AnyStringTok ("@"): an unconstrained any-string match gives
// the random walk nothing to bound its output by, which defeats the
// point of generating from a pattern.
const generatorFlags = automaton.All &^ automaton.AnyStringTok

// NewWithSeed is New with an explicit PRNG seed, for reproducible
// generation in tests.
func NewWithSeed(pattern string, seed int64) (*Generator, error) {
	a, err := automaton.CompileWithOptions(stripAnchors(pattern), generatorFlags, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Generator{compiled: a, rng: rand.New(rand.NewSource(seed))}, nil
}

// stripAnchors drops a leading '^' and a trailing '$', since this
// package's grammar has no anchor production of its own: every
// generated string already spans the whole match, so a caller-supplied
// pattern written against a conventional regex anchoring convention
// must not have its anchors taken as literal characters.
func stripAnchors(pattern string) string {
	if len(pattern) > 0 && pattern[0] == '^' {
		pattern = pattern[1:]
	}
	if len(pattern) > 0 && pattern[len(pattern)-1] == '$' {
		pattern = pattern[:len(pattern)-1]
	}
	return pattern
}

// Generate returns one random string accepted by the compiled
// pattern.
func (g *Generator) Generate() string {
	return g.compiled.RandomString(g.rng)
}

// GenerateN returns n independently-sampled strings accepted by the
// compiled pattern.
func (g *Generator) GenerateN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}

// Automaton returns the compiled automaton backing this generator, for
// callers that want to double-check acceptance or inspect the
// compiled language directly.
func (g *Generator) Automaton() *automaton.Automaton {
	return g.compiled
}
