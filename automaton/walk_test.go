package automaton

import (
	"math/rand"
	"testing"

	"gotest.tools/v3/assert"
)

func TestRandomStringIsAlwaysAccepted(t *testing.T) {
	a, err := Compile("(ab|cd){2,5}e*")
	assert.NilError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := a.RandomString(rng)
		assert.Assert(t, a.Accepts(s), "generated %q was not accepted", s)
	}
}

func TestRandomStringOnSingletonAutomaton(t *testing.T) {
	a := String("exact")
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.RandomString(rng), "exact")
	}
}

func TestRandomStringOnEmptyStringAutomaton(t *testing.T) {
	a := EmptyString()
	rng := rand.New(rand.NewSource(3))
	assert.Equal(t, a.RandomString(rng), "")
}

func TestRandomStringExploresBothBranches(t *testing.T) {
	a, err := Compile("cat|dog")
	assert.NilError(t, err)
	rng := rand.New(rand.NewSource(4))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[a.RandomString(rng)] = true
	}
	assert.Assert(t, seen["cat"])
	assert.Assert(t, seen["dog"])
}
