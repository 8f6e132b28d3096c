package automaton

import (
	"sort"
	"testing"

	"gotest.tools/v3/assert"
)

func TestBuildStringUnionAcceptsExactlyInputWords(t *testing.T) {
	words := []string{"car", "cars", "cat", "cats", "dog", "dogs"}
	sort.Strings(words)
	a, err := BuildStringUnion(words)
	assert.NilError(t, err)
	for _, w := range words {
		assert.Assert(t, a.Accepts(w), "expected %q to be accepted", w)
	}
	for _, absent := range []string{"ca", "do", "dogss", "catss", ""} {
		assert.Assert(t, !a.Accepts(absent), "did not expect %q to be accepted", absent)
	}
}

func TestBuildStringUnionIsMinimal(t *testing.T) {
	// "cars"/"cats"/"dogs" all end in the common accepting suffix "s"
	// after a three-letter prefix, so the Daciuk-Mihov
	// construction should register shared suffix states rather than
	// building one chain per word.
	words := []string{"cars", "cats", "dogs"}
	a, err := BuildStringUnion(words)
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("cars"))
	assert.Assert(t, a.Accepts("cats"))
	assert.Assert(t, a.Accepts("dogs"))

	naive := union(union(String("cars"), String("cats"), Options{}), String("dogs"), Options{})
	naiveMin := minimize(naive, Options{})
	assert.Equal(t, len(a.getStates()), len(naiveMin.getStates()))
}

func TestBuildStringUnionRejectsUnsortedInput(t *testing.T) {
	_, err := BuildStringUnion([]string{"dog", "cat"})
	assert.ErrorContains(t, err, "sorted")
}

func TestBuildStringUnionSingleWord(t *testing.T) {
	a, err := BuildStringUnion([]string{"only"})
	assert.NilError(t, err)
	assert.Assert(t, a.Accepts("only"))
	assert.Assert(t, !a.Accepts("onl"))
}

func TestBuildStringUnionEmptyInput(t *testing.T) {
	a, err := BuildStringUnion(nil)
	assert.NilError(t, err)
	assert.Assert(t, isEmpty(a))
}
