package automaton

import (
	"testing"

	"gotest.tools/v3/assert"
)

type recordingInfoStream struct {
	enabled  map[string]bool
	messages []string
}

func (r *recordingInfoStream) Message(component, message string) {
	r.messages = append(r.messages, component+": "+message)
}

func (r *recordingInfoStream) IsEnabled(component string) bool {
	return r.enabled[component]
}

func TestMinimizeTracesToInfoStreamWhenEnabled(t *testing.T) {
	rec := &recordingInfoStream{enabled: map[string]bool{"minimize": true}}
	a, err := Compile("(a|b)*abb")
	assert.NilError(t, err)
	minimize(a, Options{InfoStream: rec})
	assert.Assert(t, len(rec.messages) > 0)
	assert.Assert(t, len(rec.messages[0]) > len("minimize: "))
}

func TestDeterminizeDoesNotTraceWhenDisabled(t *testing.T) {
	rec := &recordingInfoStream{enabled: map[string]bool{}}
	a, err := Compile("a|b")
	assert.NilError(t, err)
	determinize(a, Options{InfoStream: rec})
	assert.Equal(t, len(rec.messages), 0)
}

func TestNoopInfoStreamIsAlwaysDisabled(t *testing.T) {
	var s InfoStream = NoopInfoStream{}
	assert.Assert(t, !s.IsEnabled("anything"))
}
