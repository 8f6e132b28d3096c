package automaton

import "fmt"

// InfoStream is a narrow debugging/tracing hook a caller can attach
// via Options to observe state/transition counts as determinize and
// minimize run. The zero value (nil on Options) means tracing is off;
// NoopInfoStream is available for callers that want to pass one
// explicitly without writing their own.
type InfoStream interface {
	Message(component, message string)
	IsEnabled(component string) bool
}

// NoopInfoStream discards every message and reports every component
// disabled.
type NoopInfoStream struct{}

func (NoopInfoStream) Message(component, message string) {}
func (NoopInfoStream) IsEnabled(component string) bool    { return false }

// trace reports a state/transition count to opts.InfoStream, if one
// is set and has component enabled. A no-op when InfoStream is nil,
// so call sites don't need a nil check of their own.
func trace(opts Options, component string, a *Automaton) {
	if opts.InfoStream == nil || !opts.InfoStream.IsEnabled(component) {
		return
	}
	states := a.getStates()
	numTransitions := 0
	for _, s := range states {
		numTransitions += len(s.transitions)
	}
	opts.InfoStream.Message(component, fmt.Sprintf("%d states, %d transitions", len(states), numTransitions))
}
