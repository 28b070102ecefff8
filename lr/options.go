package lr

import "github.com/npillmayer/schuko/gconf"

// Configuration keys for the bounds of the fixpoint computations.
const (
	ConfigMaxPasses = "slrgen.max-passes"
	ConfigMaxStates = "slrgen.max-states"
)

// DefaultStateLimit is the bound for the number of CFSM states if neither an
// option nor the configuration provide one.
const DefaultStateLimit = 1 << 16

// Option configures grammar analysis and table generation.
type Option func(*limits)

type limits struct {
	passes int // max. passes over all rules for FIRST/FOLLOW; 0 = derive from grammar
	states int // max. number of CFSM states
}

// IterationLimit bounds the number of passes of the FIRST/FOLLOW fixpoint loop.
func IterationLimit(n int) Option {
	return func(l *limits) {
		l.passes = n
	}
}

// StateLimit bounds the number of states of the CFSM.
func StateLimit(n int) Option {
	return func(l *limits) {
		l.states = n
	}
}

func makeLimits(opts []Option) limits {
	l := limits{
		passes: gconf.GetInt(ConfigMaxPasses),
		states: gconf.GetInt(ConfigMaxStates),
	}
	for _, opt := range opts {
		opt(&l)
	}
	if l.states <= 0 {
		l.states = DefaultStateLimit
	}
	return l
}
