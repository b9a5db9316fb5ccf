// Package engine provides move generation, legality checking and terminal
// state detection for the board game rules.
//
// All functions operate on a caller-owned *chess.Board. Only ApplyMove
// mutates it; legality simulation always works on a private copy, so
// concurrent queries on distinct boards never interfere.
package engine

// Engine bundles the rules with the attack oracle they consult.
// The zero value is not usable; construct one with New.
type Engine struct {
	oracle AttackOracle
}

// Option configures an Engine.
type Option func(*Engine)

// WithOracle sets the attack oracle used for check detection.
func WithOracle(oracle AttackOracle) Option {
	return func(e *Engine) {
		if oracle != nil {
			e.oracle = oracle
		}
	}
}

// New creates an Engine. By default it uses ScanOracle.
func New(opts ...Option) *Engine {
	e := &Engine{oracle: ScanOracle{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Oracle returns the attack oracle in use.
func (e *Engine) Oracle() AttackOracle {
	return e.oracle
}

var defaultEngine = New()
