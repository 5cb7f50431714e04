// Package solver implements the memoized recursive enumerator at the core
// of the system: for any reachable State, CompletionProbability returns the
// supremum over all playable cards of the probability of eventually
// satisfying the State's Requirements before its action budget runs out.
//
// The core does not define a rulebook. Card kinds and the transition
// operators that interpret them are registered by callers into a Registry;
// see the deck package for the canonical Reactor/Thruster/Shield/Damage/Miss
// rulebook this module ships with.
package solver

import (
	"github.com/pkg/errors"

	"github.com/qxzcode/contractsolver/cards"
	"github.com/qxzcode/contractsolver/requirements"
)

// ErrInvalidState is returned by NewState when the requested State would
// violate an invariant the solver relies on.
var ErrInvalidState = errors.New("invalid state")

// State is the tuple (remaining actions, hand, draw pile, requirements)
// the solver recurses over. It is a plain comparable value -- every field
// is itself comparable -- so State can be used directly as a Go map key,
// which is exactly how the Solver's memoization cache is implemented.
type State struct {
	Actions      int
	Hand         cards.Cards
	DrawPile     cards.Cards
	Requirements requirements.Requirements
}

// NewState constructs a State, rejecting a negative action count.
func NewState(actions int, hand, drawPile cards.Cards, reqs requirements.Requirements) (State, error) {
	if actions < 0 {
		return State{}, errors.Wrapf(ErrInvalidState, "actions must be >= 0, got %d", actions)
	}
	return State{
		Actions:      actions,
		Hand:         hand,
		DrawPile:     drawPile,
		Requirements: reqs,
	}, nil
}

// Equal reports whether s and other have identical fields. State is a
// comparable struct, so this is equivalent to s == other; provided for API
// parity with the specification.
func (s State) Equal(other State) bool {
	return s == other
}
