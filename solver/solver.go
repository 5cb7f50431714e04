package solver

import (
	"expvar"

	"github.com/pkg/errors"

	"github.com/qxzcode/contractsolver/cards"
)

// ErrUnregisteredCardKind is returned when a hand contains a CardKind that
// the Solver's Registry has no Operator for. A caller-maintained State
// invariant (spec.md §3) is supposed to prevent this; it surfaces as an
// error rather than a panic because, unlike the card-multiset internals,
// the registry is assembled by the caller at runtime.
var ErrUnregisteredCardKind = errors.New("no operator registered for card kind")

var (
	statesExplored = expvar.NewInt("solver/states_explored")
	cacheHits      = expvar.NewInt("solver/cache_hits")
)

// Solver is a memoized recursive enumerator over States. It is
// single-threaded and synchronous: every call to CompletionProbability
// returns only once its entire subtree has been evaluated, and there are
// no timeouts or cancellation tokens. A Solver owns its cache exclusively
// and is not safe for concurrent use; independent solves require
// independent Solver instances.
type Solver struct {
	registry *Registry
	cache    map[State]float64
	explored int
}

// NewSolver returns a Solver that interprets hands using registry.
func NewSolver(registry *Registry) *Solver {
	return &Solver{
		registry: registry,
		cache:    make(map[State]float64),
	}
}

// CompletionProbability returns the maximum, over all playable cards and
// all subsequent optimal plays, probability of driving state's
// Requirements to empty before its Actions reach zero.
func (s *Solver) CompletionProbability(state State) (float64, error) {
	s.explored++
	statesExplored.Add(1)

	if state.Requirements.IsEmpty() {
		return 1, nil
	}
	if state.Actions == 0 {
		return 0, nil
	}

	if prob, ok := s.cache[state]; ok {
		cacheHits.Add(1)
		return prob, nil
	}

	var maxProb float64
	var recurseErr error
	state.Hand.Iter(func(kind cards.CardKind, _ int) {
		if recurseErr != nil {
			return
		}
		op, ok := s.registry.Lookup(kind)
		if !ok {
			recurseErr = errors.Wrapf(ErrUnregisteredCardKind, "%v", kind)
			return
		}
		prob, err := op(state, s)
		if err != nil {
			recurseErr = err
			return
		}
		if prob > maxProb {
			maxProb = prob
		}
	})
	if recurseErr != nil {
		return 0, recurseErr
	}

	s.cache[state] = maxProb
	return maxProb, nil
}

// ExploredCount returns the total number of calls to CompletionProbability
// on this Solver, including cache hits.
func (s *Solver) ExploredCount() int {
	return s.explored
}

// CacheSize returns the number of distinct States memoized so far.
func (s *Solver) CacheSize() int {
	return len(s.cache)
}
