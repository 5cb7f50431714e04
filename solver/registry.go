package solver

import "github.com/qxzcode/contractsolver/cards"

// Operator computes the completion probability after playing one card of
// some registered CardKind from state, with the solver available for
// recursing into successor states. Operators must never mutate state;
// each constructs a fresh successor State.
type Operator func(state State, solver *Solver) (float64, error)

// Registry maps a CardKind's identity to the Operator that interprets it.
// Registries are populated once at startup and then treated as read-only;
// a Solver borrows a Registry rather than owning one, so the same rulebook
// can back many independent Solver instances.
type Registry struct {
	operators map[cards.CardKind]Operator
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{operators: make(map[cards.CardKind]Operator)}
}

// Register binds kind to op, overwriting any previous binding for kind.
func (r *Registry) Register(kind cards.CardKind, op Operator) {
	r.operators[kind] = op
}

// Lookup returns the Operator bound to kind, if any.
func (r *Registry) Lookup(kind cards.CardKind) (Operator, bool) {
	op, ok := r.operators[kind]
	return op, ok
}
