// Package catalog holds the static contract data the solver's core does
// not define: names, reward payouts, and hazard-dice counts for a
// reference set of contracts, each paired with the Requirements a player
// must drive to empty to complete it.
//
// This is supplemental, not core: spec.md's Purpose & Scope excludes "any
// higher-level strategy advisor," so this package is pure data. Nothing
// here ranks contracts or chooses among them -- that decision is left to
// the caller, who can feed any one Contract's Requirements to a
// solver.Solver directly.
package catalog

import "github.com/qxzcode/contractsolver/requirements"

// ContractKind categorizes the flavor of a contract. It has no effect on
// solving; it is carried through for display purposes only.
type ContractKind int

const (
	Explore ContractKind = iota
	Rescue
	Delivery
	Kill
)

var contractKindStr = [...]string{
	"Explore",
	"Rescue",
	"Delivery",
	"Kill",
}

// String implements Stringer.
func (k ContractKind) String() string {
	return contractKindStr[k]
}

// Rewards describes the payout for completing a contract.
type Rewards struct {
	Prestige int
	Credits  int
	Cards    int
}

// Contract pairs a named objective with the Requirements a player must
// satisfy to complete it.
//
// HazardDice is carried as descriptive data only, transcribed faithfully
// from the source material's contract catalog. It represents a randomized
// hazard mechanic that is out of scope for this solver (spec.md's
// Non-goals exclude modeling an adversary), so no operation in this
// module reads it to influence a completion probability.
type Contract struct {
	Name         string
	Kind         ContractKind
	Rewards      Rewards
	Requirements requirements.Requirements
	HazardDice   int
}
