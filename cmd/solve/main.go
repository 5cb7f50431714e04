// Command solve is a demo CLI over the contract-completion solver: it
// deals a random hand and draw pile from the default deck, looks up (or
// builds) a set of requirements, and prints the exact probability of
// completing them within the given action budget.
//
// It is intentionally thin: it solves exactly the one State it is given
// and never compares contracts or advises a choice among them, since
// spec.md scopes any higher-level strategy advisor out of this system.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/glog"

	"github.com/qxzcode/contractsolver/cards"
	"github.com/qxzcode/contractsolver/catalog"
	"github.com/qxzcode/contractsolver/deck"
	"github.com/qxzcode/contractsolver/requirements"
	"github.com/qxzcode/contractsolver/solver"
)

func main() {
	actions := flag.Int("actions", 1, "action budget available to complete the contract")
	handSize := flag.Int("hand", 5, "number of cards dealt to the starting hand")
	contractName := flag.String("contract", "", "name of a catalog contract to attempt (see catalog.Contracts); overrides -reactors/-thrusters/-shields/-damage/-crew")
	reactors := flag.Int("reactors", 2, "reactors required (ignored if -contract is set)")
	thrusters := flag.Int("thrusters", 1, "thrusters required (ignored if -contract is set)")
	shields := flag.Int("shields", 1, "shields required (ignored if -contract is set)")
	damage := flag.Int("damage", 0, "damage required (ignored if -contract is set)")
	crew := flag.Int("crew", 0, "crew required (ignored if -contract is set)")
	seed := flag.Int64("seed", 1, "random seed for dealing the hand and draw pile")
	flag.Parse()

	rand.Seed(*seed)

	reqs := requirements.New(*reactors, *thrusters, *shields, *damage, *crew)
	if *contractName != "" {
		contract, ok := lookupContract(*contractName)
		if !ok {
			glog.Fatalf("no contract named %q in catalog.Contracts", *contractName)
		}
		reqs = contract.Requirements
		glog.Infof("attempting %q (%v, %d hazard dice): requirements %s",
			contract.Name, contract.Kind, contract.HazardDice, reqs.String(true))
	}

	startingDeck := deck.DefaultDeck()
	drawPile, hand := cards.DrawRandom(startingDeck, *handSize)

	registry := deck.NewRegistry()
	s := solver.NewSolver(registry)

	state, err := solver.NewState(*actions, hand, drawPile, reqs)
	if err != nil {
		glog.Fatalf("invalid starting state: %v", err)
	}

	fmt.Printf("hand: %s  |  draw pile: %s\n", hand.ConsoleString(), drawPile.ConsoleString())
	fmt.Printf("requirements: %s\n", reqs.String(true))

	prob, err := s.CompletionProbability(state)
	if err != nil {
		glog.Fatalf("solve failed: %v", err)
	}

	fmt.Printf("probability of completion: %.2f%% (%s)\n", prob*100, describeOdds(prob))
	glog.Infof("explored %d states (%d memoized)", s.ExploredCount(), s.CacheSize())
}

func lookupContract(name string) (catalog.Contract, bool) {
	for _, c := range catalog.Contracts {
		if c.Name == name {
			return c, true
		}
	}
	return catalog.Contract{}, false
}

func describeOdds(prob float64) string {
	switch {
	case prob == 0:
		return "impossible"
	case math.Abs(prob-1) < 1e-6:
		return "guaranteed"
	default:
		return fmt.Sprintf("1 in %.1f", 1/prob)
	}
}
