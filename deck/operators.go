package deck

import (
	"github.com/qxzcode/contractsolver/cards"
	"github.com/qxzcode/contractsolver/solver"
)

// NewRegistry returns a solver.Registry with the five canonical card kinds
// bound to their transition operators.
func NewRegistry() *solver.Registry {
	r := solver.NewRegistry()
	r.Register(Reactor, playReactor)
	r.Register(Thruster, playThruster)
	r.Register(Shield, playShield)
	r.Register(Damage, playDamage)
	r.Register(Miss, playMiss)
	return r
}

// playReactor pays 1 action, then gains 2 (a net gain of 1), and reduces
// the Reactors requirement by 1. It draws nothing.
func playReactor(state solver.State, s *solver.Solver) (float64, error) {
	newHand := state.Hand
	if err := newHand.Remove(Reactor); err != nil {
		return 0, err
	}

	newReqs := state.Requirements
	newReqs.SubReactors(1)

	newState, err := solver.NewState(state.Actions+1, newHand, state.DrawPile, newReqs)
	if err != nil {
		return 0, err
	}
	return s.CompletionProbability(newState)
}

// playThruster pays 1 action, reduces the Thrusters requirement by 1, and
// draws 2 cards from the draw pile. Because the draw is stochastic, the
// result is the probability-weighted sum over every distinguishable draw
// outcome of the completion probability of the resulting successor State.
func playThruster(state solver.State, s *solver.Solver) (float64, error) {
	handBeforeDraw := state.Hand
	if err := handBeforeDraw.Remove(Thruster); err != nil {
		return 0, err
	}

	newReqs := state.Requirements
	newReqs.SubThrusters(1)
	newActions := state.Actions - 1

	var total float64
	err := state.DrawPile.ForEachDraw(2, func(remaining, drawn cards.Cards, prob float64) error {
		newHand := handBeforeDraw.Concat(drawn)
		newState, err := solver.NewState(newActions, newHand, remaining, newReqs)
		if err != nil {
			return err
		}
		childProb, err := s.CompletionProbability(newState)
		if err != nil {
			return err
		}
		total += prob * childProb
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// playShield pays 1 action and reduces the Shields requirement by 1.
// It draws nothing.
func playShield(state solver.State, s *solver.Solver) (float64, error) {
	newHand := state.Hand
	if err := newHand.Remove(Shield); err != nil {
		return 0, err
	}

	newReqs := state.Requirements
	newReqs.SubShields(1)

	newState, err := solver.NewState(state.Actions-1, newHand, state.DrawPile, newReqs)
	if err != nil {
		return 0, err
	}
	return s.CompletionProbability(newState)
}

// playDamage pays 1 action and reduces the Damage requirement by 1.
// It draws nothing.
func playDamage(state solver.State, s *solver.Solver) (float64, error) {
	newHand := state.Hand
	if err := newHand.Remove(Damage); err != nil {
		return 0, err
	}

	newReqs := state.Requirements
	newReqs.SubDamage(1)

	newState, err := solver.NewState(state.Actions-1, newHand, state.DrawPile, newReqs)
	if err != nil {
		return 0, err
	}
	return s.CompletionProbability(newState)
}

// playMiss pays 1 action and has no effect on the requirements.
// It draws nothing.
func playMiss(state solver.State, s *solver.Solver) (float64, error) {
	newHand := state.Hand
	if err := newHand.Remove(Miss); err != nil {
		return 0, err
	}

	newState, err := solver.NewState(state.Actions-1, newHand, state.DrawPile, state.Requirements)
	if err != nil {
		return 0, err
	}
	return s.CompletionProbability(newState)
}
