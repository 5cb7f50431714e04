package deck

import (
	"math"
	"testing"

	"github.com/qxzcode/contractsolver/cards"
	"github.com/qxzcode/contractsolver/requirements"
	"github.com/qxzcode/contractsolver/solver"
)

func TestReactorNetGainsOneAction(t *testing.T) {
	s := solver.NewSolver(NewRegistry())
	hand := cards.NewCards(cards.CardCount{Kind: Reactor, Count: 1}, cards.CardCount{Kind: Damage, Count: 2})
	state, err := solver.NewState(1, hand, cards.Cards{}, requirements.New(1, 0, 0, 2, 0))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	prob, err := s.CompletionProbability(state)
	if err != nil {
		t.Fatalf("CompletionProbability returned error: %v", err)
	}
	if prob != 1 {
		t.Errorf("prob = %v, want 1", prob)
	}
}

func TestThrusterProbabilisticDraw(t *testing.T) {
	s := solver.NewSolver(NewRegistry())
	hand := cards.NewCards(cards.CardCount{Kind: Thruster, Count: 1})
	pile := cards.NewCards(cards.CardCount{Kind: Damage, Count: 1}, cards.CardCount{Kind: Miss, Count: 2})
	state, err := solver.NewState(2, hand, pile, requirements.New(0, 1, 0, 1, 0))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	prob, err := s.CompletionProbability(state)
	if err != nil {
		t.Fatalf("CompletionProbability returned error: %v", err)
	}
	want := 2.0 / 3.0
	if math.Abs(prob-want) > 1e-12 {
		t.Errorf("prob = %v, want %v", prob, want)
	}
}

func TestMissNeverHelps(t *testing.T) {
	s := solver.NewSolver(NewRegistry())
	hand := cards.NewCards(cards.CardCount{Kind: Miss, Count: 1})
	state, err := solver.NewState(1, hand, cards.Cards{}, requirements.New(1, 0, 0, 0, 0))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	prob, err := s.CompletionProbability(state)
	if err != nil {
		t.Fatalf("CompletionProbability returned error: %v", err)
	}
	if prob != 0 {
		t.Errorf("prob = %v, want 0", prob)
	}
}

func TestShieldAndDamageAreSimpleReducers(t *testing.T) {
	s := solver.NewSolver(NewRegistry())
	hand := cards.NewCards(cards.CardCount{Kind: Shield, Count: 1}, cards.CardCount{Kind: Damage, Count: 1})
	state, err := solver.NewState(2, hand, cards.Cards{}, requirements.New(0, 0, 1, 1, 0))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	prob, err := s.CompletionProbability(state)
	if err != nil {
		t.Fatalf("CompletionProbability returned error: %v", err)
	}
	if prob != 1 {
		t.Errorf("prob = %v, want 1", prob)
	}
}

func TestOperatorsDoNotMutateInputState(t *testing.T) {
	s := solver.NewSolver(NewRegistry())
	hand := cards.NewCards(cards.CardCount{Kind: Damage, Count: 1})
	state, err := solver.NewState(1, hand, cards.Cards{}, requirements.New(0, 0, 0, 1, 0))
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}

	before := state
	if _, err := s.CompletionProbability(state); err != nil {
		t.Fatalf("CompletionProbability returned error: %v", err)
	}
	if state != before {
		t.Errorf("CompletionProbability mutated its argument: %+v != %+v", state, before)
	}
}
