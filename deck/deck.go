// Package deck is the reference card rulebook shipped alongside the
// solver core: the five canonical card kinds from the specification
// (Reactor, Thruster, Shield, Damage, Miss), their transition operators,
// and the default starting deck. It is a plug-in in exactly the sense
// solver.Registry expects -- nothing in package solver imports or knows
// about deck -- so callers are free to register additional kinds of their
// own alongside, or instead of, these.
package deck

import "github.com/qxzcode/contractsolver/cards"

// The five canonical card kinds. Letters and colors follow the reference
// rulebook's ANSI color scheme.
var (
	Reactor  = cards.NewCardKind('R', "96") // bright cyan
	Thruster = cards.NewCardKind('T', "93") // bright yellow
	Shield   = cards.NewCardKind('S', "92") // bright green
	Damage   = cards.NewCardKind('D', "33") // yellow
	Miss     = cards.NewCardKind('M', "37") // white
)

// DefaultDeck returns the preset starting deck: 3 Reactor, 2 Thruster,
// 2 Shield, 2 Damage, 1 Miss.
func DefaultDeck() cards.Cards {
	return cards.NewCards(
		cards.CardCount{Kind: Reactor, Count: 3},
		cards.CardCount{Kind: Thruster, Count: 2},
		cards.CardCount{Kind: Shield, Count: 2},
		cards.CardCount{Kind: Damage, Count: 2},
		cards.CardCount{Kind: Miss, Count: 1},
	)
}
