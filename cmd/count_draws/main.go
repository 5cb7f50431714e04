// Command count_draws reports how many distinguishable outcomes
// ForEachDraw enumerates when drawing -n cards from the default deck, adapted
// from the teacher's cmd/count_shuffles (which counted distinct
// permutations of a draw pile rather than distinct draw outcomes).
package main

import (
	"flag"

	"github.com/golang/glog"

	"github.com/qxzcode/contractsolver/cards"
	"github.com/qxzcode/contractsolver/deck"
)

func main() {
	n := flag.Int("n", 2, "number of cards to draw")
	flag.Parse()

	pile := deck.DefaultDeck()

	count := 0
	err := pile.ForEachDraw(*n, func(remaining, drawn cards.Cards, prob float64) error {
		count++
		return nil
	})
	if err != nil {
		glog.Fatalf("ForEachDraw failed: %v", err)
	}
	glog.Infof("%d distinguishable outcomes drawing %d from %v", count, *n, pile)
}
