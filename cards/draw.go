package cards

import "math/rand"

// maxDeckSizeForExactBinomial is the largest total pile size for which the
// incremental binomial coefficient product below is guaranteed not to
// overflow a uint64. See ForEachDraw.
const maxDeckSizeForExactBinomial = 62

// binomial computes C(n, k), the number of ways to choose k items from n,
// using the symmetric identity C(n, k) = C(n, n-k) and the incremental
// product c <- c * (n-i) / (i+1). Division is always exact because the
// running product is itself a binomial coefficient of the enumerated
// prefix.
func binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}

	c := uint64(1)
	for i := 0; i < k; i++ {
		c = c * uint64(n-i) / uint64(i+1)
	}
	return c
}

// DrawOutcomeFunc is called once per distinguishable outcome discovered by
// ForEachDraw, with the cards remaining in the pile, the cards drawn, and
// the exact probability of that outcome. Returning a non-nil error stops
// enumeration early and propagates the error to ForEachDraw's caller.
type DrawOutcomeFunc func(remaining, drawn Cards, probability float64) error

// ForEachDraw invokes f exactly once per distinguishable outcome of drawing
// n cards uniformly at random without replacement from c, where outcomes
// are equivalence classes under "same multiset drawn from same multiset
// remaining." Reported probabilities are exact (multivariate hypergeometric)
// and sum to 1.
//
// If the pile is empty and n > 0, ForEachDraw reports a single no-op
// outcome (nothing remaining, nothing drawn, probability 1): the solver
// relies on this to represent "tried to draw but nothing happened."
// If n >= the pile's total size, the whole pile is drawn deterministically.
// If n == 0, the original multiset is reported as remaining with nothing
// drawn, probability 1.
//
// ForEachDraw returns ErrDeckTooLarge without calling f if the pile holds
// more than 62 cards, since the binomial coefficients used to weight
// outcomes are not guaranteed correct above that size.
func (c Cards) ForEachDraw(n int, f DrawOutcomeFunc) error {
	kinds := c.Distinct()
	total := c.Size()

	if total > maxDeckSizeForExactBinomial {
		return ErrDeckTooLarge
	}

	if len(kinds) == 0 {
		return f(c, c, 1)
	}
	if n > total {
		n = total
	}
	if n == 0 {
		return f(c, Cards{}, 1)
	}

	denom := binomial(total, n)
	norm := 1 / float64(denom)

	counts := make([]int, len(kinds))
	inDeck := make([]int, len(kinds))
	for i, kind := range kinds {
		inDeck[i] = c.CountOf(kind)
	}

	return enumerateDraws(kinds, inDeck, counts, 0, n, norm, f)
}

// enumerateDraws recursively assigns, for each kind in order, a number of
// cards to draw of that kind, and emits an outcome once the draws across
// all kinds sum to the requested total.
func enumerateDraws(kinds []CardKind, inDeck, counts []int, i, remaining int, norm float64, f DrawOutcomeFunc) error {
	if i == len(kinds) {
		if remaining != 0 {
			return nil // ran out of kinds before drawing enough; not a valid outcome
		}
		return emitDraw(kinds, inDeck, counts, norm, f)
	}

	maxDraw := inDeck[i]
	if remaining < maxDraw {
		maxDraw = remaining
	}
	for d := 0; d <= maxDraw; d++ {
		counts[i] = d
		if err := enumerateDraws(kinds, inDeck, counts, i+1, remaining-d, norm, f); err != nil {
			return err
		}
	}
	counts[i] = 0
	return nil
}

func emitDraw(kinds []CardKind, inDeck, counts []int, norm float64, f DrawOutcomeFunc) error {
	var remaining, drawn Cards
	numerator := uint64(1)
	for i, kind := range kinds {
		drawn.Add(kind, counts[i])
		remaining.Add(kind, inDeck[i]-counts[i])
		numerator *= binomial(inDeck[i], counts[i])
	}
	prob := float64(numerator) * norm
	return f(remaining, drawn, prob)
}

// DrawRandom draws n cards from the top of a uniformly shuffled version of
// c, returning the reduced pile and the drawn cards. Its outcome is one
// sample from the same distribution ForEachDraw enumerates exhaustively;
// it is used for simulation, not for the exact solver.
func DrawRandom(c Cards, n int) (remaining, drawn Cards) {
	flat := make([]CardKind, 0, c.Size())
	c.Iter(func(kind CardKind, count int) {
		for i := 0; i < count; i++ {
			flat = append(flat, kind)
		}
	})

	rand.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	if n > len(flat) {
		n = len(flat)
	}
	for _, kind := range flat[:n] {
		drawn.Add(kind, 1)
	}
	for _, kind := range flat[n:] {
		remaining.Add(kind, 1)
	}
	return remaining, drawn
}
