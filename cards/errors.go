package cards

import "github.com/pkg/errors"

// ErrNotEnoughCards is returned by Remove, RemoveN, and RemoveAll when the
// requested kind is absent, or fewer copies are present than requested.
var ErrNotEnoughCards = errors.New("not enough cards")

// ErrDeckTooLarge is returned by ForEachDraw when the multiset being drawn
// from holds more than 62 cards: above that size, the incremental binomial
// coefficient computation used to weight each draw outcome can overflow
// uint64 arithmetic, which would silently produce incorrect probabilities.
var ErrDeckTooLarge = errors.New("deck too large: total cards exceeds 62")
