// Package cards implements the multiset of playable cards that backs a
// contract-completion State: a fixed-slot count per CardKind, with exact
// enumeration of the distinguishable outcomes of drawing from it.
package cards

import "fmt"

// MaxCardKinds bounds how many distinct CardKind values may be registered
// over the lifetime of a process. Cards packs one count per slot into a
// fixed-size array so that it (and therefore State) remains a comparable
// Go value usable directly as a map key; 64 slots is far more than any
// contract rulebook in this domain needs.
const MaxCardKinds = 64

var (
	registeredKinds []CardKind
	maxSortOrder    int
)

// CardKind is an immutable descriptor identifying one distinguishable card
// type: a stable identity (its registration slot), a display letter, a
// presentation color tag, and a sort order used only for rendering.
//
// CardKinds are process-wide constants, created only via NewCardKind /
// NewCardKindWithOrder at package-init time, and are never created or
// destroyed during a solve. Two CardKind values compare equal iff they
// were produced by the same registration.
type CardKind struct {
	slot      int
	Letter    byte
	Color     string // ANSI SGR color parameter, e.g. "96"
	SortOrder int
}

// NewCardKind registers a new CardKind with an automatically assigned sort
// order (one greater than the highest sort order registered so far).
func NewCardKind(letter byte, color string) CardKind {
	maxSortOrder++
	return NewCardKindWithOrder(letter, color, maxSortOrder)
}

// NewCardKindWithOrder registers a new CardKind with an explicit sort
// order, for callers that want to interleave their own kinds among the
// defaults' rendering order.
func NewCardKindWithOrder(letter byte, color string, sortOrder int) CardKind {
	if len(registeredKinds) >= MaxCardKinds {
		panic(fmt.Errorf("cards: cannot register more than %d card kinds", MaxCardKinds))
	}
	if sortOrder > maxSortOrder {
		maxSortOrder = sortOrder
	}

	kind := CardKind{
		slot:      len(registeredKinds),
		Letter:    letter,
		Color:     color,
		SortOrder: sortOrder,
	}
	registeredKinds = append(registeredKinds, kind)
	return kind
}

// String implements Stringer, rendering the kind's display letter.
func (k CardKind) String() string {
	return string(k.Letter)
}
