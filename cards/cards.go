package cards

import (
	"strings"

	"github.com/pkg/errors"
)

// maxCountPerKind bounds the count stored per slot. A contract deck's total
// size is capped at 62 by ForEachDraw's arithmetic guard, so a single kind
// can never legitimately approach this.
const maxCountPerKind = 1<<8 - 1

// Cards is an unordered multiset of CardKind -> count. It is a fixed-size
// array of per-slot counts rather than a map, which keeps Cards (and any
// struct embedding it, such as a solver State) a comparable Go value: two
// Cards built from different orderings of the same (kind, count) pairs are
// == to each other and hash identically when used as a map key.
//
// The zero Cards is the empty multiset.
type Cards [MaxCardKinds]uint8

// CardCount pairs a CardKind with a quantity, for bulk construction.
type CardCount struct {
	Kind  CardKind
	Count int
}

// NewCards builds a Cards multiset from a list of (kind, count) pairs.
// A zero count is a no-op for that pair.
func NewCards(pairs ...CardCount) Cards {
	var c Cards
	for _, p := range pairs {
		c.Add(p.Kind, p.Count)
	}
	return c
}

// CountOf returns the number of the given kind present in the multiset.
func (c Cards) CountOf(kind CardKind) int {
	return int(c[kind.slot])
}

// Contains reports whether the multiset holds at least one of kind.
func (c Cards) Contains(kind CardKind) bool {
	return c[kind.slot] > 0
}

// Size returns the total number of cards in the multiset.
func (c Cards) Size() int {
	total := 0
	for _, n := range c {
		total += int(n)
	}
	return total
}

// IsEmpty reports whether the multiset holds no cards.
func (c Cards) IsEmpty() bool {
	return c.Size() == 0
}

// Iter calls cb once for each distinct kind present, in registration order.
func (c Cards) Iter(cb func(kind CardKind, count int)) {
	for _, kind := range registeredKinds {
		if n := c[kind.slot]; n > 0 {
			cb(kind, int(n))
		}
	}
}

// Distinct returns the kinds present in the multiset, in registration order.
func (c Cards) Distinct() []CardKind {
	var result []CardKind
	c.Iter(func(kind CardKind, _ int) {
		result = append(result, kind)
	})
	return result
}

// Add includes n of the given kind in the multiset. n=0 is a no-op.
func (c *Cards) Add(kind CardKind, n int) {
	if n == 0 {
		return
	}
	if int(c[kind.slot])+n > maxCountPerKind {
		panic(errors.Errorf("cards: count of %v would overflow its slot", kind))
	}
	c[kind.slot] += uint8(n)
}

// Remove removes one of the given kind from the multiset.
// It fails with ErrNotEnoughCards if none are present.
func (c *Cards) Remove(kind CardKind) error {
	return c.RemoveN(kind, 1)
}

// RemoveN removes n of the given kind from the multiset.
// It fails with ErrNotEnoughCards if fewer than n are present. n=0 is a
// no-op and always succeeds.
func (c *Cards) RemoveN(kind CardKind, n int) error {
	if n == 0 {
		return nil
	}
	have := int(c[kind.slot])
	if have < n {
		return errors.Wrapf(ErrNotEnoughCards, "%v: have %d, want to remove %d", kind, have, n)
	}
	c[kind.slot] -= uint8(n)
	return nil
}

// RemoveAll removes every copy of the given kind from the multiset.
// It fails with ErrNotEnoughCards if the kind is entirely absent.
func (c *Cards) RemoveAll(kind CardKind) error {
	have := int(c[kind.slot])
	if have == 0 {
		return errors.Wrapf(ErrNotEnoughCards, "%v: not present", kind)
	}
	c[kind.slot] = 0
	return nil
}

// Concat returns a new multiset holding the union of c and other's counts.
func (c Cards) Concat(other Cards) Cards {
	result := c
	result.AddAll(other)
	return result
}

// AddAll adds every count in other to the multiset in place.
func (c *Cards) AddAll(other Cards) {
	for slot, n := range other {
		if n == 0 {
			continue
		}
		if int(c[slot])+int(n) > maxCountPerKind {
			panic(errors.New("cards: count would overflow its slot"))
		}
		c[slot] += n
	}
}

// Equal reports whether c and other hold the same counts for every kind.
// Because Cards is a fixed-size array, this is equivalent to c == other;
// Equal is provided for readability and API parity with the specification.
func (c Cards) Equal(other Cards) bool {
	return c == other
}

// Hash returns an order-independent hash of the multiset's contents: the
// per-entry hashes of (kind, count) pairs are combined with XOR, which is
// associative and commutative, so the result does not depend on iteration
// order. Cards used directly as a Go map key (e.g. embedded in a solver
// State) does not need this method for correctness -- Go already hashes
// the underlying array structurally -- but it is exposed to satisfy the
// explicit hashing contract described in the specification.
func (c Cards) Hash() uint64 {
	var seed uint64
	c.Iter(func(kind CardKind, count int) {
		seed ^= hashCombine(uint64(kind.slot), uint64(count))
	})
	return seed
}

func hashCombine(a, b uint64) uint64 {
	h := a*0x9e3779b97f4a7c15 + 1
	h ^= b + 0x9e3779b9 + (h << 6) + (h >> 2)
	return h
}

// String returns a concatenation of kind letters, in registration order.
func (c Cards) String() string {
	var sb strings.Builder
	c.Iter(func(kind CardKind, count int) {
		for i := 0; i < count; i++ {
			sb.WriteByte(kind.Letter)
		}
	})
	return sb.String()
}

// ConsoleString returns letters grouped by kind, ordered by SortOrder
// ascending, each group wrapped in ANSI SGR color escapes. An empty
// multiset renders as a dim "<no cards>" placeholder.
func (c Cards) ConsoleString() string {
	if c.IsEmpty() {
		return "\033[90m<no cards>\033[0m"
	}

	kinds := c.Distinct()
	sortBySortOrder(kinds)

	var sb strings.Builder
	for _, kind := range kinds {
		sb.WriteString("\033[")
		sb.WriteString(kind.Color)
		sb.WriteByte('m')
		n := c.CountOf(kind)
		for i := 0; i < n; i++ {
			sb.WriteByte(kind.Letter)
		}
	}
	sb.WriteString("\033[0m")
	return sb.String()
}

func sortBySortOrder(kinds []CardKind) {
	for i := 1; i < len(kinds); i++ {
		for j := i; j > 0 && kinds[j-1].SortOrder > kinds[j].SortOrder; j-- {
			kinds[j-1], kinds[j] = kinds[j], kinds[j-1]
		}
	}
}
