// Package requirements implements the fixed-shape bag of non-negative
// counters a contract demands be driven to zero.
package requirements

import (
	"strconv"
	"strings"
)

// axis names a single requirement counter, used only for rendering.
type axis struct {
	letter byte
	color  string
	count  func(Requirements) int
}

// Requirements is a fixed-shape bag of non-negative counters, one per
// requirement axis. Subtraction saturates at zero: requesting more than
// available sets the counter to zero without error. Requirements is a
// plain struct of ints, so equality and hashing are field-wise for free
// when it is compared or used as (part of) a Go map key.
type Requirements struct {
	Reactors  int
	Thrusters int
	Shields   int
	Damage    int
	Crew      int
}

// New builds a Requirements from its five named counters.
func New(reactors, thrusters, shields, damage, crew int) Requirements {
	return Requirements{
		Reactors:  reactors,
		Thrusters: thrusters,
		Shields:   shields,
		Damage:    damage,
		Crew:      crew,
	}
}

// IsEmpty reports whether every counter is zero.
func (r Requirements) IsEmpty() bool {
	return r == Requirements{}
}

func subSaturating(counter, n int) int {
	if n >= counter {
		return 0
	}
	return counter - n
}

// SubReactors subtracts n from Reactors, saturating at zero.
func (r *Requirements) SubReactors(n int) { r.Reactors = subSaturating(r.Reactors, n) }

// SubThrusters subtracts n from Thrusters, saturating at zero.
func (r *Requirements) SubThrusters(n int) { r.Thrusters = subSaturating(r.Thrusters, n) }

// SubShields subtracts n from Shields, saturating at zero.
func (r *Requirements) SubShields(n int) { r.Shields = subSaturating(r.Shields, n) }

// SubDamage subtracts n from Damage, saturating at zero.
func (r *Requirements) SubDamage(n int) { r.Damage = subSaturating(r.Damage, n) }

// SubCrew subtracts n from Crew, saturating at zero.
func (r *Requirements) SubCrew(n int) { r.Crew = subSaturating(r.Crew, n) }

// Equal reports whether r and other have identical counters. Requirements
// is a comparable struct, so this is equivalent to r == other; provided
// for API parity with the specification.
func (r Requirements) Equal(other Requirements) bool {
	return r == other
}

var axes = []axis{
	{'R', "96", func(r Requirements) int { return r.Reactors }},
	{'T', "93", func(r Requirements) int { return r.Thrusters }},
	{'S', "92", func(r Requirements) int { return r.Shields }},
	{'D', "33", func(r Requirements) int { return r.Damage }},
	{'C', "95", func(r Requirements) int { return r.Crew }},
}

// String joins the non-zero axes with ", ", each rendered as "<letter>x
// <count>" (the multiplication sign is the UTF-8 encoding of U+00D7).
// With color, each letter is wrapped in its axis's ANSI SGR escape.
func (r Requirements) String(color bool) string {
	var parts []string
	for _, a := range axes {
		n := a.count(r)
		if n == 0 {
			continue
		}
		var sb strings.Builder
		if color {
			sb.WriteString("\033[")
			sb.WriteString(a.color)
			sb.WriteByte('m')
			sb.WriteByte(a.letter)
			sb.WriteString("\033[0m")
		} else {
			sb.WriteByte(a.letter)
		}
		sb.WriteString("\xc3\x97")
		sb.WriteString(strconv.Itoa(n))
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, ", ")
}
