package contracts

import (
	"fmt"
	"strings"
)

// Position is one of the five canonical roster positions.
// ⭐ SSOT: 포지션 enum은 여기서만 정의
type Position int8

const (
	C Position = iota
	LW
	RW
	D
	G

	// NumPositions sizes every PositionTable.
	NumPositions = 5

	// NoPosition marks a player without any canonical eligibility.
	NoPosition Position = -1
)

var positionNames = [NumPositions]string{"C", "LW", "RW", "D", "G"}

// AllPositions lists the canonical positions in table order.
var AllPositions = [NumPositions]Position{C, LW, RW, D, G}

// Skaters are the positions a utility slot can hold.
var Skaters = [4]Position{C, LW, RW, D}

// Forwards share one pool in combined-forward mode.
var Forwards = [3]Position{C, LW, RW}

// Valid reports whether p indexes a PositionTable.
func (p Position) Valid() bool {
	return p >= C && p <= G
}

// IsForward reports whether p is C, LW or RW.
func (p Position) IsForward() bool {
	return p == C || p == LW || p == RW
}

func (p Position) String() string {
	if !p.Valid() {
		return ""
	}
	return positionNames[p]
}

// ParsePosition converts a canonical token ("C", "lw", " D ") to a Position.
func ParsePosition(s string) (Position, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range positionNames {
		if name == token {
			return Position(i), nil
		}
	}
	return NoPosition, fmt.Errorf("unknown position %q", s)
}

// MarshalText renders NoPosition as an empty string.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts an empty string as NoPosition.
func (p *Position) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*p = NoPosition
		return nil
	}
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PositionSet is a deduplicated set of canonical positions.
type PositionSet uint8

// NewPositionSet builds a set from positions, ignoring invalid ones.
func NewPositionSet(positions ...Position) PositionSet {
	var s PositionSet
	for _, p := range positions {
		s = s.Add(p)
	}
	return s
}

// Add returns s with p included.
func (s PositionSet) Add(p Position) PositionSet {
	if !p.Valid() {
		return s
	}
	return s | 1<<uint(p)
}

// Has reports membership.
func (s PositionSet) Has(p Position) bool {
	return p.Valid() && s&(1<<uint(p)) != 0
}

// Len is the number of positions in the set.
func (s PositionSet) Len() int {
	n := 0
	for _, p := range AllPositions {
		if s.Has(p) {
			n++
		}
	}
	return n
}

// Empty reports whether the set holds no position.
func (s PositionSet) Empty() bool {
	return s == 0
}

// Positions returns members in canonical order.
func (s PositionSet) Positions() []Position {
	out := make([]Position, 0, NumPositions)
	for _, p := range AllPositions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// HasForward reports whether any of C, LW, RW is present.
func (s PositionSet) HasForward() bool {
	return s.Has(C) || s.Has(LW) || s.Has(RW)
}

func (s PositionSet) String() string {
	names := make([]string, 0, NumPositions)
	for _, p := range s.Positions() {
		names = append(names, p.String())
	}
	return strings.Join(names, ",")
}

// PositionTable is a fixed-size table indexed by Position.
type PositionTable[T any] [NumPositions]T

// Get returns the entry for p, or the zero value for NoPosition.
func (t *PositionTable[T]) Get(p Position) T {
	var zero T
	if !p.Valid() {
		return zero
	}
	return t[p]
}

// Set stores v for p; invalid positions are ignored.
func (t *PositionTable[T]) Set(p Position, v T) {
	if p.Valid() {
		t[p] = v
	}
}
