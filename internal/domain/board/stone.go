package board

import (
	"fmt"
	"strings"

	errs "gogame/internal/errors"
)

type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the other player's color. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (s Stone) IsPlayer() bool {
	return s == Black || s == White
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Short is the one-letter SGF property name for a player color.
func (s Stone) Short() string {
	switch s {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return ""
	}
}

// ParseStone accepts "black"/"white" in any case, or the SGF letters.
func ParseStone(v string) (Stone, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("%w: %q", errs.ErrInvalidColor, v)
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonOccupied
	ReasonSuicide
	ReasonKo
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "OutOfBounds"
	case ReasonOccupied:
		return "Occupied"
	case ReasonSuicide:
		return "Suicide"
	case ReasonKo:
		return "KoViolation"
	default:
		return "None"
	}
}

// Err maps a rejection reason to its sentinel error.
func (r Reason) Err() error {
	switch r {
	case ReasonOutOfBounds:
		return errs.ErrOutOfBounds
	case ReasonOccupied:
		return errs.ErrOccupied
	case ReasonSuicide:
		return errs.ErrSuicide
	case ReasonKo:
		return errs.ErrKoViolation
	default:
		return nil
	}
}

type MoveResult struct {
	Accepted       bool
	Reason         Reason
	StonesCaptured int
}

func (m MoveResult) Err() error {
	if m.Accepted {
		return nil
	}
	return m.Reason.Err()
}
