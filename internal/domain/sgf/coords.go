package sgf

import (
	"fmt"

	"gogame/internal/domain/board"
)

const maxSize = 19

// FromPoint encodes a board point as SGF coordinates: column letter then row
// letter, both starting at 'a'.
func FromPoint(p board.Point) string {
	return string([]byte{byte('a' + p.X), byte('a' + p.Y)})
}

// ToPoint decodes SGF coordinates for a board of the given size.
func ToPoint(sgfCoord string, boardSize int) (board.Point, error) {
	if len(sgfCoord) != 2 {
		return board.Point{}, fmt.Errorf("invalid SGF coordinate: %q", sgfCoord)
	}
	p := board.Point{X: int(sgfCoord[0]) - 'a', Y: int(sgfCoord[1]) - 'a'}
	if p.X < 0 || p.Y < 0 || p.X >= boardSize || p.Y >= boardSize {
		return board.Point{}, fmt.Errorf("coordinate outside board: %q", sgfCoord)
	}
	return p, nil
}

// ToStandard converts SGF coordinates to the usual board notation ("D4"):
// columns skip the letter I and rows count up from the bottom edge.
func ToStandard(sgfCoord string, boardSize int) (string, error) {
	if boardSize < 1 || boardSize > maxSize {
		return "", fmt.Errorf("unsupported board size %d", boardSize)
	}
	p, err := ToPoint(sgfCoord, boardSize)
	if err != nil {
		return "", err
	}
	standardCol := byte('A' + p.X)
	if standardCol >= 'I' {
		standardCol++
	}
	standardRow := boardSize - p.Y
	return fmt.Sprintf("%c%d", standardCol, standardRow), nil
}
