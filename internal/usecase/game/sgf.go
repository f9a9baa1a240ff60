package game

import (
	"strconv"

	"gogame/internal/domain/board"
	"gogame/internal/domain/game"
	"gogame/internal/domain/sgf"
)

// SGF renders the game record so far.
func (s *Session) SGF() string {
	record := s.prepareSgfFile()
	AddMovesToSgf(record.Root, s.moves)
	return record.String()
}

func (s *Session) prepareSgfFile() sgf.SGF {
	props := map[string][]string{
		"FF": {"4"},
		"GM": {"1"},
		"SZ": {strconv.Itoa(s.size)},
		"PB": {s.playerName(board.Black)},
		"PW": {s.playerName(board.White)},
	}
	if s.result != "" {
		props["RE"] = []string{s.result}
	} else if s.over {
		props["RE"] = []string{"Void"}
	}
	return sgf.NewRecord(props)
}

func (s *Session) playerName(color board.Stone) string {
	if color == s.playerColor {
		return "Human"
	}
	return "Bot"
}

// AddMovesToSgf appends one node per move; a pass is an empty value.
func AddMovesToSgf(tree *sgf.GameTree, moves []game.Move) {
	for _, move := range moves {
		tree.AppendNode(move.Color, move.Coordinates)
	}
}
