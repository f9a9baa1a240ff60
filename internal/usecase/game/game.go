package game

import (
	"fmt"

	"gogame/internal/domain/board"
	"gogame/internal/domain/game"
	"gogame/internal/domain/sgf"
	"gogame/internal/errors"
)

// Result is what an accepted session operation reports back.
type Result struct {
	Message  string `json:"message"`
	Captured int    `json:"captured"`
}

// Session drives one game: turn order, passes, resignation and restart.
// It is not safe for concurrent use; callers serialize access per session.
type Session struct {
	size         int
	board        *board.Board
	current      board.Stone
	playerColor  board.Stone
	botColor     board.Stone
	passes       int
	over         bool
	lastCaptures int
	winner       board.Stone
	result       string
	moves        []game.Move
}

func NewSession(size int) *Session {
	return &Session{
		size:        size,
		board:       board.New(size),
		current:     board.Black,
		playerColor: board.Black,
		botColor:    board.White,
	}
}

// PlayMove places a stone for the player to move.
func (s *Session) PlayMove(p board.Point) (Result, error) {
	if s.over {
		return Result{}, errors.ErrSessionOver
	}

	color := s.current
	res := s.board.AttemptMove(p, color)
	if !res.Accepted {
		return Result{}, res.Err()
	}

	s.passes = 0
	s.lastCaptures = res.StonesCaptured
	coord := sgf.FromPoint(p)
	s.moves = append(s.moves, game.Move{Color: color.Short(), Coordinates: coord})
	s.current = color.Opponent()

	msg := fmt.Sprintf("%s plays %s.", color, s.notation(coord))
	if res.StonesCaptured > 0 {
		msg += fmt.Sprintf(" %d captured.", res.StonesCaptured)
	}
	return Result{Message: msg, Captured: res.StonesCaptured}, nil
}

// PlayMoveAs is PlayMove guarded against moving out of turn.
func (s *Session) PlayMoveAs(color board.Stone, p board.Point) (Result, error) {
	if err := s.checkTurn(color); err != nil {
		return Result{}, err
	}
	return s.PlayMove(p)
}

// PassTurn ends the game on the second consecutive pass.
func (s *Session) PassTurn() (Result, error) {
	if s.over {
		return Result{}, errors.ErrSessionOver
	}

	s.passes++
	s.moves = append(s.moves, game.Move{Color: s.current.Short()})
	if s.passes >= 2 {
		s.over = true
		return Result{Message: "Both players passed. Game over."}, nil
	}

	s.current = s.current.Opponent()
	return Result{Message: fmt.Sprintf("%s to play.", s.current)}, nil
}

func (s *Session) PassTurnAs(color board.Stone) (Result, error) {
	if err := s.checkTurn(color); err != nil {
		return Result{}, err
	}
	return s.PassTurn()
}

// Resign concedes the game for the player to move.
func (s *Session) Resign() (Result, error) {
	if s.over {
		return Result{}, errors.ErrSessionOver
	}

	s.over = true
	loser := s.current
	s.winner = loser.Opponent()
	s.result = s.winner.Short() + "+R"
	return Result{Message: fmt.Sprintf("%s resigns. %s wins.", loser, s.winner)}, nil
}

// SetPlayerColor assigns the human color, gives the bot the other one and
// hands the move back to Black. The board is left alone.
func (s *Session) SetPlayerColor(color board.Stone) error {
	if !color.IsPlayer() {
		return fmt.Errorf("%w: %v", errors.ErrInvalidColor, color)
	}
	s.playerColor = color
	s.botColor = color.Opponent()
	s.current = board.Black
	return nil
}

// Restart starts over on an empty board of the same size. Colors are kept.
func (s *Session) Restart() (Result, error) {
	s.board = board.New(s.size)
	s.current = board.Black
	s.passes = 0
	s.over = false
	s.lastCaptures = 0
	s.winner = board.Empty
	s.result = ""
	s.moves = nil
	return Result{Message: "Game restarted."}, nil
}

func (s *Session) checkTurn(color board.Stone) error {
	if s.over {
		return errors.ErrSessionOver
	}
	if color != s.current {
		return fmt.Errorf("%w: %s to play", errors.ErrNotCurrentPlayer, s.current)
	}
	return nil
}

func (s *Session) notation(coord string) string {
	if std, err := sgf.ToStandard(coord, s.size); err == nil {
		return std
	}
	return coord
}

func (s *Session) Board() *board.Board { return s.board }
func (s *Session) Grid() [][]board.Stone { return s.board.Grid() }
func (s *Session) Size() int { return s.size }
func (s *Session) CurrentPlayer() board.Stone { return s.current }
func (s *Session) PlayerColor() board.Stone { return s.playerColor }
func (s *Session) BotColor() board.Stone { return s.botColor }
func (s *Session) GameOver() bool { return s.over }
func (s *Session) LastCaptures() int { return s.lastCaptures }
func (s *Session) Passes() int { return s.passes }

// Winner is Empty unless the game ended by resignation.
func (s *Session) Winner() board.Stone { return s.winner }

// Result is "B+R"/"W+R" after a resignation, empty otherwise.
func (s *Session) Result() string { return s.result }

func (s *Session) Moves() []game.Move {
	out := make([]game.Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// State snapshots the session for the presentation layer.
func (s *Session) State() game.State {
	grid := s.board.Grid()
	cells := make([][]string, len(grid))
	for y, row := range grid {
		cells[y] = make([]string, len(row))
		for x, stone := range row {
			cells[y][x] = stone.Short()
		}
	}
	return game.State{
		BoardSize:     s.size,
		Board:         cells,
		CurrentPlayer: s.current.String(),
		PlayerColor:   s.playerColor.String(),
		BotColor:      s.botColor.String(),
		GameOver:      s.over,
		Result:        s.result,
		LastCaptures:  s.lastCaptures,
		Passes:        s.passes,
		Moves:         s.Moves(),
	}
}
