package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogame/internal/domain/board"
	"gogame/internal/errors"
)

func pt(x, y int) board.Point { return board.Point{X: x, Y: y} }

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(9)
	assert.Equal(t, 9, s.Size())
	assert.Equal(t, board.Black, s.CurrentPlayer())
	assert.Equal(t, board.Black, s.PlayerColor())
	assert.Equal(t, board.White, s.BotColor())
	assert.False(t, s.GameOver())
	assert.Zero(t, s.Passes())
	assert.Zero(t, s.LastCaptures())
	assert.Empty(t, s.Moves())
}

func TestPlayMoveOnEmptyBoard(t *testing.T) {
	s := NewSession(9)
	res, err := s.PlayMove(pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, "Black plays E5.", res.Message)
	assert.Equal(t, board.Black, s.Grid()[4][4])
	assert.Equal(t, board.White, s.CurrentPlayer())
}

func TestTurnAlternation(t *testing.T) {
	s := NewSession(9)
	for n := 1; n <= 8; n++ {
		_, err := s.PlayMove(pt(n-1, n%3))
		require.NoError(t, err)
		if n%2 == 0 {
			require.Equal(t, board.Black, s.CurrentPlayer(), "after %d moves", n)
		} else {
			require.Equal(t, board.White, s.CurrentPlayer(), "after %d moves", n)
		}
	}
}

func TestRejectedMoveKeepsState(t *testing.T) {
	s := NewSession(5)
	_, err := s.PlayMove(pt(2, 2))
	require.NoError(t, err)
	_, err = s.PassTurn()
	require.NoError(t, err)
	grid := s.Grid()

	_, err = s.PlayMove(pt(2, 2))
	require.ErrorIs(t, err, errors.ErrOccupied)
	assert.Equal(t, "intersection already occupied", err.Error())

	_, err = s.PlayMove(pt(7, 0))
	require.ErrorIs(t, err, errors.ErrOutOfBounds)

	assert.Equal(t, grid, s.Grid())
	assert.Equal(t, board.Black, s.CurrentPlayer())
	assert.Equal(t, 1, s.Passes(), "a rejected move does not reset passes")
}

func TestCaptureScenario(t *testing.T) {
	s := NewSession(5)
	require.NoError(t, s.Board().Place(pt(2, 2), board.White))

	var res Result
	for _, m := range []board.Point{pt(1, 2), pt(3, 2), pt(2, 1), pt(2, 3)} {
		var err error
		res, err = s.PlayMove(m)
		require.NoError(t, err)
		// White passes so Black moves every turn.
		if s.CurrentPlayer() == board.White {
			_, err = s.PassTurn()
			require.NoError(t, err)
		}
	}
	assert.Equal(t, board.Empty, s.Grid()[2][2])
	assert.Equal(t, 1, res.Captured)
	assert.Equal(t, 1, s.LastCaptures())
	assert.Contains(t, res.Message, "1 captured")
}

func TestPassing(t *testing.T) {
	t.Run("single pass toggles player", func(t *testing.T) {
		s := NewSession(9)
		res, err := s.PassTurn()
		require.NoError(t, err)
		assert.Equal(t, "White to play.", res.Message)
		assert.Equal(t, board.White, s.CurrentPlayer())
		assert.False(t, s.GameOver())
	})

	t.Run("two passes end the game", func(t *testing.T) {
		s := NewSession(9)
		_, err := s.PassTurn()
		require.NoError(t, err)
		res, err := s.PassTurn()
		require.NoError(t, err)
		assert.Equal(t, "Both players passed. Game over.", res.Message)
		assert.True(t, s.GameOver())
		assert.Equal(t, board.White, s.CurrentPlayer(), "final pass does not toggle")

		_, err = s.PassTurn()
		require.ErrorIs(t, err, errors.ErrSessionOver)
	})

	t.Run("move between passes resets the counter", func(t *testing.T) {
		s := NewSession(9)
		_, _ = s.PassTurn()
		_, err := s.PlayMove(pt(0, 0))
		require.NoError(t, err)
		assert.Zero(t, s.Passes())
		_, _ = s.PassTurn()
		assert.False(t, s.GameOver())
	})
}

func TestResign(t *testing.T) {
	s := NewSession(9)
	_, err := s.PlayMove(pt(4, 4))
	require.NoError(t, err)
	require.Equal(t, board.White, s.CurrentPlayer())

	res, err := s.Resign()
	require.NoError(t, err)
	assert.Equal(t, "White resigns. Black wins.", res.Message)
	assert.True(t, s.GameOver())
	assert.Equal(t, board.Black, s.Winner())
	assert.Equal(t, "B+R", s.Result())

	_, err = s.PlayMove(pt(0, 0))
	require.ErrorIs(t, err, errors.ErrSessionOver)
	_, err = s.Resign()
	require.ErrorIs(t, err, errors.ErrSessionOver)
	assert.Equal(t, board.Empty, s.Grid()[0][0])
}

func TestTurnGuard(t *testing.T) {
	s := NewSession(9)
	_, err := s.PlayMoveAs(board.White, pt(0, 0))
	require.ErrorIs(t, err, errors.ErrNotCurrentPlayer)
	_, err = s.PassTurnAs(board.White)
	require.ErrorIs(t, err, errors.ErrNotCurrentPlayer)

	_, err = s.PlayMoveAs(board.Black, pt(0, 0))
	require.NoError(t, err)
	_, err = s.PassTurnAs(board.White)
	require.NoError(t, err)
}

func TestSetPlayerColor(t *testing.T) {
	s := NewSession(9)
	_, err := s.PlayMove(pt(4, 4))
	require.NoError(t, err)

	require.NoError(t, s.SetPlayerColor(board.White))
	assert.Equal(t, board.White, s.PlayerColor())
	assert.Equal(t, board.Black, s.BotColor())
	assert.Equal(t, board.Black, s.CurrentPlayer())
	assert.Equal(t, board.Black, s.Grid()[4][4], "board is kept")

	require.ErrorIs(t, s.SetPlayerColor(board.Empty), errors.ErrInvalidColor)
	assert.Equal(t, board.White, s.PlayerColor())
}

func TestRestart(t *testing.T) {
	s := NewSession(5)
	require.NoError(t, s.SetPlayerColor(board.White))
	_, _ = s.PlayMove(pt(1, 1))
	_, _ = s.PassTurn()
	_, _ = s.Resign()

	res, err := s.Restart()
	require.NoError(t, err)
	assert.Equal(t, "Game restarted.", res.Message)
	assert.False(t, s.GameOver())
	assert.Equal(t, board.Black, s.CurrentPlayer())
	assert.Zero(t, s.Passes())
	assert.Zero(t, s.LastCaptures())
	assert.Empty(t, s.Moves())
	assert.Empty(t, s.Result())
	assert.Equal(t, 5, s.Board().Size())
	assert.Equal(t, board.Empty, s.Grid()[1][1])
	assert.Equal(t, board.White, s.PlayerColor())
}

func TestState(t *testing.T) {
	s := NewSession(3)
	_, _ = s.PlayMove(pt(0, 0))
	_, _ = s.PlayMove(pt(2, 1))

	st := s.State()
	assert.Equal(t, 3, st.BoardSize)
	assert.Equal(t, [][]string{{"B", "", ""}, {"", "", "W"}, {"", "", ""}}, st.Board)
	assert.Equal(t, "Black", st.CurrentPlayer)
	assert.Equal(t, "Black", st.PlayerColor)
	assert.Equal(t, "White", st.BotColor)
	assert.Len(t, st.Moves, 2)
	assert.Equal(t, "cb", st.Moves[1].Coordinates)
}
