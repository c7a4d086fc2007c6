package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// applyAll plays the moves in order, starting from an empty board
// with Cross to move, and failes the test on any illegal move
func applyAll(t *testing.T, moves ...Move) State {
	t.Helper()

	state := NewState(Cross)
	var err error
	for _, mv := range moves {
		state, err = state.Apply(mv)
		require.NoError(t, err, "setup move %v", mv)
	}
	return state
}

func TestLegalMoves(t *testing.T) {
	t.Run("fresh board has nine moves in row-major order", func(t *testing.T) {
		moves := NewState(Cross).LegalMoves()
		require.Len(t, moves, 9)
		require.Equal(t, Move{0, 0}, moves[0])
		require.Equal(t, Move{0, 1}, moves[1])
		require.Equal(t, Move{2, 2}, moves[8])
	})

	t.Run("each move removes exactly one cell", func(t *testing.T) {
		state := NewState(Cross)
		for want := 9; want > 0; want-- {
			moves := state.LegalMoves()
			require.Len(t, moves, want)

			var err error
			state, err = state.Apply(moves[0])
			require.NoError(t, err)
		}
		require.Empty(t, state.LegalMoves())
	})

	t.Run("lists the empty cells only", func(t *testing.T) {
		state := State{
			board: Board{
				{Cross, None, Circle},
				{None, Cross, None},
				{Circle, None, None},
			},
			turn: Circle,
		}
		require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, state.LegalMoves())
	})
}

func TestApply(t *testing.T) {
	t.Run("places the mark and flips the turn", func(t *testing.T) {
		state := NewState(Cross)
		next, err := state.Apply(Move{1, 1})
		require.NoError(t, err)
		require.Equal(t, Cross, next.Board()[1][1])
		require.Equal(t, Circle, next.Turn())

		// the original state is untouched
		require.Equal(t, None, state.Board()[1][1])
		require.Equal(t, Cross, state.Turn())
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		state := applyAll(t, Move{1, 1})
		_, err := state.Apply(Move{1, 1})
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		state := NewState(Cross)
		for _, mv := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			_, err := state.Apply(mv)
			require.ErrorIs(t, err, ErrOutOfRange, "move %v", mv)
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("empty board has no winner", func(t *testing.T) {
		require.Equal(t, None, NewState(Cross).Winner())
	})

	t.Run("detects every line", func(t *testing.T) {
		for _, line := range winningLines {
			var board Board
			for _, cell := range line {
				board[cell.Row][cell.Col] = Cross
			}
			require.Equal(t, Cross, board.Winner(), "line %v", line)
		}
	})

	t.Run("detects a circle line", func(t *testing.T) {
		board := Board{
			{Cross, None, Cross},
			{Circle, Circle, Circle},
			{None, Cross, None},
		}
		require.Equal(t, Circle, board.Winner())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		state := applyAll(t,
			Move{0, 0}, Move{0, 1}, Move{0, 2},
			Move{1, 1}, Move{1, 0}, Move{1, 2},
			Move{2, 1}, Move{2, 0}, Move{2, 2},
		)
		require.Equal(t, None, state.Winner())
		require.True(t, state.Board().Full())
	})
}

func TestTerminal(t *testing.T) {
	require.False(t, NewState(Cross).Terminal())

	won := applyAll(t, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})
	require.Equal(t, Cross, won.Winner())
	require.True(t, won.Terminal())

	draw := applyAll(t,
		Move{0, 0}, Move{0, 1}, Move{0, 2},
		Move{1, 1}, Move{1, 0}, Move{1, 2},
		Move{2, 1}, Move{2, 0}, Move{2, 2},
	)
	require.True(t, draw.Terminal())
}

// The line is credited the moment it is completed, i.e. the player who
// just moved is the winner in the position their move produced.
func TestWinnerReportedRightAfterWinningMove(t *testing.T) {
	state := State{
		board: Board{
			{Cross, Cross, None},
			{None, Circle, None},
			{None, None, Circle},
		},
		turn: Cross,
	}
	require.Contains(t, state.LegalMoves(), Move{0, 2})

	next, err := state.Apply(Move{0, 2})
	require.NoError(t, err)
	require.Equal(t, Cross, next.Winner())
	require.True(t, next.Terminal())
	require.Equal(t, Circle, next.Turn())
}
