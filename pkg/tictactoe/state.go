package tictactoe

// State is a full game position: the board plus the side to move.
// It is a value type, Apply returns a new State and never touches
// the receiver, so positions can be stored and shared without aliasing.
type State struct {
	board Board
	turn  Player
}

// NewState returns an empty board with 'first' to move
func NewState(first Player) State {
	return State{turn: first}
}

// Turn returns the side to move
func (s State) Turn() Player {
	return s.turn
}

// Board returns a copy of the grid
func (s State) Board() Board {
	return s.board
}

// LegalMoves lists the empty cells in row-major order.
// On a full board the result is empty, even if nobody has won.
func (s State) LegalMoves() []Move {
	moves := make([]Move, 0, 9)
	for row := range s.board {
		for col := range s.board[row] {
			if s.board[row][col] == None {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Apply places the mover's mark and flips the turn, returning the
// resulting position. The original state is left untouched, also on error.
func (s State) Apply(mv Move) (State, error) {
	if mv.Row < 0 || mv.Row > 2 || mv.Col < 0 || mv.Col > 2 {
		return s, ErrOutOfRange
	}
	if s.board[mv.Row][mv.Col] != None {
		return s, ErrCellOccupied
	}

	s.board[mv.Row][mv.Col] = s.turn
	s.turn = s.turn.Other()
	return s, nil
}

// Winner returns the owner of a completed line, or None
func (s State) Winner() Player {
	return s.board.Winner()
}

// Terminal reports whether the game is over, either by a win or a full board
func (s State) Terminal() bool {
	return s.board.Winner() != None || s.board.Full()
}
