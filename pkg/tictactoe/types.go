package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("move out of range")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Owner of a cell, also used for the side to move and the winner
type Player uint8

const (
	None   Player = 0
	Cross  Player = 1
	Circle Player = 2
)

// The opponent of this player, None stays None
func (p Player) Other() Player {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return "."
}

// Move is a cell on the board, both coordinates range from 0 to 2
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
