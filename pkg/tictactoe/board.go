package tictactoe

import "strings"

// Board is the 3x3 grid, indexed [row][col]. Being a plain array it
// copies on assignment and compares with ==, which the search tree
// relies on when matching positions.
type Board [3][3]Player

// horizontal, vertical and diagonal lines
var winningLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the owner of a completed line, or None.
// A line is reported as soon as it exists, no matter whose turn it is.
func (b Board) Winner() Player {
	for i := range winningLines {
		line := &winningLines[i]
		mark := b[line[0].Row][line[0].Col]
		if mark == None {
			continue
		}
		if b[line[1].Row][line[1].Col] == mark && b[line[2].Row][line[2].Col] == mark {
			return mark
		}
	}
	return None
}

// Full reports whether every cell is occupied
func (b Board) Full() bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == None {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for row := range b {
		for col := range b[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
