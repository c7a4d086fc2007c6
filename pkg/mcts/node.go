package mcts

import (
	"fmt"

	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

// Result of a rollout, ranges from [0, 1] - 0 being a loss from the
// perspective of the player to move at the rolled-out node,
// 0.5 a draw and 1 a win
type Result float64

// A single position in the search tree.
//
// 'children' is nil until the node is expanded. An expanded terminal
// node keeps an empty non-nil slice and simply collects rollouts of
// its own position. The parent pointer exists only for the
// backpropagation walk, advancing the root clears it so the old tree
// above can be collected.
type node struct {
	parent      *node
	state       tictactoe.State
	simulations int
	wins        Result
	children    []*node
}

// Creates one child per legal move, in the order LegalMoves returns
// them. Calling this on an already expanded node does nothing, the
// accumulated child statistics stay as they are.
func (n *node) expand() {
	if n.children != nil {
		return
	}

	moves := n.state.LegalMoves()
	n.children = make([]*node, 0, len(moves))
	for _, mv := range moves {
		n.children = append(n.children, &node{
			parent: n,
			state:  mustApply(n.state, mv),
		})
	}
}

// First child that has never been simulated, nil if every child
// has at least one rollout
func (n *node) firstUnsimulated() *node {
	for _, child := range n.children {
		if child.simulations == 0 {
			return child
		}
	}
	return nil
}

// Walks up to the root, counting the visit and adding the same result
// on every node of the path
func (n *node) backpropagate(result Result) {
	for ; n != nil; n = n.parent {
		n.simulations++
		n.wins += result
	}
}

// Moves handed to this helper come from LegalMoves, so an error here
// means a broken invariant, not bad input
func mustApply(state tictactoe.State, mv tictactoe.Move) tictactoe.State {
	next, err := state.Apply(mv)
	if err != nil {
		panic(fmt.Sprintf("mcts: illegal move %v during search: %v", mv, err))
	}
	return next
}
