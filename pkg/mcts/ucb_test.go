package mcts

import (
	"testing"

	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

// Expanded root with uniform statistics on every child
func fullyVisitedNode(sims int, wins Result) *node {
	n := &node{state: tictactoe.NewState(tictactoe.Cross)}
	n.expand()
	for _, child := range n.children {
		child.simulations = sims
		child.wins = wins
		n.simulations += sims
	}
	return n
}

func TestSelectChildPrefersUnsimulated(t *testing.T) {
	n := fullyVisitedNode(10, 5)

	// Two children were never rolled out, the first of them must win
	// against any visited sibling
	n.children[5].simulations = 0
	n.children[7].simulations = 0

	if got := n.selectChild(DefaultExploration); got != n.children[5] {
		t.Fatalf("Expected the first unsimulated child, got %v", got.state.Board())
	}
}

func TestSelectChildFirstMaximalTie(t *testing.T) {
	n := fullyVisitedNode(10, 5)

	if got := n.selectChild(DefaultExploration); got != n.children[0] {
		t.Fatalf("Expected the tie to keep the first child, got %v", got.state.Board())
	}
}

func TestSelectChildBalancesExplorationAndWinRate(t *testing.T) {
	t.Run("zero exploration is pure win rate", func(t *testing.T) {
		n := fullyVisitedNode(10, 4)
		n.children[3].wins = 9

		if got := n.selectChild(0); got != n.children[3] {
			t.Fatalf("Expected the child with the best win rate, got %v", got.state.Board())
		}
	})

	t.Run("high exploration favors the rarely visited child", func(t *testing.T) {
		n := fullyVisitedNode(50, 40)

		// A single losing rollout against 50 visits everywhere else,
		// with C = 10 the exploration term dwarfs the win rates
		n.simulations -= 49
		n.children[7].simulations = 1
		n.children[7].wins = 0

		if got := n.selectChild(DefaultExploration); got != n.children[7] {
			t.Fatalf("Expected the rarely visited child, got %v", got.state.Board())
		}
	})
}
