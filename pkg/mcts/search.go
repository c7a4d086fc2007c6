package mcts

import (
	"context"
	"time"

	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

// Train runs exactly 'iterations' search iterations against the
// current root. Non-positive counts do nothing.
func (t *Tree) Train(iterations int) {
	if iterations <= 0 {
		return
	}
	t.Search(context.Background(), Limits{Iterations: iterations})
}

// Search runs iterations until one of the limits kicks in or the
// context is cancelled, and returns how many iterations actually ran.
// Cancellation is checked between iterations only, a single iteration
// never blocks, so the search stops promptly anyway.
func (t *Tree) Search(ctx context.Context, limits Limits) int {
	var deadline time.Time
	if limits.Movetime > 0 {
		deadline = time.Now().Add(limits.Movetime)
	}

	done := 0
	for limits.Iterations <= 0 || done < limits.Iterations {
		if ctx.Err() != nil {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		t.step()
		done++

		if t.progress != nil && done%t.progressEvery == 0 {
			t.progress(done)
		}
	}

	return done
}

// One search iteration:
//
// 1. selection - walk down while every child has been tried, otherwise
// stop at the first fresh child
//
// 2. expansion - a leaf that already has a rollout gets its children,
// and a random one of them becomes the rollout node
//
// 3. rollout + backpropagation
func (t *Tree) step() {
	t.root.expand()

	n := t.root
	for len(n.children) > 0 {
		if u := n.firstUnsimulated(); u != nil {
			n = u
			break
		}
		n = n.selectChild(t.exploration)
	}

	if n.simulations > 0 {
		n.expand()
		if len(n.children) > 0 {
			n = n.children[t.rand.Intn(len(n.children))]
		}
	}

	n.backpropagate(t.rollout(n))
}

// Plays uniformly random moves from the node's position until the game
// ends. The result is scored for the player to move at that node,
// 1 win, 0.5 draw, 0 loss.
func (t *Tree) rollout(n *node) Result {
	state := n.state
	mover := state.Turn()

	winner := state.Winner()
	for winner == tictactoe.None {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return 0.5
		}
		state = mustApply(state, moves[t.rand.Intn(len(moves))])
		winner = state.Winner()
	}

	if winner == mover {
		return 1
	}
	return 0
}
