package mcts

import (
	"errors"
	"math/rand"
	"time"

	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

// Returned by ChooseMove when the root position has no legal moves
var ErrNoMoves = errors.New("no legal moves at the root")

// Tree is a Monte Carlo search tree rooted at a single position.
// Statistics accumulate across Train/Search calls, and Advance keeps
// the subtree of the played move, so a tree can follow a whole game.
//
// A Tree is not safe for concurrent use, one tree belongs to one
// goroutine.
type Tree struct {
	root        *node
	rand        *rand.Rand
	exploration float64

	progress      func(done int)
	progressEvery int
}

type Option func(*Tree)

// WithRand sets the random source used for rollouts and expansion.
// Pass a seeded source to make the search reproducible.
func WithRand(r *rand.Rand) Option {
	return func(t *Tree) {
		if r != nil {
			t.rand = r
		}
	}
}

// WithExploration overrides the UCB1 exploration constant,
// negative values are clamped to 0
func WithExploration(c float64) Option {
	return func(t *Tree) {
		t.exploration = max(0, c)
	}
}

// WithProgress calls 'fn' every 'every' iterations of a Search,
// with the number of iterations done so far
func WithProgress(every int, fn func(done int)) Option {
	return func(t *Tree) {
		t.progress = fn
		t.progressEvery = max(1, every)
	}
}

// New creates a tree rooted at the given position, with no
// statistics yet
func New(state tictactoe.State, opts ...Option) *Tree {
	t := &Tree{
		root:        &node{state: state},
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		exploration: DefaultExploration,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the position at the root
func (t *Tree) State() tictactoe.State {
	return t.root.state
}

// Simulations returns how many rollouts have reached the current root
func (t *Tree) Simulations() int {
	return t.root.simulations
}

// ChooseMove picks the most visited root move, the robust child.
// Visit counts are a steadier signal than win rates, a child can have
// a perfect score off a single lucky rollout. On a tie the move
// generated first wins, so an untrained tree answers with the first
// legal move. The root is expanded lazily, calling this on a fresh
// tree is fine.
func (t *Tree) ChooseMove() (tictactoe.Move, error) {
	t.root.expand()
	if len(t.root.children) == 0 {
		return tictactoe.Move{}, ErrNoMoves
	}

	best := t.root.children[0]
	for _, child := range t.root.children[1:] {
		if child.simulations > best.simulations {
			best = child
		}
	}

	return moveBetween(t.root.state, best.state), nil
}

// Advance plays 'mv' on the root position. If the move was already
// explored, its subtree becomes the new tree and keeps all its
// statistics; otherwise the tree starts over from the new position.
// Everything above and beside the new root is dropped.
func (t *Tree) Advance(mv tictactoe.Move) error {
	next, err := t.root.state.Apply(mv)
	if err != nil {
		return err
	}

	for _, child := range t.root.children {
		if child.state.Board() == next.Board() {
			child.parent = nil
			t.root = child
			return nil
		}
	}

	t.root = &node{state: next}
	return nil
}

// Recovers the move played between two consecutive positions by
// diffing the boards
func moveBetween(from, to tictactoe.State) tictactoe.Move {
	fb, tb := from.Board(), to.Board()
	for row := range fb {
		for col := range fb[row] {
			if fb[row][col] != tb[row][col] {
				return tictactoe.Move{Row: row, Col: col}
			}
		}
	}
	panic("mcts: positions do not differ")
}
