package bench

/*
Arena subpackage, plays a series of games between two engine
configurations and tallies the outcomes.
*/

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/GautamSharda/mcts-tictactoe/pkg/mcts"
	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

// Engine is one side of the match
type Engine struct {
	Name string

	// Iterations spent on the starting position
	OpeningIterations int

	// Extra iterations before every move, 0 plays from whatever
	// statistics the opening search left in the tree
	MoveIterations int

	// UCB1 exploration constant, 0 means the default
	Exploration float64
}

func (e Engine) options(rng *rand.Rand) []mcts.Option {
	opts := []mcts.Option{mcts.WithRand(rng)}
	if e.Exploration > 0 {
		opts = append(opts, mcts.WithExploration(e.Exploration))
	}
	return opts
}

type Config struct {
	// Number of games to play
	Games int

	// Concurrent games, values below 1 mean a single worker
	Workers int

	// Base seed for the per-game random sources, 0 picks one
	// from the clock
	Seed int64
}

// Outcome counters, safe to read while the arena is running
type Stats struct {
	p1Wins         atomic.Uint32
	p2Wins         atomic.Uint32
	draws          atomic.Uint32
	firstMoverWins atomic.Uint32
}

func (s *Stats) P1Wins() int {
	return int(s.p1Wins.Load())
}

func (s *Stats) P2Wins() int {
	return int(s.p2Wins.Load())
}

func (s *Stats) Draws() int {
	return int(s.draws.Load())
}

// How often the side that moved first won, regardless of which
// engine held it
func (s *Stats) FirstMoverWins() int {
	return int(s.firstMoverWins.Load())
}

func (s *Stats) Total() int {
	return s.P1Wins() + s.P2Wins() + s.Draws()
}

type Arena struct {
	Stats
	P1, P2 Engine
	Config Config

	seed int64
}

func New(p1, p2 Engine, cfg Config) *Arena {
	return &Arena{P1: p1, P2: p2, Config: cfg}
}

// Run plays Config.Games games and blocks until they are done or the
// context is cancelled. Game numbers are handed to the workers over a
// channel, and every game seeds its own random source, so a fixed
// Config.Seed reproduces the same outcomes no matter how many workers
// are running.
func (a *Arena) Run(ctx context.Context) error {
	a.seed = a.Config.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}

	workers := max(1, a.Config.Workers)
	games := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(games)
		for i := 0; i < a.Config.Games; i++ {
			select {
			case games <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for gameNo := range games {
				if err := a.playGame(ctx, gameNo); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().
		Str("p1", a.P1.Name).
		Str("p2", a.P2.Name).
		Int("games", a.Total()).
		Int("p1_wins", a.P1Wins()).
		Int("p2_wins", a.P2Wins()).
		Int("draws", a.Draws()).
		Int("first_mover_wins", a.FirstMoverWins()).
		Msg("arena finished")
	return nil
}

func (a *Arena) playGame(ctx context.Context, gameNo int) error {
	// One source for both trees keeps the whole game a pure function
	// of the seed and the game number
	rng := rand.New(rand.NewSource(a.seed + int64(gameNo)))

	// Sides alternate, P1 holds Cross on even game numbers
	p1First := gameNo%2 == 0

	t1 := mcts.New(tictactoe.NewState(tictactoe.Cross), a.P1.options(rng)...)
	t2 := mcts.New(tictactoe.NewState(tictactoe.Cross), a.P2.options(rng)...)
	t1.Train(a.P1.OpeningIterations)
	t2.Train(a.P2.OpeningIterations)

	type seat struct {
		tree   *mcts.Tree
		engine Engine
	}
	mover, waiter := seat{t1, a.P1}, seat{t2, a.P2}
	if !p1First {
		mover, waiter = waiter, mover
	}

	plies := 0
	for !mover.tree.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		mover.tree.Train(mover.engine.MoveIterations)
		move, err := mover.tree.ChooseMove()
		if err != nil {
			return fmt.Errorf("game %d: %w", gameNo, err)
		}

		// Both trees follow the game, each from its own statistics
		if err := mover.tree.Advance(move); err != nil {
			return fmt.Errorf("game %d: %w", gameNo, err)
		}
		if err := waiter.tree.Advance(move); err != nil {
			return fmt.Errorf("game %d: %w", gameNo, err)
		}

		mover, waiter = waiter, mover
		plies++
	}

	winner := mover.tree.State().Winner()
	switch {
	case winner == tictactoe.None:
		a.draws.Add(1)
	case (winner == tictactoe.Cross) == p1First:
		a.p1Wins.Add(1)
	default:
		a.p2Wins.Add(1)
	}
	if winner == tictactoe.Cross {
		a.firstMoverWins.Add(1)
	}

	log.Debug().
		Int("game", gameNo).
		Int("plies", plies).
		Stringer("winner", winner).
		Bool("p1_first", p1First).
		Msg("game finished")
	return nil
}
