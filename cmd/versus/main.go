package main

/*

Plays two engine configurations against each other and logs the tally.
Sides alternate between games, so neither configuration gets the
first-mover advantage for free.

*/

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GautamSharda/mcts-tictactoe/pkg/bench"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	workers := flag.Int("workers", 4, "concurrent games")
	seed := flag.Int64("seed", 0, "base seed, 0 picks one from the clock")
	p1Opening := flag.Int("p1-opening", 200000, "player 1 iterations on the empty board")
	p1Move := flag.Int("p1-move", 0, "player 1 extra iterations per move")
	p1C := flag.Float64("p1-exploration", 0, "player 1 UCB1 exploration constant, 0 means the default")
	p2Opening := flag.Int("p2-opening", 20000, "player 2 iterations on the empty board")
	p2Move := flag.Int("p2-move", 0, "player 2 extra iterations per move")
	p2C := flag.Float64("p2-exploration", 0, "player 2 UCB1 exploration constant, 0 means the default")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	p1 := bench.Engine{Name: "p1", OpeningIterations: *p1Opening, MoveIterations: *p1Move, Exploration: *p1C}
	p2 := bench.Engine{Name: "p2", OpeningIterations: *p2Opening, MoveIterations: *p2Move, Exploration: *p2C}
	arena := bench.New(p1, p2, bench.Config{Games: *games, Workers: *workers, Seed: *seed})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := arena.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("arena aborted")
	}
}
