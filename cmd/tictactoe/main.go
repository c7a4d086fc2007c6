package main

/*

Interactive tic-tac-toe against the MCTS engine.

The engine trains once on the empty board and then follows the game
with the same tree, so every position it has already explored keeps
its statistics. Moves are entered as 'row col', e.g. '1 1' for the
center, 'q' quits.

*/

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GautamSharda/mcts-tictactoe/pkg/mcts"
	"github.com/GautamSharda/mcts-tictactoe/pkg/tictactoe"
)

func main() {
	iterations := flag.Int("iterations", 200000, "training iterations before the game starts, 0 trains until interrupted")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	humanMark := flag.String("human", "o", "the side you play, 'x' moves first")
	exploration := flag.Float64("exploration", mcts.DefaultExploration, "UCB1 exploration constant")
	noColor := flag.Bool("no-color", false, "plain ASCII board")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var outOpts []termenv.OutputOption
	if *noColor {
		outOpts = append(outOpts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(os.Stdout, outOpts...)

	human := tictactoe.Circle
	if strings.EqualFold(*humanMark, "x") {
		human = tictactoe.Cross
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
		log.Debug().Int64("seed", *seed).Msg("picked seed from the clock")
	}

	every := max(1000, *iterations/100)
	tree := mcts.New(tictactoe.NewState(tictactoe.Cross),
		mcts.WithRand(rand.New(rand.NewSource(*seed))),
		mcts.WithExploration(*exploration),
		mcts.WithProgress(every, func(done int) {
			out.ClearLine()
			fmt.Printf("\rtraining %d/%d", done, *iterations)
		}),
	)

	// ^C during a long training run drops into the game with whatever
	// statistics exist so far
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	start := time.Now()
	done := tree.Search(ctx, mcts.Limits{Iterations: *iterations})
	stop()

	out.ClearLine()
	fmt.Printf("\rtrained %d iterations in %v\n\n", done, time.Since(start).Round(time.Millisecond))

	play(out, tree, human)
}

func play(out *termenv.Output, tree *mcts.Tree, human tictactoe.Player) {
	scanner := bufio.NewScanner(os.Stdin)

	for !tree.State().Terminal() {
		printBoard(out, tree.State().Board())

		var move tictactoe.Move
		if tree.State().Turn() == human {
			m, ok := askMove(scanner, tree.State())
			if !ok {
				fmt.Println("bye")
				return
			}
			move = m
		} else {
			m, err := tree.ChooseMove()
			if err != nil {
				log.Fatal().Err(err).Msg("engine has no move")
			}
			move = m
			fmt.Printf("engine plays %v\n", move)
		}

		if err := tree.Advance(move); err != nil {
			log.Fatal().Err(err).Stringer("move", move).Msg("illegal move slipped through")
		}
	}

	printBoard(out, tree.State().Board())
	switch winner := tree.State().Winner(); winner {
	case tictactoe.None:
		fmt.Println("draw")
	case human:
		fmt.Println("you win")
	default:
		fmt.Println("engine wins")
	}
}

// Reads 'row col' pairs until one of them is legal, false when the
// input ends or the player quits
func askMove(scanner *bufio.Scanner, state tictactoe.State) (tictactoe.Move, bool) {
	for {
		fmt.Print("your move (row col): ")
		if !scanner.Scan() {
			return tictactoe.Move{}, false
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return tictactoe.Move{}, false
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("enter two numbers, e.g. '1 1' for the center")
			continue
		}

		row, err1 := strconv.Atoi(fields[0])
		col, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			fmt.Println("enter two numbers, e.g. '1 1' for the center")
			continue
		}

		move := tictactoe.Move{Row: row, Col: col}
		if _, err := state.Apply(move); err != nil {
			fmt.Println(err)
			continue
		}
		return move, true
	}
}

func printBoard(out *termenv.Output, board tictactoe.Board) {
	fmt.Println("  0 1 2")
	for row := range board {
		fmt.Print(row)
		for col := range board[row] {
			fmt.Printf(" %s", mark(out, board[row][col]))
		}
		fmt.Println()
	}
	fmt.Println()
}

func mark(out *termenv.Output, p tictactoe.Player) string {
	switch p {
	case tictactoe.Cross:
		return out.String("X").Foreground(out.Color("9")).Bold().String()
	case tictactoe.Circle:
		return out.String("O").Foreground(out.Color("12")).Bold().String()
	}
	return out.String(".").Faint().String()
}
