package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide15/internal/games/puzzle15"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a scrambled board",
	Long: `Scramble a solved board the same way a new game does and print it,
together with the accepted random-walk steps of the empty cell.

Examples:
  slide15 scramble
  slide15 scramble --seed 42`,
	Args: cobra.NoArgs,
	Run:  runScramble,
}

func runScramble(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := puzzle15.NewBoard()
	accepted := puzzle15.Shuffle(board, rand.New(rand.NewSource(seed)))

	if !board.Consistent() {
		fmt.Fprintln(os.Stderr, "Error: scramble produced an inconsistent board")
		os.Exit(1)
	}

	steps := make([]string, len(accepted))
	for i, d := range accepted {
		steps[i] = d.String()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n\n", seed)
	fmt.Fprintln(out, board)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Accepted steps: %d of %d\n", len(accepted), puzzle15.ShuffleSteps)
	fmt.Fprintln(out, strings.Join(steps, " "))
	fmt.Fprintf(out, "Solvable: %v\n", board.Solvable())
}
