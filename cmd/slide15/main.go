// slide15 is the 15 puzzle for the terminal.
//
// Usage:
//
//	slide15                  - Play (same as "slide15 play")
//	slide15 play             - Play the puzzle
//	slide15 scramble         - Print a scrambled board without starting the UI
//	slide15 config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible scrambles
//	--config <path>      - Use a custom YAML config
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide15",
	Short: "slide15 - the 15 puzzle in your terminal",
	Long: `slide15 is the classic sliding 15 puzzle played on a 4x4 board.

Move the cursor with the arrow keys, press space to slide the tile under
it into the empty cell, and put the tiles back in order 1 to 15.

Available commands:
  play      - Play the puzzle (default)
  scramble  - Print a scrambled board
  config    - Print the effective configuration

Examples:
  slide15
  slide15 play --seed 42
  slide15 scramble --seed 7
  slide15 --log-file /tmp/slide15.log --log-level debug`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = derive from title screen time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The terminal belongs to the UI, so
// logs are discarded unless --log-file is set. The returned func closes the file.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide15",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}
