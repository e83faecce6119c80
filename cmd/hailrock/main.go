// hailrock solves the reference three-hailstone input and prints, one per line:
//
//	the sum of the rock's position components
//	the sum of the rock's velocity components
//	the sum of the position components truncated to integers
//
// It takes no flags and reads no input. Errors are logged to stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hailrock/hailstone"
	"github.com/katalvlaran/hailrock/internal/logging"
)

func main() {
	logging.Init(slog.LevelInfo, logging.FormatText, os.Stderr)
	log := logging.New("hailrock")

	if err := run(os.Stdout, log); err != nil {
		log.Error("solve failed", "err", err)
		os.Exit(1)
	}
}

// run solves the sample observations and writes the three result lines to w.
func run(w io.Writer, log *slog.Logger) error {
	obs := hailstone.SampleObservations()
	sol, err := hailstone.Solve(obs)
	if err != nil {
		return err
	}
	log.Debug("rock found", "observations", len(obs), "rock", sol.String())

	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n",
		sol.PositionSum().RatString(),
		sol.VelocitySum().RatString(),
		sol.TruncatedPositionSum().String())
	return err
}
