// Command genmat demonstrates the genmat library: one matrix
// multiplication kernel driving ordinary arithmetic (fib), boolean
// reachability (reach), and tropical shortest paths (minplus).
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

var rootCmd = &cobra.Command{
	Use:           "genmat",
	Short:         "Generic-matrix demos: semiring multiplication and fast exponentiation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
