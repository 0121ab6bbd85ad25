package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genmat/matrix"
)

var minplusHops int

var minplusCmd = &cobra.Command{
	Use:   "minplus",
	Short: "Tropical-semiring power: shortest paths of bounded hop count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inf := math.Inf(1) // no direct edge

		// Small weighted digraph; zero diagonal so W^k covers walks of
		// UP TO k edges, not exactly k.
		w, err := matrix.FromRows([][]float64{
			{0, 4, inf, inf},
			{inf, 0, 1, 7},
			{2, inf, 0, 3},
			{inf, inf, inf, 0},
		})
		if err != nil {
			return err
		}

		// W^k under (plus, min, +Inf) is the bounded-hop distance matrix.
		d, err := matrix.PowSemiring(w, minplusHops, matrix.MinPlus())
		if err != nil {
			return err
		}

		slog.Info("computed bounded-hop shortest paths", "vertices", w.Rows(), "hops", minplusHops)
		fmt.Print(d)

		return nil
	},
}

func init() {
	minplusCmd.Flags().IntVar(&minplusHops, "hops", 3, "maximum number of edges per path (>= 1)")
	rootCmd.AddCommand(minplusCmd)
}
