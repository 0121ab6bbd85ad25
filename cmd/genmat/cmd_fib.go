package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/genmat/matrix"
)

// maxFib is the largest n for which F(n) fits in uint64.
const maxFib = 93

var fibCmd = &cobra.Command{
	Use:   "fib N",
	Short: "Compute the N-th Fibonacci number via matrix power [[1,1],[1,0]]^N",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > maxFib {
			return fmt.Errorf("N must be an integer in [1, %d], got %q", maxFib, args[0])
		}

		m, err := matrix.FromRows([][]uint64{{1, 1}, {1, 0}})
		if err != nil {
			return err
		}

		// M^n = [[F(n+1), F(n)], [F(n), F(n-1)]]; O(log n) multiplications.
		p, err := matrix.Pow(m, n)
		if err != nil {
			return err
		}
		fib, err := p.At(0, 1)
		if err != nil {
			return err
		}

		slog.Info("computed Fibonacci number via matrix power", "n", n)
		fmt.Printf("F(%d) = %d\n", n, fib)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fibCmd)
}
