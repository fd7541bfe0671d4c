package main

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/storage/array"
	"github.com/akmonengine/algebra/storage/dense"
	"github.com/akmonengine/algebra/storage/mgl"
	"github.com/akmonengine/algebra/storage/simd"
	"github.com/spf13/cobra"
)

// maxCofactorSize bounds the matrices sent to cofactor expansion, which costs
// O(n!). Larger ones need the LU backend.
const maxCofactorSize = 6

func newDetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "det [values...]",
		Short: "Print the determinant of a square matrix given row by row",
		Example: `  algebra det 4 3 12 13
  algebra det --backend simd32 1 5 7 3 5 6 2 8 9`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDet,
	}
	addMatrixFlags(cmd)
	return cmd
}

func newInvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inv [values...]",
		Short: "Print the inverse of a square matrix given row by row",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInv,
	}
	addMatrixFlags(cmd)
	return cmd
}

func addMatrixFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "array", "Storage backend: array, array32, simd, simd32, mgl, mgl32, dense, dense-lu")
	cmd.Flags().Int("size", 0, "Matrix size n (0 = infer from the number of values)")
}

func runDet(cmd *cobra.Command, args []string) error {
	backend, n, values, err := matrixInput(cmd, args)
	if err != nil {
		return err
	}
	det, _, err := evaluate(backend, n, values, false)
	if err != nil {
		return err
	}
	slog.Debug("Determinant", slog.String("backend", backend), slog.Int("size", n), slog.Float64("det", det))

	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(det))
	return nil
}

func runInv(cmd *cobra.Command, args []string) error {
	backend, n, values, err := matrixInput(cmd, args)
	if err != nil {
		return err
	}
	det, inv, err := evaluate(backend, n, values, true)
	if err != nil {
		return err
	}
	if det == 0 || math.IsNaN(det) {
		slog.Warn("Matrix is singular, the inverse is not finite", slog.String("backend", backend), slog.Int("size", n))
	}

	out := cmd.OutOrStdout()
	for _, row := range inv {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatFloat(v)
		}
		fmt.Fprintln(out, strings.Join(cells, " "))
	}
	return nil
}

func matrixInput(cmd *cobra.Command, args []string) (backend string, n int, values []float64, err error) {
	backend, _ = cmd.Flags().GetString("backend")
	n, _ = cmd.Flags().GetInt("size")

	values, err = parseFloats(args)
	if err != nil {
		return "", 0, nil, err
	}
	if n == 0 {
		n = int(math.Round(math.Sqrt(float64(len(values)))))
	}
	if n < 1 || n*n != len(values) {
		return "", 0, nil, fmt.Errorf("got %d values, want %d for a %dx%d matrix", len(values), n*n, n, n)
	}
	if n > maxCofactorSize && backend != "dense-lu" {
		return "", 0, nil, fmt.Errorf("%dx%d is too large for cofactor expansion on backend %q (max %dx%d), use --backend dense-lu", n, n, backend, maxCofactorSize, maxCofactorSize)
	}
	return backend, n, values, nil
}

// evaluate runs the determinant, and the inverse when asked, on the named
// backend.
func evaluate(backend string, n int, values []float64, inverse bool) (float64, [][]float64, error) {
	switch backend {
	case "array":
		det, inv := compute(array.NewActor[float64](), n, values, inverse)
		return det, inv, nil
	case "array32":
		det, inv := compute(array.NewActor[float32](), n, values, inverse)
		return det, inv, nil
	case "simd":
		det, inv := compute(simd.NewActor[float64](), n, values, inverse)
		return det, inv, nil
	case "simd32":
		det, inv := compute(simd.NewActor[float32](), n, values, inverse)
		return det, inv, nil
	case "mgl":
		det, inv := compute(mgl.NewActor64(), n, values, inverse)
		return det, inv, nil
	case "mgl32":
		det, inv := compute(mgl.NewActor32(), n, values, inverse)
		return det, inv, nil
	case "dense":
		det, inv := compute(dense.NewActor(), n, values, inverse)
		return det, inv, nil
	case "dense-lu":
		s := dense.Storage{}
		a := dense.NewActor(
			matrix.WithDeterminant[float64, dense.Matrix](matrix.HardCoded[float64, dense.Matrix](s, 2, 4), dense.LU()),
			matrix.WithInverse[float64, dense.Matrix](matrix.HardCoded[float64, dense.Matrix](s, 2, 4), dense.LU()),
		)
		det, inv := compute(a, n, values, inverse)
		return det, inv, nil
	}
	return 0, nil, fmt.Errorf("unknown backend %q", backend)
}

func compute[T algebra.Scalar, M algebra.Matrix[T]](a matrix.Actor[T, M], n int, values []float64, inverse bool) (float64, [][]float64) {
	m := a.Zero(n, n)
	for i := range n {
		for j := range n {
			m.Set(i, j, T(values[i*n+j]))
		}
	}

	det := float64(a.Determinant(m))
	if !inverse {
		return det, nil
	}

	inv := a.Inverse(m)
	rows := make([][]float64, n)
	for i := range n {
		rows[i] = make([]float64, n)
		for j := range n {
			rows[i][j] = float64(inv.At(i, j))
		}
	}
	return det, rows
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
