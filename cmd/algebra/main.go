// Package main provides the algebra CLI: matrix determinants and inverses on
// any storage backend, and point conversions on a detector geometry.
package main

import (
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd().Execute()
	// PersistentPostRun is skipped when a command fails.
	stopProfile()
	if err != nil {
		os.Exit(1)
	}
}

var prof interface{ Stop() }

func stopProfile() {
	if prof != nil {
		prof.Stop()
		prof = nil
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algebra",
		Short: "Small-matrix algebra and detector frame conversions",
		Long: `algebra evaluates determinants and inverses of small square matrices on
one of the storage backends, and converts points between global coordinates and
the local coordinates of the surfaces of a detector geometry file.

Backends:
  array, array32   plain column-major slices
  simd, simd32     vek SIMD kernels
  mgl, mgl32       go-gl/mathgl MatMxN
  dense            gonum mat.Dense
  dense-lu         gonum mat.Dense with LU factorization beyond 4x4`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if dir, _ := cmd.Flags().GetString("cpuprofile"); dir != "" {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet)
				slog.Debug("CPU profiling enabled", slog.String("dir", dir))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stopProfile()
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().String("cpuprofile", "", "Write a CPU profile into this directory")

	rootCmd.AddCommand(newDetCmd(), newInvCmd(), newToLocalCmd(), newToGlobalCmd(), newNearCmd(), newInfoCmd())
	return rootCmd
}
