package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/akmonengine/algebra/storage/simd"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the SIMD capabilities used by the simd backend",
		Run: func(cmd *cobra.Command, args []string) {
			info := simd.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "go:           %s\n", runtime.Version())
			fmt.Fprintf(out, "architecture: %s\n", info.Architecture)
			fmt.Fprintf(out, "accelerated:  %t\n", info.Accelerated)
			fmt.Fprintf(out, "features:     %s\n", strings.Join(info.Features, " "))
		},
	}
}
