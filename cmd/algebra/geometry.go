package main

import (
	"fmt"
	"log/slog"

	"github.com/akmonengine/algebra/detector"
	"github.com/spf13/cobra"
)

func newToLocalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "to-local x y z",
		Short:   "Convert a global point to the local coordinates of a surface",
		Example: "  algebra to-local --geometry geometry.yaml --surface disc-1 3 3 600",
		Args:    cobra.ExactArgs(3),
		RunE:    runToLocal,
	}
	addGeometryFlags(cmd)
	return cmd
}

func newToGlobalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-global u v",
		Short: "Convert local surface coordinates to a global point",
		Args:  cobra.ExactArgs(2),
		RunE:  runToGlobal,
	}
	addGeometryFlags(cmd)
	return cmd
}

func newNearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "near x y z",
		Short: "List the surfaces whose origin lies within --radius of a global point",
		Args:  cobra.ExactArgs(3),
		RunE:  runNear,
	}
	cmd.Flags().String("geometry", "", "Detector geometry YAML file")
	cmd.Flags().Float64("radius", 10, "Search radius")
	_ = cmd.MarkFlagRequired("geometry")
	return cmd
}

func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().String("geometry", "", "Detector geometry YAML file")
	cmd.Flags().String("surface", "", "Surface id")
	cmd.Flags().Float64Slice("dir", []float64{0, 1, 0}, "Reference direction signing distances on line surfaces")
	_ = cmd.MarkFlagRequired("geometry")
	_ = cmd.MarkFlagRequired("surface")
}

func loadSurface(cmd *cobra.Command) (*detector.Detector, string, detector.Vector3, error) {
	path, _ := cmd.Flags().GetString("geometry")
	id, _ := cmd.Flags().GetString("surface")
	dir, _ := cmd.Flags().GetFloat64Slice("dir")
	if len(dir) != 3 {
		return nil, "", detector.Vector3{}, fmt.Errorf("--dir needs 3 components, got %d", len(dir))
	}

	det, err := detector.LoadFile(path)
	if err != nil {
		return nil, "", detector.Vector3{}, err
	}
	slog.Debug("Geometry loaded", slog.String("path", path), slog.Int("surfaces", len(det.Surfaces())))
	return det, id, detector.Vector3{dir[0], dir[1], dir[2]}, nil
}

func runToLocal(cmd *cobra.Command, args []string) error {
	values, err := parseFloats(args)
	if err != nil {
		return err
	}
	det, id, dir, err := loadSurface(cmd)
	if err != nil {
		return err
	}

	local, err := det.GlobalToLocal(id, detector.Point3{values[0], values[1], values[2]}, dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(local[0]), formatFloat(local[1]))
	return nil
}

func runToGlobal(cmd *cobra.Command, args []string) error {
	values, err := parseFloats(args)
	if err != nil {
		return err
	}
	det, id, dir, err := loadSurface(cmd)
	if err != nil {
		return err
	}

	global, err := det.LocalToGlobal(id, detector.Point2{values[0], values[1]}, dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(global[0]), formatFloat(global[1]), formatFloat(global[2]))
	return nil
}

func runNear(cmd *cobra.Command, args []string) error {
	values, err := parseFloats(args)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("geometry")
	radius, _ := cmd.Flags().GetFloat64("radius")

	det, err := detector.LoadFile(path)
	if err != nil {
		return err
	}
	ids := det.Near(detector.Point3{values[0], values[1], values[2]}, radius)
	slog.Debug("Surfaces found", slog.Float64("radius", radius), slog.Int("count", len(ids)))

	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
