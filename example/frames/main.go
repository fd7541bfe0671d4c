package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/akmonengine/algebra"
	"github.com/akmonengine/algebra/coordinate"
	"github.com/akmonengine/algebra/detector"
	"github.com/akmonengine/algebra/matrix"
	"github.com/akmonengine/algebra/storage/array"
	"github.com/akmonengine/algebra/storage/dense"
	"github.com/akmonengine/algebra/storage/mgl"
	"github.com/akmonengine/algebra/storage/simd"
	"github.com/akmonengine/algebra/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/profile"
)

// SetupGeometry builds a small tracker in code: a barrel layer, a module
// mounted on it and a drift tube.
func SetupGeometry() (*detector.Detector, error) {
	return detector.New(detector.Config{
		Surfaces: []detector.SurfaceConfig{
			{ID: "barrel", Kind: detector.KindCylindrical, Radius: 50},
			{ID: "module", Kind: detector.KindCartesian, Parent: "barrel", Translation: [3]float64{50, 0, 0}, Z: [3]float64{1, 0, 0}, X: [3]float64{0, 1, 0}},
			{ID: "endcap", Kind: detector.KindPolar, Translation: [3]float64{0, 0, 800}},
			{ID: "tube", Kind: detector.KindLine, Translation: [3]float64{120, 0, 0}},
		},
	})
}

// CompareBackends computes the same determinant and inverse on every storage
// backend.
func CompareBackends() {
	rows := [][]float64{{2, -1, 0, 3}, {1, 4, 2, -2}, {0, 3, 5, 1}, {-1, 2, 1, 6}}

	fmt.Println("Determinant of a 4x4 matrix per backend")
	fmt.Println("=======================================")

	a := array.NewActor[float64]()
	fmt.Printf("  array:  %v\n", a.Determinant(array.FromRows(rows...)))

	s := simd.NewActor[float64]()
	fmt.Printf("  simd:   %v\n", s.Determinant(simd.FromRows(rows...)))

	d := dense.NewActor(
		matrix.WithDeterminant[float64, dense.Matrix](dense.LU()),
	)
	fmt.Printf("  dense:  %v (LU)\n", d.Determinant(dense.FromRows(rows...)))

	g := mgl.NewActor64()
	m := g.Zero(4, 4)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, v)
		}
	}
	fmt.Printf("  mgl:    %v (mathgl: %v)\n", g.Determinant(m), mgl.ToMat4(m).Det())
	fmt.Println()
}

// PlaceBody composes a rigid body pose with the frame of the surface it sits on.
func PlaceBody() {
	actor := mgl.NewActor64()

	pose := mgl.NewPose()
	pose.Position = mgl64.Vec3{0, 0, 10}
	pose.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	body := pose.Transform(actor)

	lift := transform.FromTranslation(actor, algebra.Point3[float64]{0, 0, 5})
	world := lift.Compose(body)

	tip := world.PointToGlobal(algebra.Point3[float64]{1, 0, 0})
	fmt.Println("Body placed on a lifted platform")
	fmt.Println("================================")
	fmt.Printf("  tip in world: %v\n", tip)
	fmt.Printf("  back to body: %v\n", world.PointToLocal(tip))
	fmt.Printf("  pose:         %+v\n", mgl.PoseOf(world))

	var polar coordinate.Polar2[float64]
	fmt.Printf("  polar of tip: %v\n", polar.GlobalToLocal(world, tip))
	fmt.Println()
}

// Hits runs a few global hits through the geometry and back.
func Hits(det *detector.Detector) {
	dir := detector.Vector3{0, 1, 0}
	hits := []struct {
		surface string
		global  detector.Point3
	}{
		{"barrel", detector.Point3{0, 50, 12}},
		{"module", detector.Point3{50, 3, -4}},
		{"endcap", detector.Point3{30, 40, 800}},
		{"tube", detector.Point3{123, 0, 9}},
	}

	fmt.Println("Hits")
	fmt.Println("====")
	for _, h := range hits {
		local, err := det.GlobalToLocal(h.surface, h.global, dir)
		if err != nil {
			slog.Error("Conversion failed", slog.String("surface", h.surface), slog.Any("error", err))
			continue
		}
		back, err := det.LocalToGlobal(h.surface, local, dir)
		if err != nil {
			slog.Error("Conversion failed", slog.String("surface", h.surface), slog.Any("error", err))
			continue
		}
		fmt.Printf("  %-7s global %v -> local %v -> global %v\n", h.surface, h.global, local, back)
	}
	fmt.Println()
}

// Shower converts a burst of hits on the end-cap concurrently and lists the
// surfaces close to its centre.
func Shower(det *detector.Detector) {
	hits := make([]detector.Hit, 1000)
	for i := range hits {
		phi := 2 * math.Pi * float64(i) / float64(len(hits))
		r := 10 + float64(i%7)
		hits[i] = detector.Hit{Surface: "endcap", Global: detector.Point3{r * math.Cos(phi), r * math.Sin(phi), 800}}
	}

	measurements := det.GlobalToLocalAll(hits, 0)
	mean, converted := meanRadius(measurements)

	fmt.Println("Shower on the end-cap")
	fmt.Println("=====================")
	fmt.Printf("  hits:        %d (%d converted)\n", len(measurements), converted)
	if converted > 0 {
		fmt.Printf("  mean radius: %.3f\n", mean)
	}
	fmt.Printf("  near centre: %v\n", det.Near(detector.Point3{0, 0, 800}, 100))
}

// meanRadius averages the first local coordinate of the hits that converted,
// and returns how many did.
func meanRadius(measurements []detector.Measurement) (float64, int) {
	var sum float64
	converted := 0
	for _, m := range measurements {
		if m.Err != nil {
			slog.Error("Conversion failed", slog.Any("error", m.Err))
			continue
		}
		sum += m.Local[0]
		converted++
	}
	if converted == 0 {
		return 0, 0
	}
	return sum / float64(converted), converted
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		slog.Error("Invalid geometry", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()

	info := simd.Info()
	slog.Info("SIMD kernels", slog.String("architecture", info.Architecture), slog.Bool("accelerated", info.Accelerated))

	CompareBackends()
	PlaceBody()

	det, err := SetupGeometry()
	if err != nil {
		return err
	}
	Hits(det)
	Shower(det)
	return nil
}
