package simd

import (
	"runtime"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// The type switches below are exhaustive: Float only admits float32 and float64.

func addInplace[T Float](dst, src []T) {
	switch d := any(dst).(type) {
	case []float64:
		vek.Add_Inplace(d, any(src).([]float64))
	case []float32:
		vek32.Add_Inplace(d, any(src).([]float32))
	}
}

func scaleInplace[T Float](dst []T, s T) {
	switch d := any(dst).(type) {
	case []float64:
		vek.MulNumber_Inplace(d, float64(s))
	case []float32:
		vek32.MulNumber_Inplace(d, float32(s))
	}
}

func dot[T Float](a, b []T) T {
	switch x := any(a).(type) {
	case []float64:
		return T(vek.Dot(x, any(b).([]float64)))
	case []float32:
		return T(vek32.Dot(x, any(b).([]float32)))
	}
	return 0
}

// RuntimeInfo describes which implementation the kernels run on.
type RuntimeInfo struct {
	Architecture string
	Features     []string
	Accelerated  bool
}

// Info reports whether vek found SIMD instructions on this CPU.
func Info() RuntimeInfo {
	info := vek32.Info()
	return RuntimeInfo{
		Architecture: runtime.GOARCH,
		Features:     info.CPUFeatures,
		Accelerated:  info.Acceleration,
	}
}
