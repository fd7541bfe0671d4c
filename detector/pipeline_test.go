package detector

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskVisitsEveryIndexOnce(t *testing.T) {
	for _, tt := range []struct{ workers, n int }{{1, 10}, {3, 10}, {4, 4}, {16, 5}, {0, 100}, {2, 0}} {
		counts := make([]atomic.Int32, tt.n)
		task(tt.workers, tt.n, func(i int) { counts[i].Add(1) })
		for i := range counts {
			if got := counts[i].Load(); got != 1 {
				t.Errorf("workers=%d n=%d: index %d visited %d times", tt.workers, tt.n, i, got)
			}
		}
	}
}

func TestGlobalToLocalAll(t *testing.T) {
	det, err := LoadFile("testdata/geometry.yaml")
	require.NoError(t, err)

	along := Vector3{0, 1, 0}
	var hits []Hit
	for i := range 50 {
		f := float64(i)
		hits = append(hits,
			Hit{Surface: "disc-1", Global: Point3{f, 1, 600}},
			Hit{Surface: "module-7", Global: Point3{32, f, -f}},
			Hit{Surface: "straw-3", Global: Point3{100 + f, 50, f}, Dir: along},
		)
	}
	hits = append(hits,
		Hit{Surface: "missing", Global: Point3{}},
		Hit{Surface: "straw-3", Global: Point3{1, 2, 3}},
	)

	for _, workers := range []int{0, 1, 7} {
		got := det.GlobalToLocalAll(hits, workers)
		require.Len(t, got, len(hits))

		for i, h := range hits {
			want, wantErr := det.GlobalToLocal(h.Surface, h.Global, h.Dir)
			if wantErr != nil {
				assert.EqualError(t, got[i].Err, wantErr.Error())
				continue
			}
			require.NoError(t, got[i].Err)
			assert.Equal(t, want, got[i].Local)
		}

		assert.ErrorIs(t, got[len(got)-2].Err, ErrUnknownSurface)
		assert.ErrorIs(t, got[len(got)-1].Err, ErrDirection)
	}
}

func TestGlobalToLocalAllEmpty(t *testing.T) {
	det, err := New(Config{})
	require.NoError(t, err)
	assert.Empty(t, det.GlobalToLocalAll(nil, 4))
}
