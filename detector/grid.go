package detector

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// defaultCellSize is used when the geometry does not set cell_size.
const defaultCellSize = 100

type cellKey struct {
	X, Y, Z int
}

type cell struct {
	surfaces []int
}

// grid is a uniform hashed grid over surface origins. Distinct cells may hash
// to the same slot, so lookups filter their candidates by distance.
type grid struct {
	cellSize float64
	cells    []cell
	cellMask int
}

func newGrid(cellSize float64, numCells int) *grid {
	numCells = nextPowerOfTwo(numCells)
	return &grid{
		cellSize: cellSize,
		cells:    make([]cell, numCells),
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (g *grid) insert(index int, origin Point3) {
	idx := g.hashCell(g.worldToCell(origin))
	g.cells[idx].surfaces = append(g.cells[idx].surfaces, index)
}

// maxCellIndex bounds cell coordinates so the float to int conversion is
// exact.
const maxCellIndex = 1 << 52

// query calls fn once for every surface index stored in the cells overlapping
// the cube of half-size radius around p. It returns false without calling fn
// when that cube covers at least as many cells as the grid has slots, or its
// cell coordinates are out of range; the caller then scans every surface.
func (g *grid) query(p Point3, radius float64, fn func(index int)) bool {
	var lo, hi [3]int
	cells := 1.0
	for i := range 3 {
		l := math.Floor((p[i] - radius) / g.cellSize)
		h := math.Floor((p[i] + radius) / g.cellSize)
		if !(l >= -maxCellIndex && h <= maxCellIndex) {
			return false
		}
		cells *= h - l + 1
		lo[i], hi[i] = int(l), int(h)
	}
	if cells >= float64(len(g.cells)) {
		return false
	}

	seenSlots := make(map[int]struct{})
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				idx := g.hashCell(cellKey{x, y, z})
				if _, ok := seenSlots[idx]; ok {
					continue
				}
				seenSlots[idx] = struct{}{}
				for _, s := range g.cells[idx].surfaces {
					fn(s)
				}
			}
		}
	}
	return true
}

func (g *grid) worldToCell(pos Point3) cellKey {
	return cellKey{
		X: int(math.Floor(pos[0] / g.cellSize)),
		Y: int(math.Floor(pos[1] / g.cellSize)),
		Z: int(math.Floor(pos[2] / g.cellSize)),
	}
}

func (g *grid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}

// Near returns the ids of the surfaces whose origin lies within radius of p,
// nearest first. Ties are ordered by id. A NaN or negative radius finds
// nothing; an infinite one finds every surface.
func (d *Detector) Near(p Point3, radius float64) []string {
	type candidate struct {
		id   string
		dist float64
	}
	if !(radius >= 0) {
		return nil
	}

	var found []candidate
	visit := func(index int) {
		s := d.ordered[index]
		if dist := s.Transform.Translation().Sub(p).Norm(); dist <= radius {
			found = append(found, candidate{s.ID, dist})
		}
	}
	if !d.grid.query(p, radius, visit) {
		for i := range d.ordered {
			visit(i)
		}
	}

	slices.SortFunc(found, func(a, b candidate) int {
		return cmp.Or(cmp.Compare(a.dist, b.dist), strings.Compare(a.id, b.id))
	})

	ids := make([]string, len(found))
	for i, c := range found {
		ids[i] = c.id
	}
	return ids
}
