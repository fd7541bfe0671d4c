package detector

import (
	"runtime"
	"sync"
)

// task splits [0, n) into one contiguous chunk per worker and calls fn for
// every index. It returns once all workers are done.
func task(workersCount, n int, fn func(i int)) {
	if n == 0 {
		return
	}
	if workersCount <= 0 {
		workersCount = runtime.GOMAXPROCS(0)
	}
	workersCount = min(workersCount, n)

	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, n))
	}
	wg.Wait()
}

// Hit is a global measurement on a known surface.
type Hit struct {
	Surface string
	Global  Point3
	// Dir signs the distance on line surfaces.
	Dir     Vector3
}

// Measurement is the local position of a Hit, or why it could not be converted.
type Measurement struct {
	Local Point2
	Err   error
}

// GlobalToLocalAll converts hits concurrently on workers goroutines
// (GOMAXPROCS when workers <= 0). Result i belongs to hits[i]; a failed hit
// does not stop the others.
func (d *Detector) GlobalToLocalAll(hits []Hit, workers int) []Measurement {
	out := make([]Measurement, len(hits))
	task(workers, len(hits), func(i int) {
		out[i].Local, out[i].Err = d.GlobalToLocal(hits[i].Surface, hits[i].Global, hits[i].Dir)
	})
	return out
}
