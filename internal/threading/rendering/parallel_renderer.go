package rendering

import (
	"sync"

	"raycaster/internal/mathutil"
	"raycaster/internal/threading/core"
)

const (
	inlineColumnLimit = 8
	minBatchSize      = 4
	maxBatchSize      = 32
)

// ParallelRenderer fans per-column work out to a worker pool. With a single
// worker it has no pool and runs every column on the calling goroutine.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a renderer with the given worker count.
// One means inline, zero or less means one worker per CPU.
func NewParallelRenderer(workers int) *ParallelRenderer {
	if workers == 1 {
		return &ParallelRenderer{}
	}
	return &ParallelRenderer{
		workerPool: core.CreateWorkerPool(workers),
	}
}

// RenderColumns calls columnFunc once for every column in [0, numColumns) and
// returns when all calls have finished. columnFunc must only touch state owned
// by its column.
func (pr *ParallelRenderer) RenderColumns(numColumns int, columnFunc func(int)) {
	if pr.workerPool == nil || numColumns <= inlineColumnLimit {
		for column := 0; column < numColumns; column++ {
			columnFunc(column)
		}
		return
	}

	batchSize := mathutil.IntClamp(numColumns/pr.workerPool.GetNumWorkers(), minBatchSize, maxBatchSize)

	var wg sync.WaitGroup
	for i := 0; i < numColumns; i += batchSize {
		start := i
		end := mathutil.IntMin(i+batchSize, numColumns)

		wg.Add(1)
		pr.workerPool.Submit(func() {
			defer wg.Done()
			for column := start; column < end; column++ {
				columnFunc(column)
			}
		})
	}
	wg.Wait()
}

// Workers reports how many goroutines render columns.
func (pr *ParallelRenderer) Workers() int {
	if pr.workerPool == nil {
		return 1
	}
	return pr.workerPool.GetNumWorkers()
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	if pr.workerPool != nil {
		pr.workerPool.Stop()
	}
}
