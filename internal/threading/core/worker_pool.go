package core

import (
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for parallel processing
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// A count of zero or less means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// CreateWorkerPool creates a pool and starts its workers.
func CreateWorkerPool(numWorkers int) *WorkerPool {
	wp := NewWorkerPool(numWorkers)
	wp.Start()
	return wp
}

// Start initializes and starts all worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
		case <-wp.quit:
			return
		}
	}
}

// Submit adds a job to the worker queue. Callers track completion themselves.
func (wp *WorkerPool) Submit(job func()) {
	wp.jobQueue <- job
}

// Stop shuts down the worker pool. Calling it more than once is safe.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.quit)
	})
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
