package renderer

import (
	"image"
	"sync"
	"time"
)

// BandTask is a contiguous range of image rows rendered by one worker
type BandTask struct {
	Bounds image.Rectangle
	TaskID int
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID  int
	Pixels  int
	Elapsed time.Duration
}

// bandFunc renders the pixels of a band into the shared frame
type bandFunc func(bounds image.Rectangle)

// WorkerPool runs band tasks on a fixed set of goroutines
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	render      bandFunc
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with room for maxTasks queued tasks and results
func NewWorkerPool(numWorkers, maxTasks int, render bandFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// SubmitTask queues a band
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// Wait closes the task queue and blocks until every queued band has been
// rendered. No results are produced after it returns.
func (wp *WorkerPool) Wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the completed band results; it is closed by Wait
func (wp *WorkerPool) Results() <-chan BandResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		start := time.Now()
		wp.render(task.Bounds)
		wp.resultQueue <- BandResult{
			TaskID:  task.TaskID,
			Pixels:  task.Bounds.Dx() * task.Bounds.Dy(),
			Elapsed: time.Since(start),
		}
	}
}
