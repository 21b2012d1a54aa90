package concurrent

import (
	"runtime"
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type indexed[T any] struct {
	idx int
	val T
}

// WorkerPool runs JobFunc over submitted jobs on a fixed number of goroutines. Results are
// collected in submission order. AddJob must be called from a single goroutine.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexed[T]
	results    chan indexed[G]
	wg         sync.WaitGroup
	collected  chan struct{}
	out        []G
	nextIdx    int
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	if jobQueueSize < 0 {
		jobQueueSize = 0
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexed[T], jobQueueSize),
		results:    make(chan indexed[G], jobQueueSize),
		collected:  make(chan struct{}),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- indexed[G]{idx: job.idx, val: jobFunc(job.val)}
	}
}

func (wp *WorkerPool[T, G]) collect() {
	defer close(wp.collected)
	for res := range wp.results {
		for len(wp.out) <= res.idx {
			var zero G
			wp.out = append(wp.out, zero)
		}
		wp.out[res.idx] = res.val
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	go wp.collect()
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- indexed[T]{idx: wp.nextIdx, val: job}
	wp.nextIdx++
}

// Close stops accepting jobs. Workers finish what is already queued.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every queued job has a result. Call it after Close.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
	<-wp.collected
}

// CollectResults returns one result per job, indexed by submission order. Call it after Wait.
func (wp *WorkerPool[T, G]) CollectResults() []G {
	return wp.out
}

// Run is Start, AddJob for every job, Close and Wait in one call.
func Run[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(jobFunc)
	for _, job := range jobs {
		wp.AddJob(job)
	}
	wp.Close()
	wp.Wait()
	return wp.CollectResults()
}
