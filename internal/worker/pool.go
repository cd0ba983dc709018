package worker

import (
	"context"
	"runtime"
	"sync"
)

// Job is a unit of work processed by the pool
type Job interface {
	Process(ctx context.Context) error
	ID() string
}

// Result contains the outcome of processing a job
type Result struct {
	JobID string
	Error error
}

// Pool manages a fixed set of worker goroutines. Conversions are
// independent and share no mutable state, so workers need no coordination
// beyond the job and result channels.
type Pool struct {
	workerCount int
	jobs        chan Job
	results     chan Result
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewPool creates a new worker pool. A count <= 0 uses one worker per CPU.
func NewPool(workerCount int) *Pool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workerCount: workerCount,
		jobs:        make(chan Job, workerCount*2),
		results:     make(chan Result, workerCount*2),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins processing jobs
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop gracefully shuts down the pool after all submitted jobs finish
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Submit adds a job to the processing queue
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	case <-p.ctx.Done():
		p.results <- Result{
			JobID: job.ID(),
			Error: p.ctx.Err(),
		}
	}
}

// Results returns the results channel
func (p *Pool) Results() <-chan Result {
	return p.results
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workerCount
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			p.results <- Result{
				JobID: job.ID(),
				Error: job.Process(p.ctx),
			}

		case <-p.ctx.Done():
			return
		}
	}
}
