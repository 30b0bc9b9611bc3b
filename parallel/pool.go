// Package parallel provides a minimal worker pool for fanning independent
// jobs out over a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted jobs on worker goroutines. With a single worker the
// pool degrades to running jobs inline on the submitting goroutine.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan func()
	stop func()
}

// Start launches numWorkers workers. Values below 1 use one worker per
// available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{}
	if numWorkers == 1 {
		return p
	}

	p.jobs = make(chan func(), numWorkers)
	p.stop = sync.OnceFunc(func() { close(p.jobs) })

	for range numWorkers {
		p.wg.Go(func() {
			for f := range p.jobs {
				f()
			}
		})
	}

	return p
}

// Do submits a job. Blocks when all workers are busy and the submission
// buffer is full. Must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting jobs and blocks until every submitted job has
// finished.
func (p *Pool) Wait() {
	if p.jobs == nil {
		return
	}
	p.stop()
	p.wg.Wait()
}
