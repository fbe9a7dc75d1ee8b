package analytics

import "sync"

type job[T any] func() T

type result[T any] struct {
	jobID  string
	output T
}

// pool is a fixed-size worker pool. Close stops intake and waits for
// in-flight jobs to drain before the results channel is closed.
type pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	id string
	fn job[T]
}

func newPool[T any](workerCount, bufferSize int) *pool[T] {
	p := &pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan result[T], bufferSize),
	}
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *pool[T]) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		p.results <- result[T]{jobID: j.id, output: j.fn()}
	}
}

// submit enqueues fn; it reports false when the queue is full rather than
// blocking the caller.
func (p *pool[T]) submit(id string, fn job[T]) bool {
	select {
	case p.jobs <- jobWrapper[T]{id: id, fn: fn}:
		return true
	default:
		return false
	}
}

func (p *pool[T]) close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}
