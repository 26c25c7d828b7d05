package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs CPU-bound tasks on a fixed set of goroutines.
//
// Every worker owns a buffered queue. Tasks are dealt round-robin across the
// queues and an idle worker steals from its neighbours, so a span that lands
// on an expensive region of the set (deep interior points) does not leave
// the other workers idle.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds one task queue per worker.
	queues []chan func()

	// done is closed by Close to stop the workers.
	done chan struct{}

	// closeMu orders Close after every in-flight enqueue: Run holds the read
	// lock while sending, Close takes the write lock before closing done.
	closeMu sync.RWMutex

	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

// drain runs whatever is left in a queue after shutdown was requested.
func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// Run executes all tasks and blocks until every one of them has returned.
// Tasks submitted after Close has begun run on the caller's goroutine, so
// Run never returns with work left undone.
func (p *WorkerPool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	p.closeMu.RLock()
	if !p.running.Load() {
		p.closeMu.RUnlock()
		for _, task := range tasks {
			task()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	// done cannot close while the read lock is held, so every queued task
	// reaches a worker that drains its queue before exiting.
	for i, task := range tasks {
		p.queues[i%p.workers] <- func() {
			defer pending.Done()
			task()
		}
	}
	p.closeMu.RUnlock()

	pending.Wait()
}

// Close stops the workers after the queued tasks have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.closeMu.Unlock()
		return
	}
	close(p.done)
	p.closeMu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
