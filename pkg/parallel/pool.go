package parallel

import (
	"fmt"
	"sync"
)

// Pool is a fixed-size worker pool. The engine uses one to fan the
// independent per-subgraph searches of a computation out across workers.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex // protects tasks from concurrent close during send
	closed bool
}

// NewPool creates a pool with the given number of workers. Counts below 1
// are clamped to 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		tasks: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		// Recover from task panics so one bad search cannot kill a worker
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("worker panic recovered: %v\n", r)
				}
			}()
			task()
		}()
	}
}

// Submit enqueues a task. Returns false if the pool is closed.
func (p *Pool) Submit(task func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.tasks <- task
	return true
}

// Close shuts the pool down and waits for in-flight tasks to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()
	})
	p.wg.Wait()
}

// ForEach runs fn for every index in [0, n) across a temporary pool of
// the given width and returns when all invocations complete. Call order
// across workers is unspecified; callers must not depend on it.
func ForEach(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	p := NewPool(workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			fn(i)
		})
	}
	wg.Wait()
	p.Close()
}
