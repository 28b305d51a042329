package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	// Submit queues t, waiting for room; it returns false once the pool is stopped.
	Submit(t Task) bool
	// TrySubmit queues t only if there is room right now; it never blocks.
	TrySubmit(t Task) bool
	// Stop refuses new tasks and waits for queued ones to finish.
	Stop()
}

// Option configures a pool.
type Option func(*pool)

// WithPanicHandler is called with the recovered value when a task panics.
func WithPanicHandler(h func(v any)) Option {
	return func(p *pool) { p.onPanic = h }
}

// NewPool creates a pool with n workers and a queue of the given size.
// n<=0 defaults to 1, queue<0 to 0 (unbuffered).
func NewPool(n, queue int, opts ...Option) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	for _, opt := range opts {
		opt(p)
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	closed  bool
	jobs    chan Task
	wg      sync.WaitGroup
	onPanic func(v any)
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(job)
	}
}

// run keeps a panicking task from killing its worker.
func (p *pool) run(t Task) {
	if t == nil {
		return
	}
	defer func() {
		if v := recover(); v != nil && p.onPanic != nil {
			p.onPanic(v)
		}
	}()
	t()
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.jobs <- t
	return true
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
