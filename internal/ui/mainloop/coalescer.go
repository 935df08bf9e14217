package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks: while a task for a key
// is queued, posting again only replaces the callback that will run.
type Coalescer struct {
	mu        sync.Mutex
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		callbacks: make(map[string]func()),
		post:      post,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.callbacks[key]
	c.callbacks[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	c.post(func() { c.run(key) })
}

// Pending reports whether a task for key is queued and not yet run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.callbacks[key]
	return ok
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.callbacks[key]
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
