package contact

import (
	"sync"
	"time"
)

// Registry keeps one Form per visitor session in memory. Entries not
// touched for the idle TTL are evicted; an evicted session that comes
// back gets a fresh idle form.
type Registry struct {
	relay   Relay
	ttl     time.Duration
	opts    []FormOption
	now     func() time.Time
	onEvict func(id string)

	mu     sync.Mutex
	forms  map[string]*entry
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

type entry struct {
	form     *Form
	lastSeen time.Time
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	ttl             time.Duration
	cleanupInterval time.Duration
	formOpts        []FormOption
	now             func() time.Time
	onEvict         func(id string)
}

// WithIdleTTL sets how long an untouched form is kept. Default: 30 minutes.
func WithIdleTTL(d time.Duration) RegistryOption {
	return func(c *registryConfig) {
		c.ttl = d
	}
}

// WithCleanupInterval sets how often idle forms are evicted. Default: 1 minute.
func WithCleanupInterval(d time.Duration) RegistryOption {
	return func(c *registryConfig) {
		c.cleanupInterval = d
	}
}

// WithFormOptions applies opts to every form the registry creates.
func WithFormOptions(opts ...FormOption) RegistryOption {
	return func(c *registryConfig) {
		c.formOpts = append(c.formOpts, opts...)
	}
}

// WithEvictHook registers fn to be called with each evicted session id.
func WithEvictHook(fn func(id string)) RegistryOption {
	return func(c *registryConfig) {
		c.onEvict = fn
	}
}

// withClock replaces time.Now for tests.
func withClock(now func() time.Time) RegistryOption {
	return func(c *registryConfig) {
		c.now = now
	}
}

// NewRegistry creates a registry whose forms submit through relay, and
// starts its cleanup loop. Call Close to stop it.
func NewRegistry(relay Relay, opts ...RegistryOption) *Registry {
	cfg := &registryConfig{
		ttl:             30 * time.Minute,
		cleanupInterval: time.Minute,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cleanupInterval <= 0 {
		cfg.cleanupInterval = time.Minute
	}

	r := &Registry{
		relay:   relay,
		ttl:     cfg.ttl,
		opts:    cfg.formOpts,
		now:     cfg.now,
		onEvict: cfg.onEvict,
		forms:   make(map[string]*entry),
		done:    make(chan struct{}),
	}

	r.wg.Add(1)
	go r.cleanupLoop(cfg.cleanupInterval)
	return r
}

// Get returns the form for session id, creating an idle one if needed, and
// marks it as seen.
func (r *Registry) Get(id string) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.forms[id]; ok {
		e.lastSeen = now
		return e.form
	}

	f := NewForm(r.relay, r.opts...)
	if r.closed {
		// Still usable, just not tracked.
		return f
	}
	r.forms[id] = &entry{form: f, lastSeen: now}
	return f
}

// Lookup returns the form for id without creating one.
func (r *Registry) Lookup(id string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.forms[id]
	if !ok {
		return nil, false
	}
	return e.form, true
}

// Count returns the number of tracked forms.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Close stops the cleanup loop and drops all forms. Forms already handed
// out keep working.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.done)
	r.forms = make(map[string]*entry)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

func (r *Registry) cleanupLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.done:
			return
		}
	}
}

// evictIdle removes forms not seen within the TTL. A form that is still
// sending is kept until its submission settles.
func (r *Registry) evictIdle() {
	r.mu.Lock()
	cutoff := r.now().Add(-r.ttl)
	var evicted []string
	for id, e := range r.forms {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.form.Status() == StatusSending {
			continue
		}
		delete(r.forms, id)
		evicted = append(evicted, id)
	}
	r.mu.Unlock()

	if r.onEvict != nil {
		for _, id := range evicted {
			r.onEvict(id)
		}
	}
}
