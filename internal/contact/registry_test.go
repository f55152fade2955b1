package contact

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(t *testing.T, relay Relay, opts ...RegistryOption) (*Registry, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]RegistryOption{
		withClock(clock.Now),
		WithIdleTTL(10 * time.Minute),
		WithCleanupInterval(time.Hour),
	}, opts...)
	r := NewRegistry(relay, opts...)
	t.Cleanup(func() { r.Close() })
	return r, clock
}

func TestRegistryReturnsSameFormPerSession(t *testing.T) {
	r, _ := newTestRegistry(t, &stubRelay{})

	a := r.Get("a")
	if r.Get("a") != a {
		t.Error("expected the same form for the same session")
	}
	if r.Get("b") == a {
		t.Error("expected a distinct form for another session")
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 forms, got %d", r.Count())
	}
	if _, ok := r.Lookup("c"); ok {
		t.Error("Lookup must not create forms")
	}
}

func TestRegistryFormsAreIndependent(t *testing.T) {
	r, _ := newTestRegistry(t, &stubRelay{})

	a := r.Get("a")
	fillAda(t, a)
	if _, err := a.Submit(t.Context()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r.Get("b").Status() != StatusIdle {
		t.Error("another session's form should still be idle")
	}
}

func TestRegistryEvictsIdleForms(t *testing.T) {
	var evicted []string
	r, clock := newTestRegistry(t, &stubRelay{}, WithEvictHook(func(id string) {
		evicted = append(evicted, id)
	}))

	r.Get("old")
	clock.Advance(6 * time.Minute)
	r.Get("fresh")
	clock.Advance(6 * time.Minute)

	r.evictIdle()

	if _, ok := r.Lookup("old"); ok {
		t.Error("expected idle form to be evicted")
	}
	if _, ok := r.Lookup("fresh"); !ok {
		t.Error("expected recently seen form to be kept")
	}
	if len(evicted) != 1 || evicted[0] != "old" {
		t.Errorf("expected evict hook for old, got %v", evicted)
	}

	if r.Get("old").Status() != StatusIdle {
		t.Error("a returning session gets a fresh idle form")
	}
}

func TestRegistryKeepsSendingForms(t *testing.T) {
	relay := &stubRelay{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	r, clock := newTestRegistry(t, relay)

	f := r.Get("busy")
	fillAda(t, f)
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.Submit(t.Context())
	}()
	<-relay.entered

	clock.Advance(time.Hour)
	r.evictIdle()
	if _, ok := r.Lookup("busy"); !ok {
		t.Error("a sending form must not be evicted")
	}

	close(relay.gate)
	<-done
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry(&stubRelay{}, WithCleanupInterval(time.Millisecond))
	r.Get("a")

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("expected no forms after Close, got %d", r.Count())
	}
	if f := r.Get("b"); f == nil || f.Status() != StatusIdle {
		t.Error("Get after Close should still hand out a usable form")
	}
	if r.Count() != 0 {
		t.Error("forms created after Close are not tracked")
	}
}

func TestRegistryAppliesFormOptions(t *testing.T) {
	var mu sync.Mutex
	var seen []Status
	r, _ := newTestRegistry(t, &stubRelay{}, WithFormOptions(WithObserver(func(tr Transition) {
		mu.Lock()
		seen = append(seen, tr.To)
		mu.Unlock()
	})))

	f := r.Get("a")
	fillAda(t, f)
	f.Submit(t.Context())

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[1] != StatusSuccess {
		t.Errorf("expected observer on registry forms, got %v", seen)
	}
}
