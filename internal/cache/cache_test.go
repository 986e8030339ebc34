package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSetThenGet(t *testing.T) {
	c := New[string]("test", time.Minute)
	c.Set("k", "v")

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got != "v" {
		t.Fatalf("got %q, want %q", got, "v")
	}
}

func TestGetEvictsExpiredEntry(t *testing.T) {
	now := time.Now()
	c := New[string]("test", time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", "v")

	now = now.Add(time.Minute + time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}

	// The entry must be gone, not just logically expired.
	if c.Len() != 0 {
		t.Fatalf("expected evicted entry, %d items remain", c.Len())
	}
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected repeated miss after eviction")
	}
}

func TestGetMissOnUnknownKey(t *testing.T) {
	c := New[int]("test", time.Minute)
	if _, ok := c.Get("absent"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestGetOrLoadCachesResult(t *testing.T) {
	c := New[string]("test", time.Minute)
	calls := 0
	loader := func(ctx context.Context) (string, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(context.Background(), "k", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "loaded" {
			t.Fatalf("got %q, want %q", got, "loaded")
		}
	}
	if calls != 1 {
		t.Fatalf("loader ran %d times, want 1", calls)
	}
}

func TestGetOrLoadDoesNotCacheErrors(t *testing.T) {
	c := New[string]("test", time.Minute)
	boom := errors.New("boom")
	calls := 0

	_, err := c.GetOrLoad(context.Background(), "k", func(ctx context.Context) (string, error) {
		calls++
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got err %v, want %v", err, boom)
	}

	got, err := c.GetOrLoad(context.Background(), "k", func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
	if calls != 2 {
		t.Fatalf("loader ran %d times, want 2", calls)
	}
}

func TestGetOrLoadSingleFlight(t *testing.T) {
	c := New[string]("test", time.Minute)

	var mu sync.Mutex
	calls := 0
	started := make(chan struct{})
	release := make(chan struct{})

	loader := func(ctx context.Context) (string, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		return "v", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 0 {
				// First goroutine enters the loader and blocks.
				v, _ := c.GetOrLoad(context.Background(), "k", loader)
				results[i] = v
				return
			}
			<-started
			v, _ := c.GetOrLoad(context.Background(), "k", loader)
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("loader ran %d times, want 1 (concurrent loads must coalesce)", calls)
	}
	for i, v := range results {
		if v != "v" {
			t.Fatalf("goroutine %d got %q, want %q", i, v, "v")
		}
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int]("test", time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after delete")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("delete must not affect other keys")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear, got %d items", c.Len())
	}
}
