package cache

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryCounterStore_Sequence(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	n, err := store.Current(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Current = %d, %v, want 0, nil", n, err)
	}

	if n, _ = store.Increment(ctx); n != 1 {
		t.Fatalf("after increment = %d, want 1", n)
	}
	if n, _ = store.Increment(ctx); n != 2 {
		t.Fatalf("after second increment = %d, want 2", n)
	}
	if n, _ = store.Decrement(ctx); n != 1 {
		t.Fatalf("after decrement = %d, want 1", n)
	}
}

func TestMemoryCounterStore_DecrementFloorsAtZero(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := store.Decrement(ctx)
		if err != nil {
			t.Fatalf("Decrement failed: %v", err)
		}
		if n != 0 {
			t.Fatalf("count went negative: %d", n)
		}
	}
}

func TestMemoryCounterStore_ConcurrentIncrements(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Increment(ctx); err != nil {
				t.Errorf("Increment failed: %v", err)
			}
		}()
	}
	wg.Wait()

	n, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if n != 50 {
		t.Fatalf("count = %d, want 50", n)
	}
}
