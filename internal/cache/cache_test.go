package cache

import (
	"sync"
	"testing"
)

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	created := 0

	val := c.GetOrCreate("key1", func() int {
		created++
		return 100
	})
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	val = c.GetOrCreate("key1", func() int {
		created++
		return 200
	})
	if val != 100 {
		t.Errorf("expected cached 100, got %d", val)
	}
	if created != 1 {
		t.Errorf("create called %d times, want 1", created)
	}
}

// set stores v under k through GetOrCreate.
func set(c *Cache[int, int], k, v int) {
	c.GetOrCreate(k, func() int { return v })
}

// has reports whether k is cached without creating it.
func has(c *Cache[int, int], k int) bool {
	missing := false
	c.GetOrCreate(k, func() int {
		missing = true
		return -1
	})
	return !missing
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		set(c, i, i)
	}
	// Touch 0 so that 1 becomes the oldest.
	set(c, 0, 0)
	set(c, 4, 4)

	// Over the limit: trimmed to 3/4 of capacity.
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if !has(c, 4) {
		t.Error("newest key 4 was evicted")
	}
	if !has(c, 0) {
		t.Error("recently used key 0 was evicted")
	}
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 5; i++ {
		set(c, i, i)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for _, k := range []int{2, 3, 4} {
		if !has(c, k) {
			t.Errorf("key %d was evicted", k)
		}
	}
}

func TestCacheUnlimitedAndClear(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		set(c, i, i)
	}
	if c.Len() != 100 {
		t.Errorf("unlimited cache Len() = %d, want 100", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func intHasher(i int) uint64 { return HashWords(uint64(i)) }

func TestShardedGetOrCreateStats(t *testing.T) {
	c := NewSharded[int, string](4, intHasher)

	c.GetOrCreate(1, func() string { return "one" })
	if v := c.GetOrCreate(1, func() string { return "uno" }); v != "one" {
		t.Errorf("GetOrCreate(1) = %q, want cached %q", v, "one")
	}
	c.GetOrCreate(2, func() string { return "two" })
	if v := c.GetOrCreate(2, func() string { return "dos" }); v != "two" {
		t.Errorf("GetOrCreate(2) = %q, want cached %q", v, "two")
	}

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 2/2", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
	if stats.TotalCapacity != 4*ShardCount {
		t.Errorf("TotalCapacity = %d", stats.TotalCapacity)
	}
}

func TestShardedEvictionPerShard(t *testing.T) {
	// Constant hash puts every key in one shard.
	c := NewSharded[int, int](2, func(int) uint64 { return 3 })
	for i := 0; i < 5; i++ {
		c.GetOrCreate(i, func() int { return i })
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.Stats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestShardedConcurrentCreateOnce(t *testing.T) {
	c := NewSharded[int, int](8, intHasher)
	var mu sync.Mutex
	created := 0

	var wg sync.WaitGroup
	for n := 0; n < 32; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCreate(7, func() int {
				mu.Lock()
				created++
				mu.Unlock()
				return 49
			})
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("create ran %d times, want 1", created)
	}
}

func TestHashWordsStable(t *testing.T) {
	if HashWords(1, 2) != HashWords(1, 2) {
		t.Error("HashWords is not deterministic")
	}
	if HashWords(1, 2) == HashWords(2, 1) {
		t.Error("HashWords ignores word order")
	}
}
