// Package cache provides the generic caches behind profile and mask reuse.
//
// Two implementations are offered:
//
// # Cache[K, V]
//
// A small thread-safe LRU with a soft limit. Blur profiles are memoized in
// one of these; there are only a handful of distinct (radius, passes) pairs
// in a running decoration.
//
//	profiles := cache.New[profileKey, *BlurProfile](64)
//	p := profiles.GetOrCreate(key, compute)
//
// # ShardedCache[K, V]
//
// A 16-shard LRU for values shared across goroutines. Blurred shadow masks
// are stored here so that active, inactive and hover colour variants reuse
// one blur.
//
//	masks := cache.NewSharded[MaskKey, *Mask](32, hashMaskKey)
//
// # Thread Safety
//
// Both caches are safe for concurrent use and must not be copied after
// creation (they contain mutexes).
package cache
