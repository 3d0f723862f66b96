package boxshadow

import (
	"math"

	"github.com/gogpu/boxshadow/internal/cache"
)

// CacheStats reports mask cache activity.
type CacheStats = cache.Stats

// MaskKey identifies a colour-independent shadow mask.
type MaskKey struct {
	BoxWidth, BoxHeight int
	Radius              int
	Passes              int
	DevicePixelRatio    float64
	BorderRadius        float64
}

// keyOf expects a normalized spec.
func keyOf(s ShadowSpec) MaskKey {
	return MaskKey{
		BoxWidth:         s.BoxSize.X,
		BoxHeight:        s.BoxSize.Y,
		Radius:           s.Radius,
		Passes:           s.Passes,
		DevicePixelRatio: s.DevicePixelRatio,
		BorderRadius:     s.BorderRadius,
	}
}

func hashMaskKey(k MaskKey) uint64 {
	return cache.HashWords(
		uint64(k.BoxWidth), uint64(k.BoxHeight),
		uint64(k.Radius), uint64(k.Passes),
		math.Float64bits(k.DevicePixelRatio),
		math.Float64bits(k.BorderRadius),
	)
}

// MaskCache keeps blurred masks so that shadows differing only in colour
// or offset share one blur. Tinting a cached mask is a single linear pass.
//
// MaskCache is safe for concurrent use.
type MaskCache struct {
	masks *cache.ShardedCache[MaskKey, *AlphaMask]
}

// NewMaskCache creates a cache holding up to capacity masks per shard.
// If capacity <= 0 a default is used.
func NewMaskCache(capacity int) *MaskCache {
	return &MaskCache{
		masks: cache.NewSharded[MaskKey, *AlphaMask](capacity, hashMaskKey),
	}
}

// Mask returns the blurred mask for spec, computing it on first use.
// The mask is shared and must not be modified.
func (c *MaskCache) Mask(spec ShadowSpec) *AlphaMask {
	return c.mask(spec.normalized())
}

func (c *MaskCache) mask(s ShadowSpec) *AlphaMask {
	key := keyOf(s)
	return c.masks.GetOrCreate(key, func() *AlphaMask {
		m := buildMask(s)
		Logger().Debug("boxshadow: mask cache miss",
			"box", s.BoxSize, "radius", s.Radius, "passes", s.Passes,
			"dpr", s.DevicePixelRatio, "size", [2]int{m.Width(), m.Height()})
		return m
	})
}

// Render is Render(spec) with the blur served from the cache.
func (c *MaskCache) Render(spec ShadowSpec) *Pixmap {
	s := spec.normalized()
	return tint(c.mask(s), s)
}

// Stats returns cache statistics.
func (c *MaskCache) Stats() CacheStats {
	return c.masks.Stats()
}

// Clear drops every cached mask, e.g. after a theme change.
func (c *MaskCache) Clear() {
	c.masks.Clear()
}
