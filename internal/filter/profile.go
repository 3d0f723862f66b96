package filter

import (
	"math"

	"github.com/gogpu/boxshadow/internal/cache"
)

const (
	// DefaultPasses is the number of box blurs used to approximate a Gaussian.
	DefaultPasses = 3

	// SigmaScale maps a shadow radius to the Gaussian standard deviation.
	// The value keeps the blurred falloff compact inside a radius-wide border.
	SigmaScale = 0.4375
)

// BlurProfile lists the box widths that approximate a Gaussian blur of a
// given radius with PassCount successive box blurs.
//
// Invariants: len(BoxSizes) == PassCount, every size is odd and >= 1,
// Padding == Radius.
type BlurProfile struct {
	// Radius is the shadow radius in pixels, clamped to >= 0.
	Radius int

	// PassCount is the number of box blur passes, clamped to >= 1.
	PassCount int

	// BoxSizes holds the kernel width for each pass, in pass order.
	BoxSizes []int

	// Padding is the border added around the box so the blur has room to
	// spread.
	Padding int
}

// NewBlurProfile computes the profile for radius and passCount using the
// "fast almost-Gaussian" split between two odd widths wl and wu = wl+2.
//
// A radius <= 0 yields size-1 kernels (identity) and no padding.
func NewBlurProfile(radius, passCount int) *BlurProfile {
	if radius < 0 {
		radius = 0
	}
	if passCount < 1 {
		passCount = 1
	}

	p := &BlurProfile{
		Radius:    radius,
		PassCount: passCount,
		BoxSizes:  make([]int, passCount),
		Padding:   radius,
	}

	if radius == 0 {
		for i := range p.BoxSizes {
			p.BoxSizes[i] = 1
		}
		return p
	}

	wl, wu, m := boxSizeSplit(p.Sigma(), passCount)
	for i := range p.BoxSizes {
		if i < m {
			p.BoxSizes[i] = wl
		} else {
			p.BoxSizes[i] = wu
		}
	}
	return p
}

// boxSizeSplit returns the lower width wl, the upper width wu and the number
// m of passes that use wl, for n passes approximating sigma.
func boxSizeSplit(sigma float64, n int) (wl, wu, m int) {
	nf := float64(n)
	variance := 12 * sigma * sigma

	wIdeal := math.Sqrt(variance/nf + 1)
	wl = int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu = wl + 2

	wlf := float64(wl)
	mIdeal := (variance - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m = int(math.Round(mIdeal))
	m = max(0, min(n, m))
	return wl, wu, m
}

// Sigma returns the standard deviation of the approximated Gaussian.
func (p *BlurProfile) Sigma() float64 {
	return float64(p.Radius) * SigmaScale
}

// Identity reports whether every pass is a no-op.
func (p *BlurProfile) Identity() bool {
	for _, s := range p.BoxSizes {
		if s > 1 {
			return false
		}
	}
	return true
}

// Reach returns how far, in pixels, a single opaque pixel can spread along
// one axis after all passes.
func (p *BlurProfile) Reach() int {
	reach := 0
	for _, s := range p.BoxSizes {
		reach += (s - 1) / 2
	}
	return reach
}

type profileKey struct {
	radius, passes int
}

var profiles = cache.New[profileKey, *BlurProfile](64)

// CachedProfile returns a memoized profile for radius and passCount.
// The returned profile is shared and must not be modified.
func CachedProfile(radius, passCount int) *BlurProfile {
	key := profileKey{radius: max(radius, 0), passes: max(passCount, 1)}
	return profiles.GetOrCreate(key, func() *BlurProfile {
		p := NewBlurProfile(key.radius, key.passes)
		logger().Debug("filter: blur profile",
			"radius", p.Radius, "passes", p.PassCount,
			"sigma", p.Sigma(), "boxSizes", p.BoxSizes)
		return p
	})
}
