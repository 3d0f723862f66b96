package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBlurProfile(t *testing.T) {
	tests := []struct {
		name        string
		radius      int
		passes      int
		wantSizes   []int
		wantPadding int
	}{
		{"zero radius", 0, 3, []int{1, 1, 1}, 0},
		{"negative radius", -4, 3, []int{1, 1, 1}, 0},
		{"radius 1 rounds to identity", 1, 3, []int{1, 1, 1}, 1},
		{"radius 5", 5, 3, []int{3, 5, 5}, 5},
		{"radius 10", 10, 3, []int{9, 9, 9}, 10},
		{"radius 12", 12, 3, []int{9, 11, 11}, 12},
		{"radius 16", 16, 3, []int{13, 13, 15}, 16},
		{"radius 24", 24, 3, []int{21, 21, 21}, 24},
		{"radius 24 single pass", 24, 1, []int{37}, 24},
		{"radius 24 two passes", 24, 2, []int{25, 27}, 24},
		{"pass count clamped", 24, 0, []int{37}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBlurProfile(tt.radius, tt.passes)
			if diff := cmp.Diff(tt.wantSizes, p.BoxSizes); diff != "" {
				t.Errorf("BoxSizes mismatch (-want +got):\n%s", diff)
			}
			if p.Padding != tt.wantPadding {
				t.Errorf("Padding = %d, want %d", p.Padding, tt.wantPadding)
			}
			if p.PassCount != len(p.BoxSizes) {
				t.Errorf("PassCount = %d, len(BoxSizes) = %d", p.PassCount, len(p.BoxSizes))
			}
		})
	}
}

func TestBoxSizeSplitScenario(t *testing.T) {
	// radius 24: sigma = 10.5, wIdeal = sqrt(12*110.25/3 + 1) ~ 21.07.
	p := NewBlurProfile(24, 3)
	if got := p.Sigma(); got != 10.5 {
		t.Fatalf("Sigma() = %v, want 10.5", got)
	}
	wl, wu, m := boxSizeSplit(p.Sigma(), 3)
	if wl != 21 || wu != 23 || m != 3 {
		t.Errorf("boxSizeSplit = {%d, %d, %d}, want {21, 23, 3}", wl, wu, m)
	}
}

func TestBlurProfileInvariants(t *testing.T) {
	for radius := -2; radius <= 96; radius++ {
		for passes := 0; passes <= 6; passes++ {
			p := NewBlurProfile(radius, passes)
			wantPasses := max(passes, 1)
			if len(p.BoxSizes) != wantPasses {
				t.Fatalf("r=%d n=%d: len(BoxSizes) = %d, want %d", radius, passes, len(p.BoxSizes), wantPasses)
			}
			for i, s := range p.BoxSizes {
				if s < 1 || s%2 == 0 {
					t.Fatalf("r=%d n=%d: BoxSizes[%d] = %d, want odd and >= 1", radius, passes, i, s)
				}
				if i > 0 && s < p.BoxSizes[i-1] {
					t.Fatalf("r=%d n=%d: sizes not ordered %v", radius, passes, p.BoxSizes)
				}
			}
			if p.Padding != p.Radius {
				t.Fatalf("r=%d n=%d: Padding %d != Radius %d", radius, passes, p.Padding, p.Radius)
			}
		}
	}
}

func TestBlurProfileReachAndIdentity(t *testing.T) {
	if !NewBlurProfile(0, 3).Identity() {
		t.Error("radius 0 profile should be identity")
	}
	p := NewBlurProfile(24, 3)
	if p.Identity() {
		t.Error("radius 24 profile should not be identity")
	}
	if got := p.Reach(); got != 30 {
		t.Errorf("Reach() = %d, want 30", got)
	}
}

func TestCachedProfileShared(t *testing.T) {
	a := CachedProfile(18, 3)
	b := CachedProfile(18, 3)
	if a != b {
		t.Error("CachedProfile returned distinct pointers for the same key")
	}
	if diff := cmp.Diff(NewBlurProfile(18, 3), a); diff != "" {
		t.Errorf("cached profile differs (-want +got):\n%s", diff)
	}
	if CachedProfile(-1, 0) != CachedProfile(0, 1) {
		t.Error("clamped keys should share one entry")
	}
}
