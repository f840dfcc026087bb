package layout

import (
	"math"
	"testing"

	"github.com/lberan7/touchglide/internal/geom"
)

// near reports whether two floats match within a small tolerance.
func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestCompute_LandscapeDefaults verifies the documented landscape numbers.
func TestCompute_LandscapeDefaults(t *testing.T) {
	l := Compute(geom.Size{W: 1000, H: 500}, DefaultParams())

	if !near(l.Secondary.Right, 20) || !near(l.Secondary.Bottom, 20) {
		t.Fatalf("expected secondary insets 20, got %+v", l.Secondary)
	}
	if !near(l.Secondary.Diameter, 72) {
		t.Fatalf("expected secondary diameter 72, got %v", l.Secondary.Diameter)
	}
	if !near(l.Primary.Diameter, 108) {
		t.Fatalf("expected primary diameter 108, got %v", l.Primary.Diameter)
	}
	if !near(l.Primary.Right, 112) {
		t.Fatalf("expected primary right offset 112, got %v", l.Primary.Right)
	}
}

// TestCompute_PortraitOmitsBoost verifies portrait keeps the base scale.
func TestCompute_PortraitOmitsBoost(t *testing.T) {
	l := Compute(geom.Size{W: 500, H: 1000}, DefaultParams())
	if !near(l.Secondary.Diameter, 60) {
		t.Fatalf("expected secondary diameter 60, got %v", l.Secondary.Diameter)
	}
	if !near(l.Primary.Diameter, 90) {
		t.Fatalf("expected primary diameter 90, got %v", l.Primary.Diameter)
	}
}

// TestCompute_OrientationSymmetry verifies rotation changes sizes by exactly the boost.
func TestCompute_OrientationSymmetry(t *testing.T) {
	portrait := Compute(geom.Size{W: 500, H: 1000}, DefaultParams())
	landscape := Compute(geom.Size{W: 1000, H: 500}, DefaultParams())

	if !near(landscape.Primary.Diameter, portrait.Primary.Diameter*1.2) {
		t.Fatalf("expected primary %v to be 1.2x of %v", landscape.Primary.Diameter, portrait.Primary.Diameter)
	}
	if !near(landscape.Secondary.Diameter, portrait.Secondary.Diameter*1.2) {
		t.Fatalf("expected secondary %v to be 1.2x of %v", landscape.Secondary.Diameter, portrait.Secondary.Diameter)
	}
	if !near(landscape.Primary.Bottom, portrait.Primary.Bottom) {
		t.Fatalf("padding must depend only on the short side")
	}
}

// TestCompute_TrackpadSpansViewport verifies the hit-region ignores button math.
func TestCompute_TrackpadSpansViewport(t *testing.T) {
	l := Compute(geom.Size{W: 1234, H: 321}, Params{ScaleMultiplier: 3, EdgePaddingPercent: 10})
	if l.Trackpad != (geom.Rect{X: 0, Y: 0, W: 1234, H: 321}) {
		t.Fatalf("expected full-viewport trackpad, got %+v", l.Trackpad)
	}
}

// TestCompute_CustomParams verifies scale and padding apply uniformly.
func TestCompute_CustomParams(t *testing.T) {
	l := Compute(geom.Size{W: 400, H: 800}, Params{ScaleMultiplier: 2, EdgePaddingPercent: 10})
	if !near(l.Secondary.Right, 40) {
		t.Fatalf("expected padding 40, got %v", l.Secondary.Right)
	}
	if !near(l.Secondary.Diameter, 400*0.12*2) {
		t.Fatalf("unexpected secondary diameter %v", l.Secondary.Diameter)
	}
	if !near(l.Primary.Right, 40+96+40) {
		t.Fatalf("unexpected primary right offset %v", l.Primary.Right)
	}
}
