// Package layout computes on-screen control placement from viewport geometry.
package layout

import "github.com/lberan7/touchglide/internal/geom"

const (
	// landscapeBoost is the ergonomic scale factor applied in landscape.
	landscapeBoost = 1.2
	// primaryFraction sizes the left-click button against the short side.
	primaryFraction = 0.18
	// secondaryFraction sizes the right-click button against the short side.
	secondaryFraction = 0.12
)

// Params configures proportional control sizing.
type Params struct {
	ScaleMultiplier    float64
	EdgePaddingPercent float64
}

// DefaultParams returns the documented default configuration.
func DefaultParams() Params {
	return Params{ScaleMultiplier: 1.0, EdgePaddingPercent: 4}
}

// Placement anchors a circular control to the bottom-right viewport corner.
type Placement struct {
	Right    float64
	Bottom   float64
	Diameter float64
}

// Layout is the full set of placement directives for the overlay controls.
type Layout struct {
	Trackpad  geom.Rect
	Primary   Placement
	Secondary Placement
}

// Compute derives the control layout for a viewport.
//
// The trackpad hit-region always spans the full viewport; only the button
// affordances scale and move with orientation.
func Compute(viewport geom.Size, p Params) Layout {
	short := viewport.Short()
	scale := p.ScaleMultiplier
	if viewport.Landscape() {
		scale *= landscapeBoost
	}
	padding := short * p.EdgePaddingPercent / 100

	secondary := Placement{
		Right:    padding,
		Bottom:   padding,
		Diameter: short * secondaryFraction * scale,
	}
	primary := Placement{
		Right:    padding + secondary.Diameter + padding,
		Bottom:   padding,
		Diameter: short * primaryFraction * scale,
	}

	return Layout{
		Trackpad:  geom.Rect{W: viewport.W, H: viewport.H},
		Primary:   primary,
		Secondary: secondary,
	}
}
