// Package costs estimates heat pump capital costs from a piecewise-linear
// specific-cost curve over installation size.
package costs

import (
	"fmt"
	"sort"
)

// defaultAnchors maps size [MW] to specific cost [EUR/MW_th].
// Source: Danish Energy Agency (Feb. 2025), excess heat heat pumps 1-10 MW
// and seawater heat pumps at 20 MW.
var defaultAnchors = map[float64]float64{
	1:  1.32e6,
	3:  0.91e6,
	10: 0.71e6,
	20: 0.51e6,
}

// Curve is a piecewise-linear specific-cost curve.
type Curve struct {
	sizes []float64
	costs []float64
}

// DefaultCurve returns the built-in Danish Energy Agency curve.
func DefaultCurve() *Curve {
	curve, _ := NewCurve(defaultAnchors)
	return curve
}

// NewCurve builds a curve from size [MW] to specific cost [EUR/MW] anchor
// points. At least two anchors are required and all values must be positive.
func NewCurve(anchors map[float64]float64) (*Curve, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("cost curve needs at least 2 anchor points, got %d", len(anchors))
	}

	sizes := make([]float64, 0, len(anchors))
	for size, cost := range anchors {
		if size <= 0 {
			return nil, fmt.Errorf("anchor size %g MW must be positive", size)
		}
		if cost <= 0 {
			return nil, fmt.Errorf("anchor cost %g EUR/MW must be positive", cost)
		}
		sizes = append(sizes, size)
	}
	sort.Float64s(sizes)

	curveCosts := make([]float64, len(sizes))
	for i, size := range sizes {
		curveCosts[i] = anchors[size]
	}

	return &Curve{sizes: sizes, costs: curveCosts}, nil
}

// Anchors returns the curve anchors as size to specific cost.
func (c *Curve) Anchors() map[float64]float64 {
	anchors := make(map[float64]float64, len(c.sizes))
	for i, size := range c.sizes {
		anchors[size] = c.costs[i]
	}
	return anchors
}

// SpecificCost interpolates the specific cost [EUR/MW] for a heat pump of the
// given size [MW]. Sizes above the largest anchor are clamped to its cost;
// sizes below the smallest anchor are rejected, as is a negative size.
func (c *Curve) SpecificCost(sizeMW float64) (float64, error) {
	if sizeMW < 0 {
		return 0, fmt.Errorf("heat pump size %g MW must be positive", sizeMW)
	}

	pos := sort.SearchFloat64s(c.sizes, sizeMW)
	if pos < len(c.sizes) && c.sizes[pos] == sizeMW {
		return c.costs[pos], nil
	}
	if pos == 0 {
		return 0, fmt.Errorf("heat pump size %g MW is below the smallest anchor %g MW", sizeMW, c.sizes[0])
	}
	if pos == len(c.sizes) {
		return c.costs[len(c.costs)-1], nil
	}

	x1, x2 := c.sizes[pos-1], c.sizes[pos]
	y1, y2 := c.costs[pos-1], c.costs[pos]
	return y1 + (y2-y1)*(sizeMW-x1)/(x2-x1), nil
}

// Capital estimates the capital cost [EUR] of a heat pump of the given size
// [MW] as size times interpolated specific cost.
func (c *Curve) Capital(sizeMW float64) (float64, error) {
	specific, err := c.SpecificCost(sizeMW)
	if err != nil {
		return 0, err
	}
	return specific * sizeMW, nil
}
