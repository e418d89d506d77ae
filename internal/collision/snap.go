package collision

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// minExtent keeps zero-sized footprints valid as R-tree rectangles
const minExtent = 1e-6

// compatibleLayers lists the neighbour layers each layer snaps to
var compatibleLayers = map[layout.LayerType][]layout.LayerType{
	layout.LayerWall: {layout.LayerWall},
	layout.LayerBase: {layout.LayerBase},
	layout.LayerTall: {layout.LayerBase, layout.LayerWall},
}

// compassDirections are unit vectors in probe order N, NE, E, SE, S, SW, W, NW.
// North is toward the front wall (decreasing y).
var compassDirections = [8][2]float64{
	{0, -1},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{1, 0},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
	{0, 1},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{-1, 0},
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

type footprint struct {
	element layout.DesignElement
	rect    rtreego.Rect
}

func (f *footprint) Bounds() rtreego.Rect {
	return f.rect
}

func newFootprint(el layout.DesignElement) (*footprint, error) {
	rect, err := rtreego.NewRect(
		rtreego.Point{el.Position.X, el.Position.Y},
		[]float64{math.Max(el.Dimensions.Width, minExtent), math.Max(el.Dimensions.Depth, minExtent)},
	)
	if err != nil {
		return nil, err
	}
	return &footprint{element: el, rect: rect}, nil
}

func compatible(layer, neighbour layout.LayerType) bool {
	for _, l := range compatibleLayers[layer] {
		if l == neighbour {
			return true
		}
	}
	return false
}

// neighbours returns up to MaxSnapNeighbors compatible placed elements
// nearest the candidate's center
func (c *checker) neighbours(candidate layout.DesignElement) []layout.DesignElement {
	cm, ok := c.metadata(candidate)
	if !ok {
		return nil
	}

	tree := rtreego.NewTree(2, 4, 16)
	size := 0
	for _, other := range c.placed {
		if other.ID == candidate.ID {
			continue
		}
		om, ok := c.metadata(other)
		if !ok || !compatible(cm.LayerType, om.LayerType) {
			continue
		}
		fp, err := newFootprint(other)
		if err != nil {
			c.engine.logger.Warn("skipping element with invalid footprint", "element_id", other.ID, "error", err)
			continue
		}
		tree.Insert(fp)
		size++
	}
	if size == 0 {
		return nil
	}

	center := rtreego.Point{
		candidate.Position.X + candidate.Dimensions.Width/2,
		candidate.Position.Y + candidate.Dimensions.Depth/2,
	}

	var out []layout.DesignElement
	for _, s := range tree.NearestNeighbors(MaxSnapNeighbors, center) {
		fp, ok := s.(*footprint)
		if !ok || fp == nil {
			continue
		}
		out = append(out, fp.element)
	}
	return out
}

// snap tries the four edge-flush positions of each nearby compatible
// neighbour and returns the closest free one within the snap radius
func (c *checker) snap(candidate layout.DesignElement) (layout.PlanCoordinates, bool) {
	x0, y0 := candidate.Position.X, candidate.Position.Y
	w, d := candidate.Dimensions.Width, candidate.Dimensions.Depth

	best := layout.PlanCoordinates{}
	bestDist := math.Inf(1)

	for _, n := range c.neighbours(candidate) {
		nx, ny := n.Position.X, n.Position.Y
		nw, nd := n.Dimensions.Width, n.Dimensions.Depth

		options := [4][2]float64{
			{nx - w, y0},  // against its left edge
			{nx + nw, y0}, // against its right edge
			{x0, ny - d},  // against its top edge
			{x0, ny + nd}, // against its bottom edge
		}

		for _, opt := range options {
			dist := math.Hypot(opt[0]-x0, opt[1]-y0)
			if dist > c.engine.snapRadius || dist >= bestDist {
				continue
			}
			if c.free(candidate, opt[0], opt[1]) {
				best = layout.PlanCoordinates{X: opt[0], Y: opt[1], Z: candidate.Position.Z}
				bestDist = dist
			}
		}
	}

	return best, !math.IsInf(bestDist, 1)
}

// radial probes the compass directions at growing radii and returns the first free position
func (c *checker) radial(candidate layout.DesignElement) (layout.PlanCoordinates, bool) {
	x0, y0 := candidate.Position.X, candidate.Position.Y
	step, limit := c.engine.radialStep, c.engine.radialMax

	for r := step; r <= limit+1e-9; r += step {
		for _, dir := range compassDirections {
			x, y := x0+dir[0]*r, y0+dir[1]*r
			if c.free(candidate, x, y) {
				return layout.PlanCoordinates{X: x, Y: y, Z: candidate.Position.Z}, true
			}
		}
	}
	return layout.PlanCoordinates{}, false
}
