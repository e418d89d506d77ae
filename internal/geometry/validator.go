package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Thresholds, in centimeters and degrees
const (
	MinFloorVertices      = 3
	MaxFloorVertices      = 100
	MinEdgeLength         = 1.0
	MinWalls              = 3
	MaxWallHeight         = 500.0
	MaxWallThickness      = 50.0
	WallConnectTolerance  = 0.1
	MinCeilingZones       = 1
	MinCeilingHeight      = 200.0
	MaxCeilingHeight      = 600.0
	MinSlope              = 0.0
	MaxSlope              = 45.0
	BoundingBoxTolerance  = 0.1
	FloorAreaTolerancePct = 1.0
)

// ValidateRoomGeometry runs every check over an authored geometry
func ValidateRoomGeometry(g layout.RoomGeometry) *Report {
	report := NewReport()
	report.Merge(ValidateFloorPolygon(g.Floor.Vertices))
	report.Merge(ValidateWalls(g.Walls))
	report.Merge(ValidateCeiling(g.Ceiling))
	report.Merge(ValidateBoundingBox(g.Floor.Vertices, g.BoundingBox))
	report.Merge(ValidateMetadata(g.Floor.Vertices, g.Metadata))
	return report
}

// ValidateFloorPolygon checks vertex count, duplicates, self-intersection and edge length
func ValidateFloorPolygon(vertices []layout.Point2D) *Report {
	report := NewReport()
	n := len(vertices)

	if n < MinFloorVertices {
		report.AddError("floor.vertices", "floor must have at least %d vertices, got %d", MinFloorVertices, n)
		return report
	}
	if n > MaxFloorVertices {
		report.AddWarning("floor.vertices", "floor has %d vertices, more than %d may slow rendering", n, MaxFloorVertices)
	}

	for i := 1; i < n; i++ {
		if SamePoint(vertices[i-1], vertices[i]) {
			report.AddWarning(fmt.Sprintf("floor.vertices[%d]", i), "duplicate of previous vertex")
		}
	}
	if SamePoint(vertices[0], vertices[n-1]) {
		report.AddWarning(fmt.Sprintf("floor.vertices[%d]", n-1), "closing vertex duplicates the first; polygons are closed implicitly")
	}

	ring := Dedupe(vertices)
	if len(ring) < MinFloorVertices {
		report.AddError("floor.vertices", "floor has only %d distinct vertices", len(ring))
		return report
	}

	for _, pair := range SelfIntersections(ring) {
		report.AddError("floor.vertices", "edge %d intersects edge %d", pair[0], pair[1])
	}

	for i := range ring {
		l := Distance(ring[i], ring[(i+1)%len(ring)])
		if l < MinEdgeLength {
			report.AddWarning(fmt.Sprintf("floor.edges[%d]", i), "edge is %.3g cm long, shorter than %g cm", l, MinEdgeLength)
		}
	}

	return report
}

// ValidateWalls checks wall count, per-wall measurements and end-to-start connectivity
func ValidateWalls(walls []layout.WallSegment) *Report {
	report := NewReport()

	if len(walls) < MinWalls {
		report.AddError("walls", "room must have at least %d walls, got %d", MinWalls, len(walls))
		return report
	}

	for i, w := range walls {
		path := fmt.Sprintf("walls[%d]", i)

		if w.Height <= 0 {
			report.AddError(path+".height", "height must be positive, got %g", w.Height)
		} else if w.Height > MaxWallHeight {
			report.AddWarning(path+".height", "height %g exceeds %g", w.Height, MaxWallHeight)
		}

		if Distance(w.Start, w.End) <= 0 {
			report.AddError(path, "wall has zero length")
		}

		if w.Thickness != nil {
			switch t := *w.Thickness; {
			case t <= 0:
				report.AddError(path+".thickness", "thickness must be positive, got %g", t)
			case t > MaxWallThickness:
				report.AddWarning(path+".thickness", "thickness %g exceeds %g", t, MaxWallThickness)
			}
		}

		next := walls[(i+1)%len(walls)]
		if gap := Distance(w.End, next.Start); gap > WallConnectTolerance {
			report.AddWarning(path+".end", "does not meet the start of walls[%d] (gap %.3g cm)", (i+1)%len(walls), gap)
		}
	}

	return report
}

// ValidateCeiling checks zone count and each zone's outline and height profile
func ValidateCeiling(ceiling layout.Ceiling) *Report {
	report := NewReport()

	if len(ceiling.Zones) < MinCeilingZones {
		report.AddError("ceiling.zones", "ceiling must have at least %d zone", MinCeilingZones)
		return report
	}

	for i, z := range ceiling.Zones {
		path := fmt.Sprintf("ceiling.zones[%d]", i)

		if len(z.Vertices) < 3 {
			report.AddError(path+".vertices", "zone must have at least 3 vertices, got %d", len(z.Vertices))
		}

		if z.Height <= 0 {
			report.AddError(path+".height", "height must be positive, got %g", z.Height)
		} else if z.Height < MinCeilingHeight || z.Height > MaxCeilingHeight {
			report.AddWarning(path+".height", "unusual ceiling height %g, expected %g to %g", z.Height, MinCeilingHeight, MaxCeilingHeight)
		}

		switch z.Type {
		case "", layout.CeilingFlat:
		case layout.CeilingVaulted:
			if z.ApexHeight == nil || *z.ApexHeight <= z.Height {
				report.AddWarning(path+".apex_height", "vaulted zone needs an apex above its height %g", z.Height)
			}
		case layout.CeilingSloped:
			if z.Slope == nil || math.IsNaN(*z.Slope) || *z.Slope < MinSlope || *z.Slope > MaxSlope {
				report.AddWarning(path+".slope", "sloped zone needs a slope between %g and %g degrees", MinSlope, MaxSlope)
			}
		default:
			report.AddWarning(path+".type", "unknown ceiling type %q", z.Type)
		}
	}

	return report
}

// ValidateBoundingBox checks that every floor vertex lies inside the stored box
func ValidateBoundingBox(vertices []layout.Point2D, box layout.BoundingBox) *Report {
	report := NewReport()

	bound := orb.Bound{
		Min: orb.Point{box.MinX, box.MinY},
		Max: orb.Point{box.MaxX, box.MaxY},
	}.Pad(BoundingBoxTolerance)

	for i, v := range vertices {
		if !bound.Contains(orb.Point{v.X, v.Y}) {
			report.AddError(fmt.Sprintf("floor.vertices[%d]", i),
				"vertex (%g, %g) lies outside the bounding box [%g, %g]-[%g, %g]",
				v.X, v.Y, box.MinX, box.MinY, box.MaxX, box.MaxY)
		}
	}

	return report
}

// ValidateMetadata cross-checks the stored floor area against the polygon
func ValidateMetadata(vertices []layout.Point2D, meta layout.GeometryMetadata) *Report {
	report := NewReport()

	computed := PolygonArea(Dedupe(vertices))
	if computed == 0 {
		return report
	}

	drift := math.Abs(meta.TotalFloorArea-computed) / computed * 100
	if drift > FloorAreaTolerancePct {
		report.AddWarning("metadata.total_floor_area",
			"stored area %g differs from computed area %.2f by %.1f%%", meta.TotalFloorArea, computed, drift)
	}

	return report
}

// Bounds returns the axis-aligned extent of the vertices
func Bounds(vertices []layout.Point2D) layout.BoundingBox {
	if len(vertices) == 0 {
		return layout.BoundingBox{}
	}
	mp := make(orb.MultiPoint, len(vertices))
	for i, v := range vertices {
		mp[i] = orb.Point{v.X, v.Y}
	}
	b := mp.Bound()
	return layout.BoundingBox{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}
}
