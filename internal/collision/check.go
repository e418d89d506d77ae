package collision

import (
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// checker runs one Check. It caches metadata resolution per component id
// and reports each missing id once.
type checker struct {
	engine  *Engine
	placed  []layout.DesignElement
	meta    map[string]metaEntry
	missing map[string]struct{}
}

type metaEntry struct {
	meta layout.ComponentMetadata
	ok   bool
}

func newChecker(e *Engine, placed []layout.DesignElement) *checker {
	return &checker{
		engine:  e,
		placed:  placed,
		meta:    make(map[string]metaEntry),
		missing: make(map[string]struct{}),
	}
}

func (c *checker) metadata(el layout.DesignElement) (layout.ComponentMetadata, bool) {
	ref := el.Component
	if entry, ok := c.meta[ref.ID]; ok {
		return entry.meta, entry.ok
	}

	m, ok := c.engine.catalog.Metadata(ref)
	c.meta[ref.ID] = metaEntry{meta: m, ok: ok}

	if !ok {
		if _, seen := c.missing[ref.ID]; !seen {
			c.missing[ref.ID] = struct{}{}
			c.engine.logger.Warn("component metadata missing, permitting overlap",
				"component_id", el.ComponentID, "element_id", el.ID)
		}
	}
	return m, ok
}

// conflicts is a single pass over the placed elements
func (c *checker) conflicts(candidate layout.DesignElement) []string {
	ids := []string{}
	for _, other := range c.placed {
		if other.ID == candidate.ID {
			continue
		}
		if c.conflict(candidate, other) {
			ids = append(ids, other.ID)
		}
	}
	return ids
}

func (c *checker) conflict(a, b layout.DesignElement) bool {
	if !footprintsOverlap(a, b) {
		return false
	}

	ma, okA := c.metadata(a)
	mb, okB := c.metadata(b)
	if !okA || !okB {
		return false
	}

	aMin, aMax := ma.HeightRange()
	bMin, bMax := mb.HeightRange()
	if aMin >= bMax || bMin >= aMax {
		return false
	}

	return !ma.AllowsOverlapWith(mb.LayerType) && !mb.AllowsOverlapWith(ma.LayerType)
}

// footprintsOverlap is a strict axis-aligned test; shared edges do not overlap
func footprintsOverlap(a, b layout.DesignElement) bool {
	return a.Position.X < b.Position.X+b.Dimensions.Width &&
		a.Position.X+a.Dimensions.Width > b.Position.X &&
		a.Position.Y < b.Position.Y+b.Dimensions.Depth &&
		a.Position.Y+a.Dimensions.Depth > b.Position.Y
}

// free reports whether the candidate can sit at (x, y)
func (c *checker) free(candidate layout.DesignElement, x, y float64) bool {
	moved := candidate.MoveTo(x, y)
	if !c.engine.inRoom(moved) {
		return false
	}
	for _, other := range c.placed {
		if other.ID == candidate.ID {
			continue
		}
		if c.conflict(moved, other) {
			return false
		}
	}
	return true
}
