// Package catalog is the read-only view of component metadata the
// collision engine consults. A Snapshot is built once per check from
// metadata already fetched by the caller, so lookups never block.
package catalog

import (
	"log/slog"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Lookup resolves component metadata by reference
type Lookup interface {
	Metadata(ref layout.ComponentRef) (layout.ComponentMetadata, bool)
}

// Snapshot is an immutable in-memory catalog
type Snapshot struct {
	byID map[string]layout.ComponentMetadata
}

// NewSnapshot indexes metadata by component id. Layer names are normalized
// here; unknown layers are kept and logged since the catalog is incomplete.
func NewSnapshot(entries []layout.ComponentMetadata, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Snapshot{byID: make(map[string]layout.ComponentMetadata, len(entries))}
	for _, m := range entries {
		if m.ComponentID == "" {
			continue
		}
		s.byID[m.ComponentID] = Normalize(m, logger)
	}
	return s
}

// Normalize resolves layer strings and fills a missing height band with the default
func Normalize(m layout.ComponentMetadata, logger *slog.Logger) layout.ComponentMetadata {
	if logger == nil {
		logger = slog.Default()
	}

	layer, known := layout.ParseLayerType(string(m.LayerType))
	if !known && layer != "" {
		logger.Warn("unknown layer type in catalog", "component_id", m.ComponentID, "layer_type", layer)
	}
	m.LayerType = layer

	overlaps := make([]layout.LayerType, 0, len(m.CanOverlapLayers))
	for _, l := range m.CanOverlapLayers {
		parsed, _ := layout.ParseLayerType(string(l))
		if parsed != "" {
			overlaps = append(overlaps, parsed)
		}
	}
	m.CanOverlapLayers = overlaps

	if m.MinHeightCM == 0 && m.MaxHeightCM == 0 {
		m.MinHeightCM, m.MaxHeightCM = layout.DefaultMinHeightCM, layout.DefaultMaxHeightCM
	}
	return m
}

// Metadata looks up the full id first, then the base id of an oriented reference
func (s *Snapshot) Metadata(ref layout.ComponentRef) (layout.ComponentMetadata, bool) {
	if m, ok := s.byID[ref.ID]; ok {
		return m, true
	}
	if ref.Oriented() {
		m, ok := s.byID[ref.BaseID]
		return m, ok
	}
	return layout.ComponentMetadata{}, false
}

// Len returns the number of entries
func (s *Snapshot) Len() int {
	return len(s.byID)
}

// LookupIDs returns the ids to fetch for a set of resolved elements: each
// full id plus the base id of oriented references, deduplicated in
// first-seen order
func LookupIDs(elements ...layout.DesignElement) []string {
	seen := make(map[string]struct{}, len(elements))
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, e := range elements {
		ref := e.Component
		add(ref.ID)
		if ref.Oriented() {
			add(ref.BaseID)
		}
	}
	return ids
}
