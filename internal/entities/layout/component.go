package layout

import "strings"

// LayerType is a component's vertical placement category
type LayerType string

// Known reports whether the layer is part of the validated vocabulary
func (l LayerType) Known() bool {
	switch l {
	case LayerBase, LayerWall, LayerTall, LayerFinishing:
		return true
	}
	return false
}

// ParseLayerType normalizes a catalog layer string.
// Unknown values are preserved so permissive checks can still compare them.
func ParseLayerType(s string) (LayerType, bool) {
	l := LayerType(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Known()
}

// Orientation is the directional variant of a component
type Orientation string

// ComponentRef is a component id resolved once at load time.
// "base-cabinet-60-ns" has BaseID "base-cabinet-60" and Orientation ns.
type ComponentRef struct {
	ID          string      `json:"id"`
	BaseID      string      `json:"base_id"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// Oriented reports whether the reference carries a directional suffix
func (r ComponentRef) Oriented() bool {
	return r.Orientation != OrientationNone
}

// ParseComponentRef splits the -ns / -ew orientation suffix from a component id
func ParseComponentRef(id string) ComponentRef {
	ref := ComponentRef{ID: id, BaseID: id}
	lower := strings.ToLower(id)
	for _, o := range []Orientation{OrientationNS, OrientationEW} {
		suffix := "-" + string(o)
		if strings.HasSuffix(lower, suffix) && len(id) > len(suffix) {
			ref.BaseID = id[:len(id)-len(suffix)]
			ref.Orientation = o
			return ref
		}
	}
	return ref
}

// ComponentMetadata describes a catalog component's layer behavior
type ComponentMetadata struct {
	ComponentID      string      `json:"component_id"`
	LayerType        LayerType   `json:"layer_type"`
	MinHeightCM      float64     `json:"min_height_cm"`
	MaxHeightCM      float64     `json:"max_height_cm"`
	CanOverlapLayers []LayerType `json:"can_overlap_layers"`
}

// HeightRange returns the vertical interval the component occupies
func (m ComponentMetadata) HeightRange() (float64, float64) {
	return m.MinHeightCM, m.MaxHeightCM
}

// AllowsOverlapWith reports whether this component may share space with the given layer
func (m ComponentMetadata) AllowsOverlapWith(layer LayerType) bool {
	for _, l := range m.CanOverlapLayers {
		if l == layer {
			return true
		}
	}
	return false
}

// CollisionResult is the verdict for a single placement attempt
type CollisionResult struct {
	IsValid           bool             `json:"is_valid"`
	CollidingElements []string         `json:"colliding_elements"`
	Reason            string           `json:"reason,omitempty"`
	SuggestedPosition *PlanCoordinates `json:"suggested_position,omitempty"`
}
