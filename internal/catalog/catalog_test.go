package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/layout-api/internal/catalog"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/testutils"
)

func TestSnapshotLookup(t *testing.T) {
	snap := catalog.NewSnapshot([]layout.ComponentMetadata{
		testutils.Metadata("base-cabinet-60", layout.LayerBase),
		testutils.Metadata("wall-unit-80-ns", layout.LayerWall),
	}, nil)
	assert.Equal(t, 2, snap.Len())

	testCases := []struct {
		id     string
		wantID string
		ok     bool
	}{
		{"base-cabinet-60", "base-cabinet-60", true},
		{"base-cabinet-60-ns", "base-cabinet-60", true},
		{"base-cabinet-60-EW", "base-cabinet-60", true},
		{"wall-unit-80-ns", "wall-unit-80-ns", true},
		{"wall-unit-80-ew", "", false},
		{"tall-larder", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			m, ok := snap.Metadata(layout.ParseComponentRef(tc.id))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.wantID, m.ComponentID)
		})
	}
}

func TestNormalize(t *testing.T) {
	m := catalog.Normalize(layout.ComponentMetadata{
		ComponentID:      "cornice-1",
		LayerType:        " Finishing ",
		CanOverlapLayers: []layout.LayerType{"WALL", "", "plinth"},
	}, nil)

	assert.Equal(t, layout.LayerFinishing, m.LayerType)
	assert.Equal(t, []layout.LayerType{layout.LayerWall, "plinth"}, m.CanOverlapLayers)
	assert.Equal(t, layout.DefaultMinHeightCM, m.MinHeightCM)
	assert.Equal(t, layout.DefaultMaxHeightCM, m.MaxHeightCM)
}

func TestLookupIDs(t *testing.T) {
	ids := catalog.LookupIDs(
		testutils.NewElement("a").WithComponent("base-cabinet-60-ns").Build(),
		testutils.NewElement("b").WithComponent("base-cabinet-60").Build(),
		testutils.NewElement("c").WithComponent("").Build(),
		testutils.NewElement("d").WithComponent("wall-unit-80").Build(),
	)
	assert.Equal(t, []string{"base-cabinet-60-ns", "base-cabinet-60", "wall-unit-80"}, ids)
}

func TestLookupIDsReadsResolvedReference(t *testing.T) {
	e := testutils.NewElement("a").WithComponent("wall-unit-80-ew").Build()
	e.ComponentID = "renamed"

	assert.Equal(t, []string{"wall-unit-80-ew", "wall-unit-80"}, catalog.LookupIDs(e))
}
