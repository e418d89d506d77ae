package layout

// Wall types
const (
	WallFront WallType = "front"
	WallBack  WallType = "back"
	WallLeft  WallType = "left"
	WallRight WallType = "right"
)

// Layer types
const (
	LayerBase      LayerType = "base"
	LayerWall      LayerType = "wall"
	LayerTall      LayerType = "tall"
	LayerFinishing LayerType = "finishing"
)

// Corner positions
const (
	CornerFrontLeft  CornerPosition = "front-left"
	CornerFrontRight CornerPosition = "front-right"
	CornerBackLeft   CornerPosition = "back-left"
	CornerBackRight  CornerPosition = "back-right"
)

// Door sides
const (
	DoorSideLeft  DoorSide = "left"
	DoorSideRight DoorSide = "right"
	DoorSideAuto  DoorSide = "auto"
)

// Component orientations encoded by the -ns / -ew id suffix
const (
	OrientationNone Orientation = ""
	OrientationNS   Orientation = "ns"
	OrientationEW   Orientation = "ew"
)

// Element types with special handling in the core
const (
	ElementTypeCabinet    = "cabinet"
	ElementTypeAppliance  = "appliance"
	ElementTypeCounterTop = "counter-top"
	ElementTypeEndPanel   = "end-panel"
	ElementTypeWindow     = "window"
	ElementTypeDoor       = "door"
	ElementTypeSink       = "sink"
	ElementTypeCornice    = "cornice"
	ElementTypePelmet     = "pelmet"
	ElementTypeWall       = "wall"
)

// Defaults in centimeters
const (
	DefaultWallThickness = 10.0
	DefaultMinHeightCM   = 0.0
	DefaultMaxHeightCM   = 300.0
)
