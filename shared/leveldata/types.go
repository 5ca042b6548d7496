// Package leveldata parses obstacle layouts from TMX files and turns them into
// the object updates a server would send. It has no dependencies on
// ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the sandbox needs from a TMX file. Coordinates are
// world units, one Tiled pixel per unit.
type Level struct {
	Name      string
	Width     int
	Height    int
	Obstacles []Placement
}

// Placement is one obstacle instance from the Obstacles object group.
type Placement struct {
	IDString    string
	X, Y        float64
	Rotation    float64
	Orientation int
	Variation   int
	Scale       float64
	Destroyed   bool
	DoorOffset  int
}
