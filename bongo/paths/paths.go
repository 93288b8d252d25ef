package paths

import (
	"github.com/allape/bongocat/bongo/geom"
)

// Design space, everything in this package is authored against it.
const (
	DesignWidth  = 24.86
	DesignHeight = 13.95
	OriginX      = 9.87
	OriginY      = 6.999
)

// Keys
// Candidate key caps for the key-press highlight. The order is fixed, the
// highlighted one is picked at random and never mapped to a physical key.
var Keys = []geom.Path{
	KeySpace,
	KeyD,
	KeyS,
	KeyA,
	KeyR,
	KeyE,
	KeyW,
	KeyQ,
	Key7,
	Key6,
	Key5,
	Key4,
	Key3,
	Key2,
	Key1,
}

// KeyCenters returns the bounding box center of every entry in Keys.
func KeyCenters() []geom.Point {
	centers := make([]geom.Point, len(Keys))
	for i, k := range Keys {
		centers[i] = k.Bounds().Center()
	}
	return centers
}
