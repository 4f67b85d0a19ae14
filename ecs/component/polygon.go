package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Polygon is the drawable outline of an entity in body-local coordinates.
type Polygon struct {
	Points []cp.Vector
	Color  color.NRGBA
}

var PolygonComponent = NewComponent[Polygon]()
