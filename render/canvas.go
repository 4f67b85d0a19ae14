// Package render draws a game session onto any Canvas. It knows nothing
// about windows or GPUs; the ebiten-backed canvas lives in the main package.
package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Canvas is a screen-space drawing surface.
type Canvas interface {
	// FillPolygon fills a convex or star-shaped outline given in screen
	// coordinates.
	FillPolygon(points []cp.Vector, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2 float64, clr color.Color)
	DrawText(text string, x, y float64, clr color.Color)
}
