package render

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
)

const ringSegments = 24

var (
	debugStatic   = color.NRGBA{R: 80, G: 160, B: 255, A: 230}
	debugDynamic  = color.NRGBA{R: 60, G: 255, B: 60, A: 230}
	debugSleeping = color.NRGBA{R: 150, G: 150, B: 150, A: 200}
)

// DrawPhysicsDebug outlines every shape in space as the physics engine sees
// it. Static shapes are blue, awake dynamic shapes green, sleeping ones grey.
// Irregular platforms show their convex hull here.
func DrawPhysicsDebug(c Canvas, space *cp.Space, cameraY float64) {
	if c == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &debugDrawer{canvas: c, cameraY: cameraY})
}

// debugDrawer adapts cp's draw callbacks to a Canvas. Colors come from the
// shape body, not from cp's palette, so only the shape pass is enabled.
type debugDrawer struct {
	canvas  Canvas
	cameraY float64
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, _ cp.FColor, _ interface{}) {
	clr := fromFColor(outline)
	d.ring(pos, radius, clr)
	d.line(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), clr)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, fromFColor(fill))
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, _ cp.FColor, _ interface{}) {
	clr := fromFColor(outline)
	d.line(a, b, clr)
	d.ring(a, radius, clr)
	d.ring(b, radius, clr)
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	if count > len(verts) {
		count = len(verts)
	}
	d.loop(verts[:count], fromFColor(outline))
}

// DrawDot is only used for contact points, which are not enabled.
func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	d.ring(pos, size/2, fromFColor(fill))
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return toFColor(debugDynamic)
}

func (d *debugDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	body := shape.Body()
	switch {
	case body == nil || body.GetType() == cp.BODY_STATIC:
		return toFColor(debugStatic)
	case body.IsSleeping():
		return toFColor(debugSleeping)
	default:
		return toFColor(debugDynamic)
	}
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return toFColor(debugSleeping)
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return toFColor(debugSleeping)
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) line(a, b cp.Vector, clr color.NRGBA) {
	d.canvas.StrokeLine(a.X, a.Y-d.cameraY, b.X, b.Y-d.cameraY, clr)
}

func (d *debugDrawer) loop(points []cp.Vector, clr color.NRGBA) {
	for i, p := range points {
		d.line(p, points[(i+1)%len(points)], clr)
	}
}

func (d *debugDrawer) ring(center cp.Vector, radius float64, clr color.NRGBA) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, ringSegments)
	for i := range points {
		points[i] = center.Add(cp.ForAngle(2 * math.Pi * float64(i) / ringSegments).Mult(radius))
	}
	d.loop(points, clr)
}

func toFColor(c color.NRGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func fromFColor(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(math.Round(common.Clamp(float64(v), 0, 1) * 255))
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
