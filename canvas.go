package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	hudFace       ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenCanvas draws render output onto an ebiten image.
type screenCanvas struct {
	screen *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenCanvas(screen *ebiten.Image) *screenCanvas {
	return &screenCanvas{screen: screen}
}

func (c *screenCanvas) FillPolygon(points []cp.Vector, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.FillRuleNonZero,
		AntiAlias:      true,
	}
	c.screen.DrawTriangles(c.vertices, c.indices, whitePixel(), op)
}

func (c *screenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *screenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.FillCircle(c.screen, float32(x), float32(y), float32(r), clr, true)
}

func (c *screenCanvas) StrokeLine(x1, y1, x2, y2 float64, clr color.Color) {
	vector.StrokeLine(c.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, false)
}

func (c *screenCanvas) DrawText(text string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(c.screen, text, hudFace, op)
}
