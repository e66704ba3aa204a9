package view

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func colorVertex(x, y float32, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

func fillTriangle(screen *ebiten.Image, xp, yp [3]float32, clr color.RGBA) {
	vertices := []ebiten.Vertex{
		colorVertex(xp[0], yp[0], clr),
		colorVertex(xp[1], yp[1], clr),
		colorVertex(xp[2], yp[2], clr),
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSub, op)
}

func strokeTriangle(screen *ebiten.Image, xp, yp [3]float32, width float32, clr color.RGBA) {
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		vector.StrokeLine(screen, xp[i], yp[i], xp[j], yp[j], width, clr, true)
	}
}

func drawMarker(screen *ebiten.Image, x, y, radius float32, clr color.RGBA) {
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
}
