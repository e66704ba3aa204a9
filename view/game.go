// Package view animates the incremental hull build with ebiten: one point
// is inserted per tick and the current hull is drawn shaded, with the newest
// vertex highlighted.
package view

import (
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/ease"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/quasilyte/gmath"
	"github.com/smasonuk/hull3d"
	"go.uber.org/zap"
)

const (
	screenWidth  = 800
	screenHeight = 600

	highlightDuration = 600 * time.Millisecond
	spinPerTick       = 0.004
)

var (
	background = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	edgeColor  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	newColor   = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	dark       = color.RGBA{R: 30, G: 60, B: 110, A: 255}
	light      = color.RGBA{R: 120, G: 190, B: 255, A: 255}
	lightDir   = mgl64.Vec3{-0.4, 0.6, -0.7}.Normalize()
)

type Game struct {
	points  []hull3d.Point3d
	simplex [4]int
	next    int
	hull    *hull3d.Hull
	camera  *Camera
	log     *zap.Logger

	paused       bool
	stepsPerTick int
	lastVertex   hull3d.VertexID
	insertedAt   time.Time
	skipped      int
	err          error

	lastX, lastY int
	dragged      bool
}

// NewGame starts from the initial tetrahedron of points; the remaining
// points are inserted while the game runs.
func NewGame(points []hull3d.Point3d, logger *zap.Logger, opts ...hull3d.Option) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	coords := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		coords[i] = p.Vec()
	}
	simplex, err := hull3d.SelectInitialSimplex(coords)
	if err != nil {
		return nil, err
	}

	seed := make([]hull3d.Point3d, 4)
	for i, idx := range simplex {
		seed[i] = points[idx]
	}
	h, err := hull3d.BuildPoints(seed, append(opts, hull3d.WithLogger(logger))...)
	if err != nil {
		return nil, errors.Wrap(err, "build initial tetrahedron")
	}

	lo, hi := bounds(coords)
	center := lo.Add(hi).Mul(0.5)
	extent := hi.Sub(lo).Len()
	if extent == 0 {
		extent = 1
	}

	return &Game{
		points:       points,
		simplex:      simplex,
		hull:         h,
		camera:       NewCamera(center, 2*extent),
		log:          logger,
		stepsPerTick: 1,
		lastVertex:   hull3d.NoVertex,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.stepsPerTick *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.stepsPerTick > 1 {
		g.stepsPerTick /= 2
	}
	g.handleDrag()

	if !g.dragged {
		g.camera.Rotate(spinPerTick, 0)
	}

	if g.paused || g.err != nil {
		return nil
	}
	for i := 0; i < g.stepsPerTick && g.next < len(g.points); i++ {
		g.step()
	}
	return nil
}

func (g *Game) handleDrag() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragged {
			g.camera.Rotate(float64(x-g.lastX)*0.01, float64(y-g.lastY)*0.01)
		}
		g.dragged = true
	} else {
		g.dragged = false
	}
	g.lastX, g.lastY = x, y
}

func (g *Game) step() {
	idx := g.next
	g.next++
	if idx == g.simplex[0] || idx == g.simplex[1] || idx == g.simplex[2] || idx == g.simplex[3] {
		return
	}

	p := g.points[idx]
	inserted, err := g.hull.Insert(p.X, p.Y, p.Z)
	if err != nil {
		g.err = err
		g.log.Error("insert failed", zap.Int("point", idx), zap.Error(err))
		return
	}
	if !inserted {
		g.skipped++
		return
	}

	view := g.hull.View()
	vs := view.Vertices()
	g.lastVertex = vs[len(vs)-1].Index
	g.insertedAt = time.Now()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	view := g.hull.View()
	for _, f := range view.Faces() {
		g.drawFace(screen, view, f)
	}

	if g.lastVertex != hull3d.NoVertex {
		g.drawHighlight(screen, view)
	}

	status := fmt.Sprintf("points %d/%d  vertices %d  faces %d  inside %d  x%d",
		g.next, len(g.points), view.VertexCount(), view.FaceCount(), g.skipped, g.stepsPerTick)
	if g.paused {
		status += "  [paused]"
	}
	if g.err != nil {
		status += "\n" + g.err.Error()
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) drawFace(screen *ebiten.Image, view *hull3d.MeshView, f hull3d.ViewFace) {
	var xp, yp [3]float32
	var cam [3]mgl64.Vec3
	for k, v := range f.Vertices {
		cam[k] = g.camera.ToCamera(view.Position(v))
		x, y, ok := g.camera.Project(cam[k], screenWidth, screenHeight)
		if !ok {
			return
		}
		xp[k], yp[k] = x, y
	}

	// the hull is convex, so culling back faces is enough to get the
	// drawing order right
	n := g.camera.RotateNormal(f.Normal)
	if n.Dot(cam[0]) >= 0 {
		return
	}

	shade := max(0, -n.Dot(lightDir))
	fillTriangle(screen, xp, yp, lerpColor(dark, light, shade))
	strokeTriangle(screen, xp, yp, 1, edgeColor)
}

func (g *Game) drawHighlight(screen *ebiten.Image, view *hull3d.MeshView) {
	t := float64(time.Since(g.insertedAt)) / float64(highlightDuration)
	if t >= 1 {
		return
	}
	x, y, ok := g.camera.Project(g.camera.ToCamera(view.Position(g.lastVertex)), screenWidth, screenHeight)
	if !ok {
		return
	}
	radius := gmath.Lerp(2.0, 9.0, ease.OutCubic(1-t))
	drawMarker(screen, x, y, float32(radius), newColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Err returns the error that stopped the build, if any.
func (g *Game) Err() error {
	return g.err
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(gmath.Lerp(float64(x), float64(y), t))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: 255}
}

func bounds(points []mgl64.Vec3) (lo, hi mgl64.Vec3) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	return lo, hi
}
