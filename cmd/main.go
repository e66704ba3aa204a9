package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/smasonuk/hull3d"
	"github.com/smasonuk/hull3d/pointcloud"
	"github.com/smasonuk/hull3d/view"
	"go.uber.org/zap"
)

const (
	cloudSize = 100

	// lattice points are exactly coplanar with hull faces; rounding must not
	// make them visible
	gridTolerance = 1e-9 * cloudSize
)

type options struct {
	shape     string
	n         int
	seed      uint64
	tolerance float64
	objPath   string
	show      bool
	profile   bool
	debug     bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("hull3d", flag.ContinueOnError)
	fs.StringVar(&o.shape, "shape", "noisy", "point cloud: cube, grid, ball, sphere or noisy")
	fs.IntVar(&o.n, "n", 2000, "number of points")
	fs.Uint64Var(&o.seed, "seed", 1, "random seed")
	fs.Float64Var(&o.tolerance, "tolerance", 0, "visibility tolerance, raised for grid when 0")
	fs.StringVar(&o.objPath, "obj", "", "write the hull to this OBJ file")
	fs.BoolVar(&o.show, "view", false, "animate the build in a window")
	fs.BoolVar(&o.profile, "profile", false, "write a CPU profile")
	fs.BoolVar(&o.debug, "debug", false, "debug logging and per-insertion validation")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.tolerance < 0 {
		return o, errors.Errorf("negative tolerance %g", o.tolerance)
	}
	o.tolerance = toleranceFor(o.shape, o.tolerance)
	return o, nil
}

func toleranceFor(shape string, requested float64) float64 {
	if shape == "grid" && requested == 0 {
		return gridTolerance
	}
	return requested
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(o.debug)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer logger.Sync()

	if o.profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	points, err := makePoints(o.shape, o.n, o.seed)
	if err != nil {
		return err
	}

	opts := []hull3d.Option{
		hull3d.WithTolerance(o.tolerance),
		hull3d.WithValidation(o.debug),
	}

	if o.show {
		return runViewer(points, logger, opts)
	}

	start := time.Now()
	h, err := hull3d.BuildPoints(points, append(opts, hull3d.WithLogger(logger))...)
	if err != nil {
		return errors.Wrap(err, "build hull")
	}
	mv := h.View()
	logger.Info("hull built",
		zap.String("shape", o.shape),
		zap.Int("points", len(points)),
		zap.Float64("tolerance", o.tolerance),
		zap.Int("vertices", mv.VertexCount()),
		zap.Int("faces", mv.FaceCount()),
		zap.Float64("area", mv.SurfaceArea()),
		zap.Float64("volume", mv.Volume()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if o.objPath != "" {
		if err := writeOBJ(o.objPath, mv); err != nil {
			return err
		}
		logger.Info("obj written", zap.String("path", o.objPath))
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func makePoints(shape string, n int, seed uint64) ([]hull3d.Point3d, error) {
	rng := pointcloud.NewRand(seed)
	switch shape {
	case "cube":
		return pointcloud.Cube(cloudSize), nil
	case "grid":
		side := 2
		for side*side*side < n {
			side++
		}
		pts := pointcloud.Grid(side, cloudSize)
		pointcloud.Shuffle(rng, pts)
		return pts, nil
	case "ball":
		return pointcloud.Ball(rng, n, cloudSize), nil
	case "sphere":
		return pointcloud.Sphere(rng, n, cloudSize), nil
	case "noisy":
		return pointcloud.NoisySphere(rng, n, cloudSize, 0.3), nil
	}
	return nil, errors.Errorf("unknown shape %q", shape)
}

func runViewer(points []hull3d.Point3d, logger *zap.Logger, opts []hull3d.Option) error {
	game, err := view.NewGame(points, logger, opts...)
	if err != nil {
		return errors.Wrap(err, "viewer setup")
	}

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("hull3d")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return errors.Wrap(ebiten.RunGame(game), "viewer")
}

func writeOBJ(path string, mv *hull3d.MeshView) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create obj")
	}
	if err := mv.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close obj")
}
