package forcelayout

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"
)

type GraphRenderer func(*mat.Dense, interface{}, <-chan struct{}) (*mat.Dense, error) // adjacency to xy coords

var (
	ErrSimulationStopped = errors.New("layout simulation stopped")
	ErrRendererConfig    = errors.New("renderer config must be *RendererConfig or nil")
)

var _ GraphRenderer = Render

type RendererConfig struct {
	// number of steps to run
	Niter int

	// seed for the initial placement; zero seeds from the clock
	Seed int64

	// layout tunables handed to the stepper
	Layout *Config

	Logger *log.Logger
}

// Render adapts CollisionLayout to GraphRenderer. conf must be a
// *RendererConfig or nil.
func Render(matrix *mat.Dense, conf interface{}, stop <-chan struct{}) (*mat.Dense, error) {
	switch c := conf.(type) {
	case nil:
		return CollisionLayout(matrix, stop, nil)
	case *RendererConfig:
		return CollisionLayout(matrix, stop, c)
	default:
		return nil, ErrRendererConfig
	}
}

// CollisionLayout places the vertices of an adjacency matrix at random
// points inside the canvas and steps them Niter times. It returns an n x 2
// matrix of final coordinates, or ErrSimulationStopped if stop fires first.
func CollisionLayout(matrix *mat.Dense, stop <-chan struct{}, conf *RendererConfig) (*mat.Dense, error) {
	// list for the stop chan
	shouldStop := func() bool {
		select {
		case <-stop:
			return true
		default:
			return false
		}
	}

	edges, err := EdgesFromMatrix(matrix, nil)
	if err != nil {
		return nil, err
	}

	if conf == nil {
		conf = &RendererConfig{}
	}
	rc := *conf
	conf = &rc
	if conf.Niter == 0 {
		conf.Niter = 500
	}
	layout := DefaultConfig()
	if conf.Layout != nil {
		c := *conf.Layout
		layout = c.withDefaults()
	}
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	n, _ := matrix.Dims()
	nodes := make([]*Node, n)
	for i, key := range MatrixKeys(n) {
		nodes[i] = &Node{
			Key: key,
			X:   seedCoord(rnd, layout.CanvasWidth),
			Y:   seedCoord(rnd, layout.CanvasHeight),
		}
	}

	stepper, err := NewStepper(nodes, edges, WithConfig(layout), WithLogger(conf.Logger))
	if err != nil {
		return nil, err
	}
	for i := 0; i < conf.Niter; i++ {
		if shouldStop() {
			return nil, ErrSimulationStopped
		}
		if err := stepper.Step(); err != nil {
			return nil, err
		}
	}
	return Positions(stepper.Nodes()), nil
}

// seedCoord picks a whole pixel strictly inside (0, limit).
func seedCoord(rnd *rand.Rand, limit float64) float64 {
	span := int(limit) - 1
	if span < 1 {
		return limit / 2
	}
	return float64(1 + rnd.Intn(span))
}
