package forcelayout

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"
)

// Stepper runs single relaxation steps of a brute force, force-directed
// layout over caller-owned nodes and edges. It borrows both slices for its
// lifetime; adding or removing nodes or edges requires a new Stepper.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	nodes []*Node
	edges []Edge

	// non-nil nodes in caller order, addressed by index
	slots []*Node
	index nodeIndex

	// characteristic spacing, fixed at construction
	k float64

	conf   *Config
	logger *log.Logger
	last   StepStats
}

// StepStats describes the most recent successful step.
type StepStats struct {
	Nodes       int
	Edges       int
	Repelled    int     // ordered pairs inside the cutoff radius
	EjectFactor float64 // factor in effect when the repulsion phase ended
}

type Option func(*Stepper)

// WithConfig sets the layout tunables. Zero-valued fields take defaults and
// conf itself is not modified.
func WithConfig(conf *Config) Option {
	return func(s *Stepper) {
		if conf == nil {
			return
		}
		c := *conf
		s.conf = c.withDefaults()
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Stepper) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStepper indexes nodes and derives k from the canvas area and the
// node count. Edges are not checked until Step.
func NewStepper(nodes []*Node, edges []Edge, opts ...Option) (*Stepper, error) {
	s := &Stepper{
		nodes:  nodes,
		edges:  edges,
		conf:   DefaultConfig(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.conf.Validate(); err != nil {
		return nil, err
	}

	if len(nodes) > 0 {
		s.k = math.Sqrt(s.conf.CanvasWidth * s.conf.CanvasHeight / float64(len(nodes)))
	}

	s.slots = make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			s.slots = append(s.slots, n)
		}
	}
	s.index = buildIndex(s.slots)
	return s, nil
}

// K returns the characteristic spacing, or zero when there are no nodes.
func (s *Stepper) K() float64 {
	return s.k
}

// Nodes returns the node slice the stepper was built with, never nil.
func (s *Stepper) Nodes() []*Node {
	if s.nodes == nil {
		return []*Node{}
	}
	return s.nodes
}

func (s *Stepper) LastStats() StepStats {
	return s.last
}

// Step applies one round of repulsion, attraction and bounded movement.
// If an edge names an unknown node it returns a *MissingNodeError and no
// node is moved.
func (s *Stepper) Step() error {
	pos := make([]r2.Vec, len(s.slots))
	for i, n := range s.slots {
		pos[i] = n.Vec()
	}
	disp := make([]r2.Vec, len(s.slots))

	repelled, eject := s.repulse(pos, disp)
	if err := s.attract(pos, disp); err != nil {
		var missing *MissingNodeError
		if errors.As(err, &missing) {
			s.logger.Warn("cannot find node", "key", missing.Key, "endpoint", missing.Endpoint, "edge", missing.Edge)
		}
		return err
	}
	s.move(pos, disp)

	s.last = StepStats{
		Nodes:       len(s.slots),
		Edges:       len(s.edges),
		Repelled:    repelled,
		EjectFactor: eject,
	}
	s.logger.Debug("layout step", "nodes", s.last.Nodes, "edges", s.last.Edges,
		"repelled", repelled, "eject", eject)
	return nil
}

// repulse accumulates the push of every other node within the cutoff
// radius onto each node. The eject factor is shared by the whole pass: the
// first pair seen inside the near-field radius switches it for every pair
// evaluated afterwards, coincident pairs included.
func (s *Stepper) repulse(pos, disp []r2.Vec) (int, float64) {
	var repelled int
	eject := s.conf.EjectFactor
	k2 := s.k * s.k
	for v := range pos {
		for u := range pos {
			if u == v {
				continue
			}
			d := r2.Sub(pos[v], pos[u])
			dist := euclidean(d.X, d.Y)
			if dist < s.conf.NearFieldRadius {
				eject = s.conf.NearEjectFactor
			}
			if dist > 0 && dist < s.conf.CutoffRadius {
				// unit vector first, so an axis with no separation stays exactly zero
				disp[v].X += d.X / dist * k2 / dist * eject
				disp[v].Y += d.Y / dist * k2 / dist * eject
				repelled++
			}
		}
	}
	return repelled, eject
}

// attract pulls both endpoints of every edge toward each other with a force
// growing with the square of their separation.
func (s *Stepper) attract(pos, disp []r2.Vec) error {
	for e, edge := range s.edges {
		src, ok := s.index[edge.Source]
		if !ok {
			return &MissingNodeError{Key: edge.Source, Endpoint: EndpointSource, Edge: e}
		}
		dst, ok := s.index[edge.Target]
		if !ok {
			return &MissingNodeError{Key: edge.Target, Endpoint: EndpointTarget, Edge: e}
		}
		d := r2.Sub(pos[src], pos[dst])
		f := r2.Scale(euclidean(d.X, d.Y)/s.k*s.conf.CondenseFactor, d)
		disp[src] = r2.Sub(disp[src], f)
		disp[dst] = r2.Add(disp[dst], f)
	}
	return nil
}

// move floors each displacement to whole pixels, clamps it per axis and
// writes the new position back to the node, bouncing off the canvas walls.
func (s *Stepper) move(pos, disp []r2.Vec) {
	maxX := float64(s.conf.MaxDeltaX)
	maxY := float64(s.conf.MaxDeltaY)
	for i, n := range s.slots {
		dx := clamp(math.Floor(disp[i].X), maxX)
		dy := clamp(math.Floor(disp[i].Y), maxY)
		n.X = bounce(pos[i].X, dx, s.conf.CanvasWidth)
		n.Y = bounce(pos[i].Y, dy, s.conf.CanvasHeight)
	}
}

func clamp(d, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, d))
}

// bounce moves p by d, or by -d if that would reach either wall.
func bounce(p, d, limit float64) float64 {
	if p+d >= limit || p+d <= 0 {
		return p - d
	}
	return p + d
}

func euclidean(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
