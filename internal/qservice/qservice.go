package qservice

import (
	"image"

	"github.com/kegliz/qplay/internal/logger"
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/renderer"
)

type (
	// ServiceOptions are options for constructing a Service.
	ServiceOptions struct {
		Logger   *logger.Logger
		Store    CircuitStore
		Renderer renderer.Renderer
	}

	// Service builds, stores, renders and evaluates circuits submitted over
	// the HTTP API.
	Service interface {
		// CreateCircuit builds a circuit from spec and stores it, returning
		// its id.
		CreateCircuit(spec CircuitSpec) (string, error)

		// Evaluate returns the stored circuit's exact probability table.
		Evaluate(id string) (map[string]float64, error)

		// RenderCircuit draws the stored circuit's diagram.
		RenderCircuit(id string) (image.Image, error)

		// Get returns the stored circuit itself, for callers (e.g. shot
		// sampling) that need more than the probability table.
		Get(id string) (*circuit.Circuit, error)
	}

	service struct {
		store    CircuitStore
		logger   *logger.Logger
		renderer renderer.Renderer
	}
)

// NewService creates a new Service.
func NewService(opts ServiceOptions) Service {
	if opts.Logger == nil {
		opts.Logger = logger.NewLogger(logger.LoggerOptions{
			Debug: false,
		})
	}
	if opts.Store == nil {
		opts.Store = NewCircuitStore()
	}
	if opts.Renderer == nil {
		opts.Renderer = renderer.NewRenderer(60)
	}
	return &service{
		store:    opts.Store,
		logger:   opts.Logger,
		renderer: opts.Renderer,
	}
}

// CreateCircuit implements Service.
func (s *service) CreateCircuit(spec CircuitSpec) (string, error) {
	s.logger.Debug().Int("qubits", spec.Qubits).Int("gates", len(spec.Gates)).Msg("building circuit")
	c, err := BuildCircuit(spec)
	if err != nil {
		return "", err
	}
	return s.store.Save(c)
}

// Get implements Service.
func (s *service) Get(id string) (*circuit.Circuit, error) {
	return s.store.Get(id)
}

// Evaluate implements Service.
func (s *service) Evaluate(id string) (map[string]float64, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return c.ProbabilityDict(), nil
}

// RenderCircuit implements Service.
func (s *service) RenderCircuit(id string) (image.Image, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(c)
}
