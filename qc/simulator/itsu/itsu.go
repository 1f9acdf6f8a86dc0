package itsu

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"maps"
	"slices"

	"github.com/itsubaki/q"
	"github.com/kegliz/qplay/internal/logger"
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/gate"
	"github.com/kegliz/qplay/qc/simulator"
	"github.com/rs/zerolog"
)

// ItsuOneShotRunner is an independent statevector re-implementation of the
// lazy evaluator, built on github.com/itsubaki/q, used to cross-check
// circuit.Circuit's results: the two simulators share no code, so agreement
// between them is evidence neither has a systematic bug.
type ItsuOneShotRunner struct {
	log     logger.Logger
	config  map[string]interface{}
	mu      sync.RWMutex
	metrics ItsuMetrics
}

type ItsuMetrics struct {
	totalExecutions atomic.Int64
	successfulRuns  atomic.Int64
	failedRuns      atomic.Int64
	totalTime       atomic.Int64 // nanoseconds
	lastError       atomic.Value // string
	lastRunTime     atomic.Value // time.Time
}

// Supported gates for the Itsu backend. A gate outside this set fails
// RunOnce/ValidateCircuit with an explicit error rather than being silently
// skipped.
var supportedGates = []string{"H", "X", "Y", "Z", "S", "CX", "CZ", "CCX", "SWAP"}

func NewItsuOneShotRunner() *ItsuOneShotRunner {
	return &ItsuOneShotRunner{
		log: *logger.NewLogger(logger.LoggerOptions{
			Debug: false,
		}),
		config: make(map[string]any),
	}
}

// BackendProvider implementation
func (s *ItsuOneShotRunner) GetBackendInfo() simulator.BackendInfo {
	return simulator.BackendInfo{
		Name:        "Itsu Quantum Simulator",
		Version:     "v0.0.5",
		Description: "Go-based quantum circuit simulator using github.com/itsubaki/q",
		Vendor:      "itsubaki",
		Capabilities: map[string]bool{
			"context_support":    true,
			"batch_execution":    true,
			"circuit_validation": true,
			"metrics_collection": true,
			"configuration":      true,
			"reset":              true,
		},
		Metadata: map[string]string{
			"backend_type": "statevector_simulator",
			"language":     "go",
			"license":      "MIT",
		},
	}
}

// ConfigurableRunner implementation
func (s *ItsuOneShotRunner) Configure(options map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range options {
		switch key {
		case "verbose":
			if verbose, ok := value.(bool); ok {
				s.SetVerbose(verbose)
				s.config[key] = value
			} else {
				return fmt.Errorf("invalid type for 'verbose' option: expected bool, got %T", value)
			}
		default:
			s.config[key] = value
		}
	}
	return nil
}

func (s *ItsuOneShotRunner) GetConfiguration() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config := make(map[string]any)
	maps.Copy(config, s.config)
	return config
}

func (s *ItsuOneShotRunner) SetVerbose(verbose bool) {
	if verbose {
		s.log.Logger = s.log.Logger.Level(zerolog.DebugLevel)
	} else {
		s.log.Logger = s.log.Logger.Level(zerolog.InfoLevel)
	}
}

func (s *ItsuOneShotRunner) RunOnce(c *circuit.Circuit) (string, error) {
	start := time.Now()
	defer func() {
		s.metrics.totalExecutions.Add(1)
		s.metrics.totalTime.Add(int64(time.Since(start)))
		s.metrics.lastRunTime.Store(start)
	}()

	sim := q.New()
	result, err := runOnce(sim, c)

	if err != nil {
		s.metrics.failedRuns.Add(1)
		s.metrics.lastError.Store(err.Error())
	} else {
		s.metrics.successfulRuns.Add(1)
	}

	return result, err
}

// runOnce replays c's gate list once on sim, then measures every qubit and
// returns the collapsed classical bit-string, qubit 0 first (matching
// circuit.Circuit's own bit-string convention).
func runOnce(sim *q.Q, c *circuit.Circuit) (string, error) {
	qs := sim.ZeroWith(c.Qubits())

	for i, g := range c.Gates() {
		if err := applyGate(sim, qs, g); err != nil {
			return "", fmt.Errorf("itsu: op %d: %w", i, err)
		}
	}

	bits := make([]byte, c.Qubits())
	for i, qubit := range qs {
		m := sim.Measure(qubit)
		if m.IsOne() {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits), nil
}

func applyGate(sim *q.Q, qs []q.Qubit, g gate.Gate) error {
	switch g.Kind() {
	case gate.Single:
		switch g.Name() {
		case "H":
			sim.H(qs[g.Target()])
		case "X":
			sim.X(qs[g.Target()])
		case "Y":
			sim.Y(qs[g.Target()])
		case "Z":
			sim.Z(qs[g.Target()])
		case "S":
			sim.S(qs[g.Target()])
		default:
			return fmt.Errorf("unsupported gate %s", g.Name())
		}
	case gate.Controlled:
		switch g.Name() {
		case "CX":
			sim.CNOT(qs[g.Control()], qs[g.Target()])
		case "CZ":
			sim.CZ(qs[g.Control()], qs[g.Target()])
		default:
			return fmt.Errorf("unsupported gate %s", g.Name())
		}
	case gate.DoubleControlled:
		if g.Name() != "CCX" {
			return fmt.Errorf("unsupported gate %s", g.Name())
		}
		sim.Toffoli(qs[g.Control()], qs[g.Control2()], qs[g.Target()])
	case gate.SwapKind:
		a, b := g.SwapQubits()
		sim.Swap(qs[a], qs[b])
	default:
		return fmt.Errorf("unsupported gate kind %v", g.Kind())
	}
	return nil
}

// ResettableRunner implementation
func (s *ItsuOneShotRunner) Reset() {
	s.metrics.totalExecutions.Store(0)
	s.metrics.successfulRuns.Store(0)
	s.metrics.failedRuns.Store(0)
	s.metrics.totalTime.Store(0)
	s.metrics.lastError.Store("")
	s.metrics.lastRunTime.Store(time.Time{})
}

// MetricsCollector implementation
func (s *ItsuOneShotRunner) GetMetrics() simulator.ExecutionMetrics {
	totalExec := s.metrics.totalExecutions.Load()
	totalTimeNs := s.metrics.totalTime.Load()

	var avgTime time.Duration
	if totalExec > 0 {
		avgTime = time.Duration(totalTimeNs / totalExec)
	}

	lastErr, _ := s.metrics.lastError.Load().(string)
	lastRun, _ := s.metrics.lastRunTime.Load().(time.Time)

	return simulator.ExecutionMetrics{
		TotalExecutions: totalExec,
		SuccessfulRuns:  s.metrics.successfulRuns.Load(),
		FailedRuns:      s.metrics.failedRuns.Load(),
		AverageTime:     avgTime,
		TotalTime:       time.Duration(totalTimeNs),
		LastError:       lastErr,
		LastRunTime:     lastRun,
	}
}

func (s *ItsuOneShotRunner) ResetMetrics() {
	s.Reset()
}

// ValidatingRunner implementation
func (s *ItsuOneShotRunner) ValidateCircuit(c *circuit.Circuit) error {
	for i, g := range c.Gates() {
		if !slices.Contains(supportedGates, g.Name()) {
			return fmt.Errorf("itsu: unsupported gate %s at operation %d", g.Name(), i)
		}
		for _, q := range g.Qubits() {
			if q < 0 || q >= c.Qubits() {
				return fmt.Errorf("itsu: invalid qubit index %d for gate %s (op %d)", q, g.Name(), i)
			}
		}
	}
	return nil
}

func (s *ItsuOneShotRunner) GetSupportedGates() []string {
	gates := make([]string, len(supportedGates))
	copy(gates, supportedGates)
	return gates
}

// ContextualRunner implementation
func (s *ItsuOneShotRunner) RunOnceWithContext(ctx context.Context, c *circuit.Circuit) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	start := time.Now()
	defer func() {
		s.metrics.totalExecutions.Add(1)
		s.metrics.totalTime.Add(int64(time.Since(start)))
		s.metrics.lastRunTime.Store(start)
	}()

	resultChan := make(chan struct {
		result string
		err    error
	}, 1)

	go func() {
		sim := q.New()
		result, err := runOnce(sim, c)
		resultChan <- struct {
			result string
			err    error
		}{result, err}
	}()

	select {
	case <-ctx.Done():
		s.metrics.failedRuns.Add(1)
		s.metrics.lastError.Store(ctx.Err().Error())
		return "", ctx.Err()
	case res := <-resultChan:
		if res.err != nil {
			s.metrics.failedRuns.Add(1)
			s.metrics.lastError.Store(res.err.Error())
		} else {
			s.metrics.successfulRuns.Add(1)
		}
		return res.result, res.err
	}
}

// BatchRunner implementation
func (s *ItsuOneShotRunner) RunBatch(c *circuit.Circuit, shots int) ([]string, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}

	results := make([]string, shots)
	for i := range shots {
		result, err := s.RunOnce(c)
		if err != nil {
			return results[:i], fmt.Errorf("batch execution failed at shot %d: %w", i+1, err)
		}
		results[i] = result
	}
	return results, nil
}

// Register the Itsu runner with the plugin system
func init() {
	simulator.MustRegisterRunner("itsu", func() simulator.OneShotRunner {
		return NewItsuOneShotRunner()
	})
	simulator.MustRegisterRunner("itsubaki", func() simulator.OneShotRunner {
		return NewItsuOneShotRunner()
	})
}

// check that ItsuOneShotRunner implements the OneShotRunner interface
var _ simulator.OneShotRunner = (*ItsuOneShotRunner)(nil)
