package app

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/qplay/internal/qservice"
	"github.com/kegliz/qplay/qc/circuit"
	"github.com/kegliz/qplay/qc/renderer"
	"github.com/kegliz/qplay/qc/simulator"

	// Import simulators to register them
	_ "github.com/kegliz/qplay/qc/simulator/itsu"
)

// CircuitRequest represents the structure for circuit execution requests
type CircuitRequest struct {
	Circuit qservice.CircuitSpec `json:"circuit"`
	Backend string               `json:"backend"`
	Shots   int                  `json:"shots"`
}

// CircuitResponse represents the structure for circuit execution responses
type CircuitResponse struct {
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	Measurements  map[string]int     `json:"measurements,omitempty"`
	CircuitImage  string             `json:"circuit_image,omitempty"`
	Backend       string             `json:"backend"`
	Shots         int                `json:"shots"`
}

var badRequestErrorMsg = "Bad Request - please contact the administrator"
var internalServerErrorMsg = "Internal Server Error - please contact the administrator"

// RootHandler is the handler for the / endpoint
func (a *appServer) RootHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving root endpoint")

	c.HTML(http.StatusOK, "index.tmpl", gin.H{"title": "Quantum Playground DEV"})
}

// HealthHandler is the handler for the /health endpoint
func (a *appServer) HealthHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

// ExecuteCircuit is the handler for the /api/execute endpoint
func (a *appServer) ExecuteCircuit(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving circuit execution endpoint")

	var req CircuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Validate request
	if req.Circuit.Qubits <= 0 || req.Circuit.Qubits > a.maxQubits {
		l.Error().Int("qubits", req.Circuit.Qubits).Msg("invalid qubit count")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid qubit count (1-%d allowed)", a.maxQubits)})
		return
	}

	if req.Shots <= 0 || req.Shots > 10000 {
		req.Shots = a.defaultShots
	}

	if req.Backend == "" {
		req.Backend = "lazy" // Default backend: sample from the evaluator's own distribution
	}

	// Build circuit from request and evaluate it exactly
	circ, err := qservice.BuildCircuit(req.Circuit)
	if err != nil {
		l.Error().Err(err).Msg("building circuit failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to build circuit: " + err.Error()})
		return
	}
	probs := circ.ProbabilityDict()

	// Also draw shots from the requested backend, as an independent check
	// when the backend isn't the lazy evaluator itself.
	result, err := a.executeCircuit(circ, req.Backend, req.Shots)
	if err != nil {
		l.Error().Err(err).Str("backend", req.Backend).Msg("circuit execution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Circuit execution failed: " + err.Error()})
		return
	}

	// Generate circuit image
	circuitImage, err := a.generateCircuitImage(circ)
	if err != nil {
		l.Warn().Err(err).Msg("failed to generate circuit image")
		// Continue without image - not critical
	}

	// Prepare response
	response := CircuitResponse{
		Probabilities: probs,
		Measurements:  result,
		CircuitImage:  circuitImage,
		Backend:       req.Backend,
		Shots:         req.Shots,
	}

	c.JSON(http.StatusOK, response)
}

// executeCircuit runs the circuit on the specified backend
func (a *appServer) executeCircuit(circ *circuit.Circuit, backend string, shots int) (map[string]int, error) {
	// Create runner for the specified backend
	runner, err := simulator.CreateRunner(backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s runner: %w", backend, err)
	}

	// Create simulator
	sim := simulator.NewSimulator(simulator.SimulatorOptions{
		Shots:  shots,
		Runner: runner,
	})

	// Run simulation
	results, err := sim.RunSerial(circ)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	return results, nil
}

// generateCircuitImage creates a PNG image of the circuit
func (a *appServer) generateCircuitImage(circ *circuit.Circuit) (string, error) {
	// Create renderer
	r := renderer.NewRenderer(60) // 60px grid cells for web display

	// Render circuit to image
	img, err := r.Render(circ)
	if err != nil {
		return "", fmt.Errorf("failed to render circuit: %w", err)
	}

	// Create a buffer to capture the PNG
	var buf bytes.Buffer

	// Encode image as PNG to buffer
	err = png.Encode(&buf, img)
	if err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	// Encode as base64
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return encoded, nil
}

// CreateCircuit is the handler for the /api/qprogs endpoint
func (a *appServer) CreateCircuit(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving qprog creation endpoint")

	var spec qservice.CircuitSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		l.Error().Err(err).Msg("binding json failed")
		c.String(http.StatusBadRequest, badRequestErrorMsg)
		return
	}

	id, err := a.qs.CreateCircuit(spec)
	if err != nil {
		l.Error().Err(err).Msg("saving circuit failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.PureJSON(http.StatusOK, gin.H{"id": id})
}

// RenderCircuit is the handler for the /api/qprogs/:id/img endpoint
func (a *appServer) RenderCircuit(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving rendering circuit img endpoint")
	id := c.Param("id")
	img, err := a.qs.RenderCircuit(id)
	if err != nil {
		l.Error().Err(err).Msg("rendering circuit failed")
		c.String(http.StatusNotFound, err.Error())
		return
	}
	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		l.Error().Err(err).Msg("encoding circuit image failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
