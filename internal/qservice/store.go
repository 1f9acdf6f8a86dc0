package qservice

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/kegliz/qplay/qc/circuit"
)

type (
	// CircuitStore saves built circuits and hands them back by id.
	CircuitStore interface {
		Save(c *circuit.Circuit) (string, error)
		Get(id string) (*circuit.Circuit, error)
	}

	// circuitStore is an in-memory CircuitStore.
	circuitStore struct {
		circuits map[string]*circuit.Circuit
		sync.RWMutex
	}
)

// NewCircuitStore creates a new in-memory circuit store.
func NewCircuitStore() CircuitStore {
	return &circuitStore{
		circuits: make(map[string]*circuit.Circuit),
	}
}

// Save implements CircuitStore.
func (cs *circuitStore) Save(c *circuit.Circuit) (string, error) {
	id := uuid.New().String()
	cs.Lock()
	cs.circuits[id] = c
	cs.Unlock()
	return id, nil
}

// Get implements CircuitStore.
func (cs *circuitStore) Get(id string) (*circuit.Circuit, error) {
	cs.RLock()
	c, ok := cs.circuits[id]
	cs.RUnlock()
	if !ok {
		return nil, fmt.Errorf("circuit with id %s not found", id)
	}
	return c, nil
}
