package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.False(t, c.GetBool("debug"))
	assert.Equal(t, 8080, c.GetInt("port"))
	assert.Equal(t, 1000, c.GetInt("shots"))
	assert.Equal(t, 10, c.GetInt("max_qubits"))
}

func TestNew_EnvOverride(t *testing.T) {
	os.Setenv("LAZYQ_DEBUG", "true")
	os.Setenv("LAZYQ_MAX_QUBITS", "16")
	defer os.Unsetenv("LAZYQ_DEBUG")
	defer os.Unsetenv("LAZYQ_MAX_QUBITS")

	c := New()

	assert.True(t, c.GetBool("debug"))
	assert.Equal(t, 16, c.GetInt("max_qubits"))
}
