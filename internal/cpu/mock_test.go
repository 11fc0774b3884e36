package cpu

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedRandom is a random source that always returns the same byte.
type fixedRandom struct {
	value byte
	calls int
}

func (r *fixedRandom) Byte() byte {
	r.calls++
	return r.value
}

func newTestCPU(t *testing.T, quirks machine.Quirks, program ...byte) *CPU {
	t.Helper()

	state, err := machine.New(program, quirks)
	assert.NoError(t, err)
	return New(log.NewTestLogger(t), state, &fixedRandom{}, WithTrace(true))
}

func runSteps(t *testing.T, c *CPU, steps int) {
	t.Helper()

	for range steps {
		_, err := c.Step()
		assert.NoError(t, err)
	}
}

// executeWord runs a single instruction word after applying setup to the state.
func executeWord(t *testing.T, quirks machine.Quirks, word uint16, setup func(s *machine.State)) *CPU {
	t.Helper()

	c := newTestCPU(t, quirks, byte(word>>8), byte(word))
	if setup != nil {
		setup(c.State())
	}
	runSteps(t, c, 1)
	return c
}
