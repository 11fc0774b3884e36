//go:build !linux && !darwin

package terminal

import (
	"errors"
	"io"
	"os"
)

// New is not supported on this platform.
func New(_ *os.File, _ io.Writer, _ int) (*Terminal, error) {
	return nil, errors.ErrUnsupported
}
