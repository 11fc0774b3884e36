//go:build linux || darwin

package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// New switches the terminal of in to raw mode and returns a frontend that
// reads keys from in and draws to out. The input is read by a background
// goroutine that ends with the process.
func New(in *os.File, out io.Writer, holdFrames int) (*Terminal, error) {
	restore, err := makeRaw(in.Fd())
	if err != nil {
		return nil, fmt.Errorf("enabling raw terminal mode: %w", err)
	}

	t := newTerminal(out, holdFrames)
	t.restore = restore
	if _, err := io.WriteString(out, hideCursor+clearScreen); err != nil {
		_ = restore()
		return nil, fmt.Errorf("preparing screen: %w", err)
	}

	go t.readInput(in)
	return t, nil
}

func makeRaw(fd uintptr) (func() error, error) {
	var original unix.Termios
	if err := termios.Tcgetattr(fd, &original); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	raw := original
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, fmt.Errorf("setting terminal attributes: %w", err)
	}

	return func() error {
		return termios.Tcsetattr(fd, termios.TCSANOW, &original)
	}, nil
}
