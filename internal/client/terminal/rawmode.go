package terminal

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/term"

	"github.com/dmitrijs2005/termvault/internal/common"
)

// Test seams for the x/term calls that touch the real terminal.
var (
	makeRaw     = term.MakeRaw
	restoreTerm = term.Restore
	isTerminal  = term.IsTerminal
)

// ErrNotTerminal is returned by EnableRawMode when fd is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// RawMode is the session-scoped guard for raw terminal mode.
type RawMode struct {
	fd    int
	state *term.State

	once sync.Once
	err  error
}

// EnableRawMode switches fd into raw mode and returns the guard that undoes it.
func EnableRawMode(fd int) (*RawMode, error) {
	if !isTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := makeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: enable raw mode: %v", common.ErrIO, err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore puts the terminal back into the mode it had before EnableRawMode.
// Only the first call has an effect; later calls return the same result.
func (m *RawMode) Restore() error {
	if m == nil {
		return nil
	}
	m.once.Do(func() {
		if err := restoreTerm(m.fd, m.state); err != nil {
			m.err = fmt.Errorf("%w: restore terminal: %v", common.ErrIO, err)
		}
	})
	return m.err
}
