package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/dmitrijs2005/termvault/internal/common"
)

func stubTerm(t *testing.T, tty bool, rawErr, restoreErr error) *int {
	t.Helper()
	origIs, origRaw, origRestore := isTerminal, makeRaw, restoreTerm
	t.Cleanup(func() {
		isTerminal, makeRaw, restoreTerm = origIs, origRaw, origRestore
	})

	restores := 0
	isTerminal = func(int) bool { return tty }
	makeRaw = func(int) (*term.State, error) {
		if rawErr != nil {
			return nil, rawErr
		}
		return &term.State{}, nil
	}
	restoreTerm = func(int, *term.State) error {
		restores++
		return restoreErr
	}
	return &restores
}

func TestEnableRawMode_RestoreRunsOnce(t *testing.T) {
	restores := stubTerm(t, true, nil, nil)

	m, err := EnableRawMode(0)
	require.NoError(t, err)

	require.NoError(t, m.Restore())
	require.NoError(t, m.Restore())
	assert.Equal(t, 1, *restores)
}

func TestEnableRawMode_NotATerminal(t *testing.T) {
	stubTerm(t, false, nil, nil)

	m, err := EnableRawMode(0)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestEnableRawMode_MakeRawFailure(t *testing.T) {
	stubTerm(t, true, errors.New("ioctl"), nil)

	_, err := EnableRawMode(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIO))
}

func TestRestore_ErrorIsStable(t *testing.T) {
	restores := stubTerm(t, true, nil, errors.New("ioctl"))

	m, err := EnableRawMode(0)
	require.NoError(t, err)

	first := m.Restore()
	second := m.Restore()
	require.Error(t, first)
	assert.True(t, errors.Is(first, common.ErrIO))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, *restores)
}

func TestRestore_NilGuard(t *testing.T) {
	var m *RawMode
	assert.NoError(t, m.Restore())
}
