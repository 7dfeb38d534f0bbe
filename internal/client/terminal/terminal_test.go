package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/termvault/internal/common"
)

const erase1 = "\x1b[1D \x1b[1D"

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine_PlainEditing(t *testing.T) {
	term, out := newTestTerminal("ab\x7fc\r")

	got, err := term.ReadLine("Username: ", false)
	require.NoError(t, err)
	assert.Equal(t, "ac", got)
	assert.Equal(t, "Username: ab"+erase1+"c\r\n", out.String())
}

func TestReadLine_MaskedEditing(t *testing.T) {
	term, out := newTestTerminal("ab\x7fc\r")

	got, err := term.ReadLine("Password: ", true)
	require.NoError(t, err)
	assert.Equal(t, "ac", got)
	assert.Equal(t, "Password: **"+erase1+"*\r\n", out.String())

	echoed := strings.TrimPrefix(out.String(), "Password: ")
	for _, c := range []string{"a", "b", "c"} {
		assert.NotContains(t, echoed, c)
	}
}

func TestReadLine_BackspaceOnEmptyBufferIsNoop(t *testing.T) {
	term, out := newTestTerminal("\x7f\x7fa\x7f\x7f\r")

	got, err := term.ReadLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, "a"+erase1+"\r\n", out.String())
}

func TestReadLine_IgnoresOtherKeys(t *testing.T) {
	term, out := newTestTerminal("a\x1b[A\x01\tb\r")

	got, err := term.ReadLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
	assert.Equal(t, "ab\r\n", out.String())
}

func TestReadLine_WideRuneErasesTwoColumns(t *testing.T) {
	term, out := newTestTerminal("한\x7f\r")

	got, err := term.ReadLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, "한\x1b[2D  \x1b[2D\r\n", out.String())
}

func TestReadLine_MaskedWideRuneErasesOneColumn(t *testing.T) {
	term, out := newTestTerminal("한\x7f\r")

	_, err := term.ReadLine("", true)
	require.NoError(t, err)
	assert.Equal(t, "*"+erase1+"\r\n", out.String())
}

func TestReadLine_ReturnsBufferVerbatim(t *testing.T) {
	term, _ := newTestTerminal("  spaced  \r")

	got, err := term.ReadLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", got)
}

func TestReadLine_ConsecutiveReadsShareInput(t *testing.T) {
	term, _ := newTestTerminal("alice\rs3cret\r")

	user, err := term.ReadLine("u: ", false)
	require.NoError(t, err)
	pass, err := term.ReadLine("p: ", true)
	require.NoError(t, err)

	assert.Equal(t, "alice", user)
	assert.Equal(t, "s3cret", pass)
}

func TestReadLine_EOFIsIOFailure(t *testing.T) {
	term, _ := newTestTerminal("abc")

	_, err := term.ReadLine("", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIO))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadLine_WriteFailureIsIOFailure(t *testing.T) {
	term := New(strings.NewReader("a\r"), failingWriter{})

	_, err := term.ReadLine("prompt", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIO))
}

func TestWaitForEnter_SwallowsOtherKeys(t *testing.T) {
	term, out := newTestTerminal("xyz\x7f\rnext\r")

	require.NoError(t, term.WaitForEnter("Done."))
	assert.Equal(t, "\r\nDone. (press Enter to continue...)\r\n", out.String())

	// Input after the Enter is left for the next read.
	got, err := term.ReadLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestWaitForEnter_EOFIsIOFailure(t *testing.T) {
	term, _ := newTestTerminal("")
	err := term.WaitForEnter("msg")
	assert.True(t, errors.Is(err, common.ErrIO))
}

func TestPrint_UsesCRLF(t *testing.T) {
	term, out := newTestTerminal("")

	require.NoError(t, term.Print("one\ntwo\r\nthree\n"))
	assert.Equal(t, "one\r\ntwo\r\nthree\r\n", out.String())
}

func TestClear(t *testing.T) {
	term, out := newTestTerminal("")

	require.NoError(t, term.Clear())
	assert.Equal(t, "\x1b[2J\x1b[H", out.String())
}
