package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dmitrijs2005/termvault/internal/common"
)

// MaskChar is echoed in place of each typed character in masked mode.
const MaskChar = '*'

const (
	crlf        = "\r\n"
	clearScreen = "\x1b[2J\x1b[H"
)

// LineReader is the input/output surface used by the menu.
type LineReader interface {
	ReadLine(prompt string, masked bool) (string, error)
	WaitForEnter(message string) error
	Print(text string) error
	Clear() error
}

// Terminal reads keystrokes from in and renders edits to out. It assumes the
// terminal is already in raw mode; see RawMode.
type Terminal struct {
	keys *KeyDecoder
	out  io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{keys: NewKeyDecoder(in), out: out}
}

// ReadLine prints prompt and captures one edited line, blocking until Enter.
// Any read or write failure wraps common.ErrIO.
func (t *Terminal) ReadLine(prompt string, masked bool) (string, error) {
	if err := t.write(prompt); err != nil {
		return "", err
	}

	line := lineBuffer{masked: masked}
	for {
		key, err := t.readKey()
		if err != nil {
			return "", err
		}

		switch key.Code {
		case KeyEnter:
			if err := t.write(crlf); err != nil {
				return "", err
			}
			return line.String(), nil

		case KeyBackspace:
			width, ok := line.pop()
			if !ok || width == 0 {
				continue
			}
			if err := t.write(eraseSeq(width)); err != nil {
				return "", err
			}

		case KeyChar:
			if err := t.write(line.push(key.Rune)); err != nil {
				return "", err
			}
		}
	}
}

// WaitForEnter shows message and blocks until Enter is pressed; other keys
// are swallowed.
func (t *Terminal) WaitForEnter(message string) error {
	if err := t.Print("\n" + message + " (press Enter to continue...)\n"); err != nil {
		return err
	}
	for {
		key, err := t.readKey()
		if err != nil {
			return err
		}
		if key.Code == KeyEnter {
			return nil
		}
	}
}

// Print writes text with every "\n" translated to CRLF.
func (t *Terminal) Print(text string) error {
	return t.write(toCRLF(text))
}

// Clear wipes the screen and moves the cursor to the top-left corner.
func (t *Terminal) Clear() error {
	return t.write(clearScreen)
}

func (t *Terminal) readKey() (Key, error) {
	key, err := t.keys.ReadKey()
	if err != nil {
		return Key{}, fmt.Errorf("%w: read key: %v", common.ErrIO, err)
	}
	return key, nil
}

func (t *Terminal) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("%w: write terminal: %v", common.ErrIO, err)
	}
	return nil
}

// lineBuffer holds the characters typed so far in the active read.
type lineBuffer struct {
	runes  []rune
	masked bool
}

// push appends r and returns the text to echo for it.
func (b *lineBuffer) push(r rune) string {
	b.runes = append(b.runes, r)
	if b.masked {
		return string(MaskChar)
	}
	return string(r)
}

// pop removes the last rune and returns how many columns its echo occupied.
func (b *lineBuffer) pop() (int, bool) {
	if len(b.runes) == 0 {
		return 0, false
	}
	r := b.runes[len(b.runes)-1]
	b.runes = b.runes[:len(b.runes)-1]
	if b.masked {
		return 1, true
	}
	return runewidth.RuneWidth(r), true
}

func (b *lineBuffer) String() string {
	return string(b.runes)
}

// eraseSeq moves the cursor left over width columns, blanks them, and moves back.
func eraseSeq(width int) string {
	return fmt.Sprintf("\x1b[%dD%s\x1b[%dD", width, strings.Repeat(" ", width), width)
}

func toCRLF(s string) string {
	s = strings.ReplaceAll(s, crlf, "\n")
	return strings.ReplaceAll(s, "\n", crlf)
}
