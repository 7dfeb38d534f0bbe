package terminal

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// KeyCode classifies a decoded keystroke.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
)

// Key is one decoded keystroke. Rune is set only for KeyChar.
type Key struct {
	Code KeyCode
	Rune rune
}

const (
	byteEsc       = 0x1b
	byteDel       = 0x7f
	byteBackspace = 0x08
)

// KeyDecoder turns the raw byte stream of a terminal into keystrokes.
type KeyDecoder struct {
	r *bufio.Reader
}

func NewKeyDecoder(r io.Reader) *KeyDecoder {
	return &KeyDecoder{r: bufio.NewReader(r)}
}

// ReadKey blocks until one full keystroke has been read.
func (d *KeyDecoder) ReadKey() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch {
	case b == '\r':
		// A "\r\n" pair from a non-raw source is a single Enter.
		if d.r.Buffered() > 0 {
			if next, _ := d.r.Peek(1); len(next) == 1 && next[0] == '\n' {
				_, _ = d.r.ReadByte()
			}
		}
		return Key{Code: KeyEnter}, nil
	case b == '\n':
		return Key{Code: KeyEnter}, nil
	case b == byteDel || b == byteBackspace:
		return Key{Code: KeyBackspace}, nil
	case b == byteEsc:
		d.skipEscape()
		return Key{Code: KeyOther}, nil
	case b < 0x20:
		return Key{Code: KeyOther}, nil
	}

	if b < utf8.RuneSelf {
		return Key{Code: KeyChar, Rune: rune(b)}, nil
	}

	_ = d.r.UnreadByte()
	r, size, err := d.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r == utf8.RuneError && size == 1 {
		return Key{Code: KeyOther}, nil
	}
	return Key{Code: KeyChar, Rune: r}, nil
}

// skipEscape consumes the rest of an escape sequence (arrows, function keys,
// Alt+key). A lone ESC with nothing buffered behind it is left as is.
func (d *KeyDecoder) skipEscape() {
	if d.r.Buffered() == 0 {
		return
	}
	next, err := d.r.ReadByte()
	if err != nil {
		return
	}
	switch next {
	case '[':
		// CSI: parameter and intermediate bytes up to a final byte in 0x40..0x7e.
		for d.r.Buffered() > 0 {
			c, err := d.r.ReadByte()
			if err != nil || (c >= 0x40 && c <= 0x7e) {
				return
			}
		}
	case 'O':
		// SS3: exactly one more byte (F1-F4, keypad).
		if d.r.Buffered() > 0 {
			_, _ = d.r.ReadByte()
		}
	default:
		// Alt+key: the key byte was consumed with the ESC.
	}
}
