// Package terminal implements line capture over a raw-mode terminal.
//
// The terminal delivers single keystrokes with no echo, so this package does
// its own editing: printable keys are appended and echoed (or masked with
// '*'), Backspace erases the last glyph in place, Enter ends the line and every
// other key is ignored. Output uses CRLF line endings because raw mode turns
// off newline translation.
//
// Raw mode itself is process-wide state. RawMode is acquired once per session
// and restored once when the session ends; reads never toggle it.
package terminal
