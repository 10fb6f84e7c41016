package server

import (
	"strings"
	"unicode/utf8"
)

// maxLineBytes caps one command line; input past the cap is ignored
// until the next line break.
const maxLineBytes = 512

// Telnet bytes stripped by the assembler. Raw socket clients never send
// these, but a stock telnet client opens with a burst of option
// negotiation that would otherwise pollute the first password attempt.
const (
	telnetIAC  = 0xff
	telnetWill = 0xfb // WILL, WONT, DO, DONT carry one option byte
	telnetDont = 0xfe
)

// assembler turns raw connection bytes into complete command lines. CR
// or LF finishes a line, and CRLF counts once because the LF then finds
// an empty buffer. Backspace and DEL remove the last rune; remaining
// control bytes are dropped. The zero value is ready to use, and
// partial lines survive across feeds.
type assembler struct {
	buf []byte
	iac int // 1 after IAC, 2 when an option byte is still due
}

// feed consumes one chunk and returns the lines it completed, trimmed,
// in arrival order. Blank lines are swallowed.
func (a *assembler) feed(data []byte) []string {
	var lines []string
	for _, b := range data {
		switch {
		case a.iac == 2:
			a.iac = 0
		case a.iac == 1:
			if b >= telnetWill && b <= telnetDont {
				a.iac = 2
			} else {
				a.iac = 0
			}
		case b == telnetIAC:
			a.iac = 1
		case b == '\r' || b == '\n':
			if line := strings.TrimSpace(string(a.buf)); line != "" {
				lines = append(lines, line)
			}
			a.buf = a.buf[:0]
		case b == '\b' || b == 0x7f:
			if len(a.buf) > 0 {
				_, size := utf8.DecodeLastRune(a.buf)
				a.buf = a.buf[:len(a.buf)-size]
			}
		case b < 0x20:
			// dropped
		case len(a.buf) < maxLineBytes:
			a.buf = append(a.buf, b)
		}
	}
	return lines
}
