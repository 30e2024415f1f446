package main

import (
	"strings"
	"unicode/utf8"
)

// EOF symbolizes the end of the command text. Its value has no meaning
// beyond being a rune that never occurs in the input.
const EOF rune = -1

// tokenizer is a cursor over a single sanitized command line. Grammar
// productions use mark and reset to rewind after a failed attempt.
type tokenizer struct {
	buf string
	pos int
}

// newTokenizer returns a tokenizer over s with every space and tab
// removed, so whitespace never carries meaning in a command.
func newTokenizer(s string) *tokenizer {
	return &tokenizer{buf: strings.NewReplacer(" ", "", "\t", "").Replace(s)}
}

func (t *tokenizer) eof() bool { return t.pos >= len(t.buf) }

func (t *tokenizer) match(s string) bool { return !t.eof() && strings.ContainsRune(s, t.token()) }

func (t *tokenizer) mark() int { return t.pos }

func (t *tokenizer) reset(pos int) { t.pos = pos }

// token returns the current rune without consuming it, or EOF.
func (t *tokenizer) token() rune {
	if t.eof() {
		return EOF
	}
	tok, _ := utf8.DecodeRuneInString(t.buf[t.pos:])
	return tok
}

func (t *tokenizer) consume() {
	if t.eof() {
		return
	}
	_, n := utf8.DecodeRuneInString(t.buf[t.pos:])
	t.pos += n
}

// scanDigits consumes a run of ASCII digits and returns it.
func (t *tokenizer) scanDigits() string {
	start := t.pos
	for isDigit(t.token()) {
		t.consume()
	}
	return t.buf[start:t.pos]
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
