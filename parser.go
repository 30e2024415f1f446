package main

import (
	"fmt"
	"log"
)

// rangeCmds are the suffixes accepted after an explicit address.
var rangeCmds = map[rune]cmdType{
	'r': cmdRemove,
	'p': cmdPrint,
	'c': cmdChange,
	'n': cmdPrintWithLineNumber,
}

type parser struct {
	*tokenizer
	cur  int // '.' as captured before parsing
	last int // '$' as captured before parsing
}

// production tries to recognize the whole input. The parser rewinds
// the tokenizer before every attempt.
type production func(p *parser) (Command, bool)

// productions in precedence order, the first one that consumes the
// entire input wins.
var productions = []production{
	(*parser).empty,
	(*parser).single,
	(*parser).motion,
	(*parser).fullRange,
	(*parser).lineRange,
	(*parser).fromCurrent,
	(*parser).toCurrent,
	(*parser).bareRange,
	(*parser).bareNumber,
	(*parser).trailingComma,
	(*parser).insertion,
}

// parseCommand translates one input line into a Command. cur is the
// 1-based current line and last the '$' value, both snapshots taken
// before parsing starts.
func parseCommand(line string, cur, last int) (Command, error) {
	p := &parser{tokenizer: newTokenizer(line), cur: cur, last: last}
	for _, prod := range productions {
		p.reset(0)
		c, ok := prod(p)
		if !ok || !p.eof() {
			continue
		}
		c.cur, c.last = cur, last
		log.Printf("parseCommand(%q): %s\n", line, c)
		return c, nil
	}
	log.Printf("parseCommand(%q): no production matched\n", line)
	return Command{typ: cmdInvalid, cur: cur, last: last}, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
}

func span(typ cmdType, start, end int) (Command, bool) {
	return Command{typ: typ, start: start, end: end}, true
}

func move(typ cmdType, n int) (Command, bool) {
	return Command{typ: typ, count: n}, true
}

// operand scans a line reference: a decimal number, '.' or '$'.
func (p *parser) operand() (int, bool) {
	var tok string
	switch {
	case p.match(".$"):
		tok = string(p.token())
		p.consume()
	case isDigit(p.token()):
		tok = p.scanDigits()
	default:
		return -1, false
	}
	n, err := resolve(tok, p.cur, p.last)
	return n, err == nil
}

// number scans a plain decimal number, markers are not accepted.
func (p *parser) number() (int, bool) {
	if !isDigit(p.token()) {
		return -1, false
	}
	n, err := resolve(p.scanDigits(), p.cur, p.last)
	return n, err == nil
}

func (p *parser) comma() bool {
	if p.token() != ',' {
		return false
	}
	p.consume()
	return true
}

// rangeSuffix consumes one of the range command letters.
func (p *parser) rangeSuffix() (cmdType, bool) {
	typ, ok := rangeCmds[p.token()]
	if ok {
		p.consume()
	}
	return typ, ok
}

func (p *parser) empty() (Command, bool) {
	if !p.eof() {
		return Command{}, false
	}
	return move(cmdMoveDown, 1)
}

func (p *parser) single() (Command, bool) {
	r := p.token()
	p.consume()
	switch r {
	case '=':
		return Command{typ: cmdPrintCurrentLine}, true
	case ',':
		return span(cmdPrint, 1, p.last)
	case '$':
		return span(cmdPrint, p.last, p.last)
	case '.', 'p':
		return span(cmdPrint, p.cur, p.cur)
	case 'n':
		return span(cmdPrintWithLineNumber, p.cur, p.cur)
	case 'c':
		return span(cmdChange, p.cur, p.cur)
	case 'i':
		return span(cmdInsert, p.cur, p.cur)
	case 'a':
		return span(cmdAppend, p.cur, p.cur)
	case 'w':
		return Command{typ: cmdWrite}, true
	case 'q':
		return Command{typ: cmdQuit}, true
	case 'u':
		return move(cmdMoveUp, 1)
	case 'd':
		return move(cmdMoveDown, 1)
	}
	return Command{}, false
}

// motion handles "<n>u" and "<n>d". A second count ("<n>,<m>d") is
// rejected instead of being silently ignored.
func (p *parser) motion() (Command, bool) {
	n, ok := p.number()
	if !ok || p.comma() {
		return Command{}, false
	}
	switch p.token() {
	case 'u':
		p.consume()
		return move(cmdMoveUp, n)
	case 'd':
		p.consume()
		return move(cmdMoveDown, n)
	}
	return Command{}, false
}

func (p *parser) fullRange() (Command, bool) {
	start, ok := p.operand()
	if !ok || !p.comma() {
		return Command{}, false
	}
	end, ok := p.operand()
	if !ok {
		return Command{}, false
	}
	typ, ok := p.rangeSuffix()
	if !ok {
		return Command{}, false
	}
	return span(typ, start, end)
}

func (p *parser) lineRange() (Command, bool) {
	n, ok := p.operand()
	if !ok {
		return Command{}, false
	}
	typ, ok := p.rangeSuffix()
	if !ok {
		return Command{}, false
	}
	return span(typ, n, n)
}

func (p *parser) fromCurrent() (Command, bool) {
	if !p.comma() {
		return Command{}, false
	}
	end, ok := p.operand()
	if !ok {
		return Command{}, false
	}
	typ, ok := p.rangeSuffix()
	if !ok {
		return Command{}, false
	}
	return span(typ, p.cur, end)
}

func (p *parser) toCurrent() (Command, bool) {
	start, ok := p.operand()
	if !ok || !p.comma() {
		return Command{}, false
	}
	typ, ok := p.rangeSuffix()
	if !ok {
		return Command{}, false
	}
	return span(typ, start, p.cur)
}

func (p *parser) bareRange() (Command, bool) {
	start, ok := p.operand()
	if !ok || !p.comma() {
		return Command{}, false
	}
	end, ok := p.operand()
	if !ok {
		return Command{}, false
	}
	return span(cmdPrint, start, end)
}

func (p *parser) bareNumber() (Command, bool) {
	n, ok := p.number()
	if !ok {
		return Command{}, false
	}
	return span(cmdPrint, n, n)
}

func (p *parser) trailingComma() (Command, bool) {
	start, ok := p.operand()
	if !ok || !p.comma() {
		return Command{}, false
	}
	return span(cmdPrint, start, p.cur)
}

// insertion handles "<op>a", "<op>i" and their ",a"/",i" forms. With no
// letter the address only reports the current line.
func (p *parser) insertion() (Command, bool) {
	n, ok := p.operand()
	if !ok {
		return Command{}, false
	}
	p.comma()
	switch p.token() {
	case 'a':
		p.consume()
		return span(cmdAppend, n, n)
	case 'i':
		p.consume()
		return span(cmdInsert, n, n)
	}
	return span(cmdPrintCurrentLine, n, n)
}
