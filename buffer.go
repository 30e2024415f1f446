package main

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// buffer holds the lines being edited together with the current line
// (dot, 0-based) and the modified state. Every change goes through the
// methods below; ranges are 1-based, inclusive and already validated.
type buffer struct {
	lines []string
	dot   int
	dirty bool
}

func newBuffer(lines []string) buffer {
	return buffer{lines: lines, dot: max(len(lines)-1, 0)}
}

func (b *buffer) size() int { return len(b.lines) }

// current returns the 1-based current line, the value of '.'.
func (b *buffer) current() int { return b.dot + 1 }

// last returns the value of '$'. An empty buffer still reports line 1
// so that "1a" and "1i" address a brand new file.
func (b *buffer) last() int { return max(len(b.lines), 1) }

func (b *buffer) clamp(i int) int {
	if len(b.lines) == 0 || i < 0 {
		return 0
	}
	return min(i, len(b.lines)-1)
}

// place splices lines in at the 0-based index idx and moves dot to the
// last of them. When lines is empty dot falls back to addr-1.
func (b *buffer) place(idx, addr int, lines []string) {
	if len(lines) == 0 {
		b.dot = b.clamp(addr - 1)
		return
	}
	idx = min(max(idx, 0), len(b.lines))
	b.lines = append(b.lines[:idx], append(lines, b.lines[idx:]...)...)
	b.dot = idx + len(lines) - 1
	b.dirty = true
}

// insert places lines before line at.
func (b *buffer) insert(at int, lines []string) {
	log.Printf("insert %d line(s) before %d\n", len(lines), at)
	b.place(at-1, at, lines)
}

// append places lines after line after.
func (b *buffer) append(after int, lines []string) {
	log.Printf("append %d line(s) after %d\n", len(lines), after)
	b.place(after, after, lines)
}

func (b *buffer) remove(from, to int) error {
	if len(b.lines) == 0 {
		return ErrEmptyBuffer
	}
	tail := to >= len(b.lines)
	b.lines = append(b.lines[:from-1], b.lines[to:]...)
	b.dirty = true
	switch {
	case len(b.lines) == 0:
		b.dot = 0
	case tail:
		b.dot = max(from-2, 0)
	default:
		b.dot = from - 1
	}
	log.Printf("remove [%d,%d]: dot=%d size=%d\n", from, to, b.dot, len(b.lines))
	return nil
}

// print writes the lines from..to to w, optionally numbered, and leaves
// dot on the last line printed.
func (b *buffer) print(w io.Writer, from, to int, numbers bool) error {
	if len(b.lines) == 0 {
		return ErrEmptyBuffer
	}
	for i := from - 1; i < to; i++ {
		var err error
		if numbers {
			_, err = fmt.Fprintf(w, "%d\t%s\n", i+1, b.lines[i])
		} else {
			_, err = fmt.Fprintln(w, b.lines[i])
		}
		if err != nil {
			return err
		}
	}
	b.dot = to - 1
	return nil
}

// substitute replaces every literal occurrence of old with repl in the
// lines from..to. dot lands on the last line that changed; the number
// of changed lines is returned.
func (b *buffer) substitute(from, to int, old, repl string) (int, error) {
	if len(b.lines) == 0 {
		return 0, ErrEmptyBuffer
	}
	if old == "" {
		return 0, ErrNoSearchString
	}
	var n int
	for i := from - 1; i < to; i++ {
		if !strings.Contains(b.lines[i], old) {
			continue
		}
		b.lines[i] = strings.ReplaceAll(b.lines[i], old, repl)
		b.dot = i
		b.dirty = true
		n++
	}
	log.Printf("substitute %q -> %q in [%d,%d]: %d line(s)\n", old, repl, from, to, n)
	return n, nil
}

// moveUp and moveDown shift dot by n lines. A count past the first or
// last line stops there and reports false.
func (b *buffer) moveUp(n int) bool {
	if n > b.dot {
		b.dot = 0
		return false
	}
	b.dot -= n
	return true
}

func (b *buffer) moveDown(n int) bool {
	room := max(len(b.lines)-1-b.dot, 0)
	if n > room {
		b.dot = b.clamp(len(b.lines) - 1)
		return false
	}
	b.dot += n
	return true
}
