package main

import (
	"fmt"
	"log"
	"strconv"
)

// resolve converts an operand token to a 1-based line number. The
// markers '.' and '$' resolve to cur and last, which are captured once
// when the command is built.
func resolve(tok string, cur, last int) (int, error) {
	switch tok {
	case ".":
		return cur, nil
	case "$":
		return last, nil
	case "":
		return -1, ErrInvalidAddress
	}
	for _, r := range tok {
		if !isDigit(r) {
			return -1, ErrInvalidAddress
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return -1, ErrNumberOutOfRange
	}
	log.Printf("resolve(%q) = %d\n", tok, n)
	return n, nil
}

// validate checks the range or count of c against a buffer holding
// size lines. A failed check means the command must not run.
func validate(c Command, size int) error {
	if c.isMotion() {
		if c.count < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidCount, c.count)
		}
		return nil
	}
	if !c.hasRange() {
		return nil
	}
	var bad bool
	switch {
	case c.start > c.end, c.start < 1:
		bad = true
	case size > 0 && c.end > size:
		bad = true
	case size == 0 && (c.start > 1 || c.end > 1):
		bad = true
	}
	if bad {
		log.Printf("validate: %s rejected [%d,%d] size=%d\n", c.typ, c.start, c.end, size)
		return fmt.Errorf("%w [%d, %d]", ErrInvalidRange, c.start, c.end)
	}
	return nil
}
