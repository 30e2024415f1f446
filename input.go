package main

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineSize bounds a single line read from a file or from the
// command stream.
const maxLineSize = 1 << 20

type input struct {
	*bufio.Scanner
}

func newInput(r io.Reader) input {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return input{Scanner: s}
}

// readLine returns the next raw line. io.EOF marks the end of input,
// any other failure is wrapped in ErrCannotReadInput.
func (i input) readLine() (string, error) {
	if i.Scan() {
		return i.Text(), nil
	}
	if err := i.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCannotReadInput, err)
	}
	return "", io.EOF
}

// readBody collects text for insert and append until a line holding a
// single '.' or the end of input. The terminator is not returned.
func (i input) readBody() ([]string, error) {
	var lines []string
	for {
		ln, err := i.readLine()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		if ln == "." {
			return lines, nil
		}
		lines = append(lines, ln)
	}
}
