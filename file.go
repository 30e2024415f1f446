package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

// load reads every line of the file at path. A line holding a single
// '.' is ordinary content here, only typed input treats it as a
// terminator.
func load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpenFile, err)
	}
	defer file.Close()
	var lines []string
	s := bufio.NewScanner(file)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotReadFile, err)
	}
	log.Printf("load %s: %d line(s)\n", path, len(lines))
	return lines, nil
}

// save truncates the file at path and writes lines to it, each one
// terminated by a newline. It returns the number of lines written.
func save(path string, lines []string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	w := bufio.NewWriter(file)
	for _, ln := range lines {
		if _, err := w.WriteString(ln + "\n"); err != nil {
			file.Close()
			return 0, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return 0, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	log.Printf("save %s: %d line(s)\n", path, len(lines))
	return len(lines), nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
