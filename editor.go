package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var (
	ErrCannotOpenFile   = errors.New("cannot open input file")
	ErrCannotReadFile   = errors.New("cannot read input file")
	ErrCannotReadInput  = errors.New("cannot read input")
	ErrCannotWriteFile  = errors.New("cannot write file")
	ErrEmptyBuffer      = errors.New("buffer is empty")
	ErrInterrupt        = errors.New("interrupt")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidCount     = errors.New("invalid line count")
	ErrInvalidRange     = errors.New("invalid range")
	ErrNoSearchString   = errors.New("no search string")
	ErrNumberOutOfRange = errors.New("number out of range")
	ErrUnexpectedEOF    = errors.New("unexpected end-of-file")

	// errQuit is returned by the quit command and ends Run.
	errQuit = errors.New("quit")
)

const DefaultPrompt = ":"

type Editor struct {
	buffer
	input

	path   string // file being edited
	prompt string // command prompt, empty disables it
	silent bool   // suppress line count diagnostics
	err    error  // fatal error raised while loading the file

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) {
		ed.stdin = stdin
		ed.input = newInput(stdin)
	}
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

// WithFile sets the file to edit. It is read once every other option
// has been applied.
func WithFile(path string) Option {
	return func(ed *Editor) { ed.path = path }
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		prompt: DefaultPrompt,
	}
	ed.input = newInput(ed.stdin)
	for _, opt := range opts {
		opt(ed)
	}
	if ed.path != "" {
		ed.err = ed.open(ed.path)
	}
	return ed
}

// open loads path into the buffer. A file that cannot be opened is
// reported as a new file and is not an error.
func (ed *Editor) open(path string) error {
	lines, err := load(path)
	if errors.Is(err, ErrCannotOpenFile) {
		log.Printf("open: %v\n", err)
		if !ed.silent {
			fmt.Fprintf(ed.stdout, "Unable to open %s\n", path)
			fmt.Fprintf(ed.stdout, "%q [New File]\n", path)
		}
		ed.buffer = newBuffer(nil)
		return nil
	}
	if err != nil {
		return err
	}
	ed.buffer = newBuffer(lines)
	if !ed.silent {
		fmt.Fprintf(ed.stdout, "%q %s\n", path, plural(len(lines), "line"))
	}
	return nil
}

func (ed *Editor) doPrompt() {
	if ed.prompt != "" {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
}

// ask shows question when prompting is enabled and returns the answer
// typed on the next line.
func (ed *Editor) ask(question string) (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.stdout, question)
	}
	ln, err := ed.readLine()
	if err == io.EOF {
		return "", ErrUnexpectedEOF
	}
	return ln, err
}

func (ed *Editor) errorln(err error) {
	fmt.Fprintln(ed.stderr, err)
	if errors.Is(err, ErrEmptyBuffer) {
		fmt.Fprintln(ed.stderr, "use i or a to add lines, or q to quit")
	}
}

// isFatal reports whether err must end the session.
func isFatal(err error) bool {
	return errors.Is(err, ErrCannotWriteFile) ||
		errors.Is(err, ErrCannotReadFile) ||
		errors.Is(err, ErrCannotReadInput) ||
		errors.Is(err, ErrUnexpectedEOF)
}

func (ed *Editor) run() error {
	ed.doPrompt()
	ln, err := ed.readLine()
	if err == io.EOF {
		if !ed.dirty {
			return errQuit
		}
		return ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	c, err := parseCommand(ln, ed.current(), ed.last())
	if err != nil {
		return err
	}
	return ed.exec(c)
}

// Run reads and executes commands until quit or a fatal error. Quitting
// returns nil; fatal errors are returned to the caller, every other
// error is reported and the session goes on.
func (ed *Editor) Run() error {
	if ed.err != nil {
		return ed.err
	}
	for {
		err := ed.run()
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		case isFatal(err):
			return err
		default:
			ed.errorln(err)
		}
	}
}
