package main

import (
	"fmt"
	"log"
	"strings"
)

type cmd func(ed *Editor, c Command) error

var cmds map[cmdType]cmd

func init() {
	cmds = map[cmdType]cmd{
		cmdAppend:              cmdAppendLines,
		cmdChange:              cmdChangeText,
		cmdInsert:              cmdInsertLines,
		cmdMoveDown:            cmdMove,
		cmdMoveUp:              cmdMove,
		cmdPrint:               cmdPrintLines,
		cmdPrintCurrentLine:    cmdLineNumber,
		cmdPrintWithLineNumber: cmdPrintLines,
		cmdQuit:                cmdQuitEditor,
		cmdRemove:              cmdRemoveLines,
		cmdWrite:               cmdWriteFile,
	}
}

// exec validates c against the buffer and runs it.
func (ed *Editor) exec(c Command) error {
	fn, ok := cmds[c.typ]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, c.typ)
	}
	if err := validate(c, ed.size()); err != nil {
		return err
	}
	log.Printf("exec: %s dot=%d size=%d\n", c, ed.dot, ed.size())
	return fn(ed, c)
}

func cmdAppendLines(ed *Editor, c Command) error {
	lines, err := ed.readBody()
	if err != nil {
		return err
	}
	ed.buffer.append(c.end, lines)
	return nil
}

func cmdInsertLines(ed *Editor, c Command) error {
	lines, err := ed.readBody()
	if err != nil {
		return err
	}
	ed.buffer.insert(c.start, lines)
	return nil
}

func cmdRemoveLines(ed *Editor, c Command) error {
	return ed.remove(c.start, c.end)
}

func cmdPrintLines(ed *Editor, c Command) error {
	return ed.print(ed.stdout, c.start, c.end, c.typ == cmdPrintWithLineNumber)
}

func cmdLineNumber(ed *Editor, _ Command) error {
	_, err := fmt.Fprintln(ed.stdout, ed.current())
	return err
}

func cmdChangeText(ed *Editor, c Command) error {
	if ed.size() == 0 {
		return ErrEmptyBuffer
	}
	old, err := ed.ask("change what? ")
	if err != nil {
		return err
	}
	repl, err := ed.ask("    to what? ")
	if err != nil {
		return err
	}
	_, err = ed.substitute(c.start, c.end, old, repl)
	return err
}

func cmdMove(ed *Editor, c Command) error {
	if c.typ == cmdMoveUp {
		if !ed.moveUp(c.count) {
			fmt.Fprintln(ed.stdout, "beginning of file reached")
		}
		return nil
	}
	if !ed.moveDown(c.count) {
		fmt.Fprintln(ed.stdout, "end of file reached")
	}
	return nil
}

func cmdWriteFile(ed *Editor, _ Command) error {
	return ed.write()
}

// write saves the buffer to the current file and clears the modified
// state.
func (ed *Editor) write() error {
	n, err := save(ed.path, ed.lines)
	if err != nil {
		return err
	}
	ed.dirty = false
	if !ed.silent {
		fmt.Fprintf(ed.stdout, "%q %s written\n", ed.path, plural(n, "line"))
	}
	return nil
}

// cmdQuitEditor asks to save a modified buffer until it gets a yes or
// no answer, then signals the end of the session.
func cmdQuitEditor(ed *Editor, _ Command) error {
	for ed.dirty {
		ans, err := ed.ask(fmt.Sprintf("Save changes to %s (y/n)? ", ed.path))
		if err != nil {
			return err
		}
		switch strings.TrimSpace(ans) {
		case "y", "Y":
			if err := ed.write(); err != nil {
				return err
			}
		case "n", "N":
			return errQuit
		default:
			fmt.Fprintln(ed.stdout, "Only 'y' and 'n' are valid responses.")
		}
	}
	return errQuit
}
