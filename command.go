package main

import "fmt"

type cmdType int

const (
	cmdInvalid cmdType = iota
	cmdPrint
	cmdQuit
	cmdWrite
	cmdInsert
	cmdAppend
	cmdRemove
	cmdPrintCurrentLine
	cmdPrintWithLineNumber
	cmdMoveUp
	cmdMoveDown
	cmdChange
)

var cmdNames = map[cmdType]string{
	cmdInvalid:             "invalid",
	cmdPrint:               "print",
	cmdQuit:                "quit",
	cmdWrite:               "write",
	cmdInsert:              "insert",
	cmdAppend:              "append",
	cmdRemove:              "remove",
	cmdPrintCurrentLine:    "print current line",
	cmdPrintWithLineNumber: "print with line number",
	cmdMoveUp:              "move up",
	cmdMoveDown:            "move down",
	cmdChange:              "change",
}

func (t cmdType) String() string {
	if s, ok := cmdNames[t]; ok {
		return s
	}
	return fmt.Sprintf("cmdType(%d)", int(t))
}

// Command is the parsed form of one input line. start and end are
// 1-based and inclusive, count is only meaningful for the two motion
// commands. cur and last hold the '.' and '$' values the command was
// resolved against.
type Command struct {
	typ   cmdType
	start int
	end   int
	count int
	cur   int
	last  int
}

func (c Command) hasRange() bool {
	switch c.typ {
	case cmdPrint, cmdPrintWithLineNumber, cmdRemove, cmdChange, cmdInsert, cmdAppend:
		return true
	}
	return false
}

func (c Command) isMotion() bool { return c.typ == cmdMoveUp || c.typ == cmdMoveDown }

func (c Command) String() string {
	switch {
	case c.isMotion():
		return fmt.Sprintf("%s %d", c.typ, c.count)
	case c.hasRange():
		return fmt.Sprintf("%s [%d,%d]", c.typ, c.start, c.end)
	}
	return c.typ.String()
}
