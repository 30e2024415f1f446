//go:build unix

package main

import (
	"bytes"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleSignals(t *testing.T) {
	var stderr bytes.Buffer
	ed := NewEditor(WithStderr(&stderr), WithPrompt(""), withBuffer(dummy))
	ed.dirty = true

	sigch := make(chan os.Signal, 3)
	sigch <- syscall.SIGINT
	sigch <- syscall.SIGQUIT
	sigch <- syscall.SIGINT
	close(sigch)
	ed.handleSignals(sigch)

	assert.Equal(t, "\ninterrupt\n\ninterrupt\n", stderr.String())
	assert.Equal(t, dummy, ed.lines)
	assert.True(t, ed.dirty)
}
