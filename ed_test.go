package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	ed     *Editor
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newSession(t *testing.T, path, script string, opts ...Option) *session {
	t.Helper()
	s := &session{}
	s.ed = NewEditor(append([]Option{
		WithStdin(strings.NewReader(script)),
		WithStdout(&s.stdout),
		WithStderr(&s.stderr),
		WithPrompt(""),
		WithFile(path),
	}, opts...)...)
	return s
}

// TestSessionNewFile walks through creating a file from scratch.
func TestSessionNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	s := newSession(t, path, "1a\nhello\nworld\n.\n1,2p\nw\nq\n")
	assert.Equal(t, 0, s.ed.size())
	assert.Equal(t, 0, s.ed.dot)

	require.NoError(t, s.ed.Run())
	assert.Equal(t, []string{"hello", "world"}, s.ed.lines)
	assert.Equal(t, 2, s.ed.current())
	assert.Empty(t, s.stderr.String())

	want := fmt.Sprintf("Unable to open %s\n%q [New File]\nhello\nworld\n%q 2 lines written\n", path, path, path)
	assert.Equal(t, want, s.stdout.String())

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(buf))
}

func TestSessionNewFileSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.txt")
	s := newSession(t, path, "a\nhello\n.\nw\nq\n", WithSilent(true))
	require.NoError(t, s.ed.Run())
	assert.Empty(t, s.stdout.String())
	assert.Empty(t, s.stderr.String())
	assert.Equal(t, []string{"hello"}, s.ed.lines)
}

func TestSessionLoad(t *testing.T) {
	path := createDummyFile(t, "load.txt", "A\nB\nC\n")
	s := newSession(t, path, "")
	assert.Equal(t, []string{"A", "B", "C"}, s.ed.lines)
	assert.Equal(t, 2, s.ed.dot)
	assert.Equal(t, fmt.Sprintf("%q 3 lines\n", path), s.stdout.String())

	one := createDummyFile(t, "one.txt", "A\n")
	s = newSession(t, one, "")
	assert.Equal(t, fmt.Sprintf("%q 1 line\n", one), s.stdout.String())

	quiet := newSession(t, path, "", WithSilent(true))
	assert.Empty(t, quiet.stdout.String())
}

func TestSessionChange(t *testing.T) {
	path := createDummyFile(t, "change.txt", "foo bar\nbar baz\n")
	s := newSession(t, path, "1,2c\nbar\nqux\nq\nn\n", WithSilent(true))
	require.NoError(t, s.ed.Run())
	assert.Equal(t, []string{"foo qux", "qux baz"}, s.ed.lines)
	assert.Equal(t, 2, s.ed.current())
}

func TestSessionRemoveToEnd(t *testing.T) {
	path := createDummyFile(t, "remove.txt", "a\nb\nc\n")
	s := newSession(t, path, "2,3r\n", WithSilent(true))
	require.ErrorIs(t, s.ed.Run(), ErrUnexpectedEOF)
	assert.Equal(t, []string{"a"}, s.ed.lines)
	assert.Equal(t, 0, s.ed.dot)
}

func TestSessionLastLine(t *testing.T) {
	path := createDummyFile(t, "last.txt", "a\nb\nc\n")
	s := newSession(t, path, "1\n$\n", WithSilent(true))
	require.NoError(t, s.ed.Run())
	assert.Equal(t, "a\nc\n", s.stdout.String())
	assert.Equal(t, 2, s.ed.dot)
}

func TestSessionEnter(t *testing.T) {
	path := createDummyFile(t, "enter.txt", "a\nb\n")
	s := newSession(t, path, "1\n\n\n=\n", WithSilent(true))
	require.NoError(t, s.ed.Run())
	assert.Equal(t, "a\nend of file reached\n2\n", s.stdout.String())
}

// TestSessionRecoverable checks that bad input is reported and the
// session keeps going.
func TestSessionRecoverable(t *testing.T) {
	path := createDummyFile(t, "errors.txt", "a\nb\n")
	s := newSession(t, path, "x\n3,1p\n3p\n1,$r\np\n=\nq\nn\n", WithSilent(true))
	require.NoError(t, s.ed.Run())
	want := strings.Join([]string{
		`invalid command: "x"`,
		"invalid range [3, 1]",
		"invalid range [3, 3]",
		"buffer is empty",
		"use i or a to add lines, or q to quit",
	}, "\n") + "\n"
	assert.Equal(t, want, s.stderr.String())
	assert.Equal(t, "1\n", s.stdout.String())
}

func TestSessionEOF(t *testing.T) {
	path := createDummyFile(t, "eof.txt", "a\n")
	clean := newSession(t, path, "1p\n", WithSilent(true))
	assert.NoError(t, clean.ed.Run())

	dirty := newSession(t, path, "1r\n", WithSilent(true))
	assert.ErrorIs(t, dirty.ed.Run(), ErrUnexpectedEOF)
}

func TestSessionWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir.txt")
	s := newSession(t, path, "a\nx\n.\nw\np\n")
	err := s.ed.Run()
	require.ErrorIs(t, err, ErrCannotWriteFile)
	assert.Equal(t, []string{"x"}, s.ed.lines)
	assert.True(t, s.ed.dirty)
}

func TestSessionPrompt(t *testing.T) {
	path := createDummyFile(t, "prompt.txt", "a\n")
	s := newSession(t, path, "p\n1r\nq\ny\n", WithPrompt(":"), WithSilent(true))
	require.NoError(t, s.ed.Run())
	assert.Equal(t, fmt.Sprintf(":a\n::Save changes to %s (y/n)? ", path), s.stdout.String())

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, buf)
}
