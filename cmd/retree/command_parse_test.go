package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testContext(t *testing.T) *Context {
	t.Helper()

	return &Context{
		Config: filepath.Join(t.TempDir(), "retree.yaml"),
		Quiet:  true,
	}
}

func TestParseCmdWritesTextDump(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.txt")
	cmd := &ParseCmd{Expr: "a+b", Output: out}

	assert.NoError(t, cmd.Run(testContext(t)))

	data, err := os.ReadFile(out)
	assert.NoError(t, err)

	expected := "RE\n" +
		"-a\n" +
		"-RE'\n" +
		"--+\n" +
		"--RE\n" +
		"---b\n"

	assert.Equal(t, expected, string(data))
}

func TestParseCmdWritesXML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.xml")
	cmd := &ParseCmd{Expr: "a", Output: out, Format: "xml"}

	assert.NoError(t, cmd.Run(testContext(t)))

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `<node label="RE">`)
	assert.Contains(t, string(data), `<node label="a"/>`)
}

func TestParseCmdWritesYAML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.yaml")
	cmd := &ParseCmd{Expr: "a", Output: out, Format: "yaml"}

	assert.NoError(t, cmd.Run(testContext(t)))

	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "label: RE")
}

func TestParseCmdSyntaxErrorIsNotACommandFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.txt")
	cmd := &ParseCmd{Expr: "a)", Output: out}

	// A rejected expression reports "Syntax error" and exits zero
	assert.NoError(t, cmd.Run(testContext(t)))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestParseCmdRejectsUnknownFormat(t *testing.T) {
	cmd := &ParseCmd{Expr: "a", Format: "json"}

	assert.Error(t, cmd.Run(testContext(t)))
}
