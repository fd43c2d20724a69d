package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	var root = rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), "variants.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListCommand(t *testing.T) {
	var out = runCommand(t, "list")
	assert.Contains(t, out, "ataxx\n")
	assert.Contains(t, out, "chess\n")
}

func TestLoadCommand(t *testing.T) {
	var path = writeConfig(t, "[mini:chess]\nmaxRank = 6\nmaxFile = 6\n")
	var out = runCommand(t, "load", path)
	assert.Contains(t, out, "mini\n")
	assert.Contains(t, out, "chess\n")
}

func TestLoadCommandAppliesFilesInOrder(t *testing.T) {
	var first = writeConfig(t, "[mini:chess]\nmaxRank = 6\nmaxFile = 6\n")
	var second = writeConfig(t, "[micro:mini]\nmaxRank = 5\nmaxFile = 5\n")
	var out = runCommand(t, "load", first, second)
	assert.Contains(t, out, "micro\n")
	assert.Contains(t, out, "mini\n")
}

func TestLoadCommandMissingFile(t *testing.T) {
	var root = rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"load", filepath.Join(t.TempDir(), "missing.ini")})
	require.Error(t, root.Execute())
}

func TestOptionsCommand(t *testing.T) {
	var out = runCommand(t, "options")
	assert.Contains(t, out, "option name Threads type spin default 1 min 1 max 128\n")
	assert.Contains(t, out, "option name Hash type spin default 128 min 1 max 65536\n")
	assert.Contains(t, out, "option name Ponder type check default false\n")
	assert.Contains(t, out, "option name EvalFile type string default \n")
	assert.Contains(t, out, "option name UCI_Variant type combo default chess")
	assert.Contains(t, out, " var flipello")
}

func TestOptionsCommandWithVariantsFile(t *testing.T) {
	var path = writeConfig(t, "[mini:chess]\nmaxRank = 6\nmaxFile = 6\n")
	var out = runCommand(t, "options", "--variants-file", path)
	assert.Contains(t, out, " var mini")
	assert.Contains(t, out, "option name VariantPath type string default "+path+"\n")
}
