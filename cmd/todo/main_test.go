package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func TestRun_Help(t *testing.T) {
	chdirTemp(t)
	assert.Equal(t, 0, run([]string{"help"}))
}

func TestRun_BadTheme(t *testing.T) {
	chdirTemp(t)
	assert.Equal(t, 2, run([]string{"-theme", "pink", "help"}))
}

func TestRun_Script(t *testing.T) {
	dir := chdirTemp(t)
	script := filepath.Join(dir, "today.todo")
	logFile := filepath.Join(dir, "todo.log")
	if err := os.WriteFile(script, []byte("add a\nadd b\ndone 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 0, run([]string{"-theme", "mono", "-color", "always", "-log-level", "debug", "-log-file", logFile, "run", script}))

	b, err := os.ReadFile(logFile)
	assert.NoError(t, err)
	assert.Contains(t, string(b), "toggled")
}

func TestRun_ScriptFailure(t *testing.T) {
	dir := chdirTemp(t)
	script := filepath.Join(dir, "bad.todo")
	if err := os.WriteFile(script, []byte("rm 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, run([]string{"run", script}))
}
