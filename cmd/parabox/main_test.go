package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLevel = `
version: 1
root: outer
boxes:
  - id: outer
    kind: 1
    children:
      - {cell: [1, 0], box: inner}
  - id: inner
    kind: 2
    children:
      - {cell: [3, 3], box: core}
  - id: core
    kind: 1
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flags.level = ""
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheckPrintsTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(testLevel), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "check", path)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	want := []string{
		"grid 4x4, 3 boxes",
		"box 1 kind 1 swatch 4/2",
		"  [1] (1,0) box 2 kind 2 swatch 6/1",
		"    [15] (3,3) box 3 kind 1 swatch 4/2",
		"actor 8x8 cells of 20px",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestCheckBuiltIn(t *testing.T) {
	out, err := execute(t, "check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[15] (3,3) box 2 kind 2") {
		t.Errorf("built-in tree:\n%s", out)
	}
}

func TestCheckRejectsCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	data := "version: 1\nroot: a\nboxes: [{id: a, kind: 1, children: [{cell: [0,0], box: b}]}, {id: b, kind: 2, children: [{cell: [0,0], box: a}]}]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "check", path); err == nil || !strings.Contains(err.Error(), "cyclic") {
		t.Errorf("err = %v, want cyclic containment", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=shown k=1") {
		t.Errorf("log output = %q", buf.String())
	}
	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("unknown level should fail")
	}
}
