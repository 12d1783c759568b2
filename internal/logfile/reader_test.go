package logfile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadAllConcatenatesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "# 01.01.2020\n* 10\n")
	b := writeFile(t, dir, "b.md", "* 20\n")

	lines, err := ReadAll(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"# 01.01.2020", "* 10", "* 20"}
	if !slices.Equal(lines, want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}

	// Reversing the argument list reverses the concatenation.
	lines, err = ReadAll(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"* 20", "# 01.01.2020", "* 10"}
	if !slices.Equal(lines, want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
}

func TestReadAllEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.md", "")
	lines, err := ReadAll(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestReadAllMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "* 10\n")
	missing := filepath.Join(dir, "nope.md")

	if _, err := ReadAll(a, missing); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// No partial result either: the failure aborts the whole read.
	lines, err := ReadAll(missing, a)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if lines != nil {
		t.Fatalf("expected nil lines on failure, got %v", lines)
	}
}
