package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"data:image/png;base64,AAAA", 10, "data:imag…"},
		{"héllo wörld", 5, "héll…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if Indent(0) != "" {
		t.Error("Depth 0 should have no indent")
	}
	if Indent(2) != "    " {
		t.Errorf("Expected four spaces, got %q", Indent(2))
	}
}

func TestFileAndDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "namecraft.yml")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Error("FileExists should be true for an existing file")
	}
	if FileExists(filepath.Join(tmpDir, "missing")) {
		t.Error("FileExists should be false for a missing file")
	}
	if !DirExists(tmpDir) {
		t.Error("DirExists should be true for a directory")
	}
	if DirExists(file) {
		t.Error("DirExists should be false for a file")
	}
}
