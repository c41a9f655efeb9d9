package dataurl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is enough for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestEncode(t *testing.T) {
	url, err := Encode(pngHeader)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("Unexpected data URL prefix: %s", url)
	}

	mediaType, data, err := Decode(url)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("Expected image/png, got %s", mediaType)
	}
	if !bytes.Equal(data, pngHeader) {
		t.Error("Decoded bytes differ from input")
	}
}

func TestEncodeRejectsNonImages(t *testing.T) {
	if _, err := Encode([]byte("hello world")); err == nil {
		t.Error("Plain text should be rejected")
	}
	if _, err := Encode(nil); err == nil {
		t.Error("Empty input should be rejected")
	}
}

func TestEncodeFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logo.png")
	if err := os.WriteFile(path, pngHeader, 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	url, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("Unexpected data URL: %s", url)
	}

	if _, err := EncodeFile(filepath.Join(tmpDir, "missing.png")); err == nil {
		t.Error("Missing file should error")
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{
		"http://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,plain",
		"data:image/png;base64,!!!",
	} {
		if _, _, err := Decode(in); err == nil {
			t.Errorf("Decode(%q) should error", in)
		}
	}
}
