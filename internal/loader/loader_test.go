package loader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("# Title\nbody"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "# Title\nbody" {
		t.Errorf("text = %q", text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for non-UTF-8 input")
	}
}

func TestLoadStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.md")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfhello"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "hello" {
		t.Errorf("text = %q, want %q", text, "hello")
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote *doc*"))
	}))
	defer srv.Close()

	text, err := Load(srv.URL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "remote *doc*" {
		t.Errorf("text = %q", text)
	}
}

func TestLoadURLNon200(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := Load(srv.URL); err == nil {
		t.Error("expected an error for a 404 response")
	}
}

func TestRead(t *testing.T) {
	text, err := Read(strings.NewReader("from a stream"), "stdin")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "from a stream" {
		t.Errorf("text = %q", text)
	}
}
