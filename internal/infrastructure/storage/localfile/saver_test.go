package localfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesFile(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.Save("report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content: %q", data)
	}
	if filepath.Base(path) != "report.pdf" {
		t.Fatalf("unexpected name: %s", path)
	}
}

func TestSaveDoesNotOverwrite(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := s.Save("report.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save("report.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatal(err)
	}

	if second == first {
		t.Fatal("collision must pick a new name")
	}
	if filepath.Base(second) != "report (1).pdf" {
		t.Fatalf("unexpected collision name: %s", second)
	}
	data, _ := os.ReadFile(first)
	if string(data) != "one" {
		t.Fatal("original file was overwritten")
	}
}

func TestSaveSanitizesServerNames(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("path escaped the download dir: %s", path)
	}
	if filepath.Base(path) != "passwd" {
		t.Fatalf("unexpected name: %s", path)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"a:b*c.pdf":        "a_b_c.pdf",
		"..":               "document",
		"":                 "document",
		"C:\\temp\\x.pdf":  "x.pdf",
		"  spaced.pdf  ":   "spaced.pdf",
		"plain-report.pdf": "plain-report.pdf",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
