package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriteReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewFile(path, nil).Write("print(1)\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "print(1)\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestFileWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := NewFile(path, nil).Write("x"); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

var (
	_ Writer = (*Clipboard)(nil)
	_ Writer = (*File)(nil)
)
