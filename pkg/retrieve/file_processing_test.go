package retrieve

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one\n", []string{"one\n"}},
		{"one\ntwo", []string{"one\n", "two"}},
		{"\n\n", []string{"\n", "\n"}},
	}
	for _, c := range cases {
		if got := splitLines(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitLines(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReadSingleFileNormalizesNewlines(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"w.py": "a\r\nb\rc\n"})

	r := ReadSingleFile(filepath.Join(dir, "w.py"), zap.NewNop())
	if !r.OK() {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	want := []string{"a\n", "b\n", "c\n"}
	if !reflect.DeepEqual(r.Lines, want) {
		t.Fatalf("Lines = %q, want %q", r.Lines, want)
	}
}

func TestReadSingleFileRejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bin.go")
	if err := os.WriteFile(p, []byte{0xff, 0xfe, 'x', '\n'}, 0o644); err != nil {
		t.Fatal(err)
	}
	r := ReadSingleFile(p, zap.NewNop())
	if !errors.Is(r.Err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", r.Err)
	}
	if r.Lines != nil {
		t.Fatal("failed read must not carry lines")
	}
}

func TestReadFilesSkipsFailuresAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"1.py": "first\n",
		"3.py": "third\n",
	})
	bad := filepath.Join(dir, "2.py")
	if err := os.WriteFile(bad, []byte{0xc3, 0x28}, 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "gone.py")

	paths := []string{filepath.Join(dir, "1.py"), bad, missing, filepath.Join(dir, "3.py")}
	results := ReadFiles(paths, zap.NewNop())
	if len(results) != 4 {
		t.Fatalf("expected a result per file, got %d", len(results))
	}
	if results[1].OK() || results[2].OK() {
		t.Fatal("expected failures for invalid and missing files")
	}
	if !errors.Is(results[2].Err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", results[2].Err)
	}

	got := JoinLines(CombineLines(results))
	if got != "first\nthird\n" {
		t.Fatalf("combined = %q", got)
	}
}

func TestJoinLinesAddsNoSeparator(t *testing.T) {
	if got := JoinLines([]string{"a", "b\n", "c"}); got != "ab\nc" {
		t.Fatalf("JoinLines = %q", got)
	}
}
