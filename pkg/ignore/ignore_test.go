package ignore

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		patterns []string
		path     string
		isDir    bool
		want     bool
	}{
		{[]string{"*.pb.go"}, "api/v1/service.pb.go", false, true},
		{[]string{"*.pb.go"}, "api/v1/service.go", false, false},
		{[]string{"vendor"}, "vendor", true, true},
		{[]string{"vendor"}, "third_party/vendor", true, true},
		{[]string{"vendor"}, "vendor/lib/a.go", false, true},
		{[]string{"/vendor"}, "third_party/vendor", true, false},
		{[]string{"/vendor"}, "vendor", true, true},
		{[]string{"build/"}, "build", true, true},
		{[]string{"build/"}, "build", false, false},
		{[]string{"build/"}, "build/out.go", false, true},
		{[]string{"docs/*.go"}, "docs/example.go", false, true},
		{[]string{"docs/*.go"}, "src/docs/example.go", false, false},
		{[]string{"**/testdata"}, "pkg/a/testdata", true, true},
		{[]string{"a/**/b.go"}, "a/b.go", false, true},
		{[]string{"a/**/b.go"}, "a/x/y/b.go", false, true},
		{[]string{"gen/**"}, "gen/x/y.go", false, true},
		{[]string{"file?.py"}, "file1.py", false, true},
		{[]string{"file?.py"}, "file10.py", false, false},
		{[]string{"*.go", "!keep.go"}, "keep.go", false, false},
		{[]string{"*.go", "!keep.go"}, "drop.go", false, true},
		{[]string{"# comment", "", "x.go"}, "x.go", false, true},
		{[]string{`\#hash.go`}, "#hash.go", false, true},
		{[]string{"a+b.go"}, "a+b.go", false, true},
		{[]string{"a+b.go"}, "aab.go", false, false},
	}
	for _, c := range cases {
		m, err := Compile(c.patterns...)
		if err != nil {
			t.Fatalf("Compile(%v): %v", c.patterns, err)
		}
		if got := m.Match(c.path, c.isDir); got != c.want {
			t.Errorf("patterns %v, Match(%q, dir=%v) = %v, want %v", c.patterns, c.path, c.isDir, got, c.want)
		}
	}
}

func TestMatchWithPatternReportsDecidingRule(t *testing.T) {
	m, err := Compile("*.go", "!main.go")
	if err != nil {
		t.Fatal(err)
	}
	ok, p := m.MatchWithPattern("cmd/main.go", false)
	if ok {
		t.Fatal("expected negated pattern to re-include main.go")
	}
	if p == nil || !p.Negate || p.Line != "!main.go" {
		t.Fatalf("unexpected deciding pattern %+v", p)
	}
}

func TestCompileSkipsBlankAndComments(t *testing.T) {
	m, err := Compile("", "   ", "# note", "!", "x")
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 pattern, got %d", m.Len())
	}
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	if m.Match("anything", false) || m.Len() != 0 {
		t.Fatal("nil matcher must match nothing")
	}
}
