package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New(5, 3, 8, 1, 4)
	var buf bytes.Buffer
	if err := NewPrinter[int](nil).Sideways(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := "│       ┌── 8\n" +
		"│   ┌── 5\n" +
		"└── 4\n" +
		"    │   ┌── 3\n" +
		"    └── 1\n"
	if buf.String() != want {
		t.Errorf("unexpected sideways layout:\n%s\nexpected:\n%s", buf.String(), want)
	}
}

func TestSidewaysIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New(1, 2)
	var buf bytes.Buffer
	if err := NewPrinter[int](&Config{Indent: 2}).Sideways(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := "│ ┌ 2\n└ 1\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestSidewaysColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New("x", "y", "z")
	var plain, colored bytes.Buffer
	NewPrinter[string](&Config{}).Sideways(&plain, tree)
	NewPrinter[string](&Config{Colors: true}).Sideways(&colored, tree)
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("expected no escape sequences without colors")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("expected escape sequences with colors enabled")
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New[int]()
	p := NewPrinter[int](nil)
	var buf bytes.Buffer
	if err := p.Sideways(&buf, tree); err != nil || buf.Len() != 0 {
		t.Errorf("expected no sideways output for empty tree")
	}
	if err := p.Grid(&buf, tree); err != nil || buf.Len() != 0 {
		t.Errorf("expected no grid output for empty tree")
	}
	if Treeprint(tree) != "" {
		t.Errorf("expected empty outline for empty tree")
	}
}

func TestGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New(5, 3, 8, 1, 4)
	var buf bytes.Buffer
	if err := NewPrinter[int](nil).Grid(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := "    4\n" +
		"1     5\n" +
		"  3     8\n"
	if buf.String() != want {
		t.Errorf("unexpected grid layout:\n%s\nexpected:\n%s", buf.String(), want)
	}
}

func TestGridWideLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New("日本", "a", "b")
	var buf bytes.Buffer
	if err := NewPrinter[string](nil).Grid(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := "  b\na   日本\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	tree.Insert("日本語")
	buf.Reset()
	NewPrinter[string](nil).Grid(&buf, tree)
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 4 || lines[2] != "         日本語" {
		t.Errorf("expected third row to be indented by 9 positions, got %q", lines)
	}
}

func TestDisplayWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	p := NewPrinter[string](nil)
	for s, want := range map[string]int{
		"":       0,
		"1":      1,
		"42":     2,
		"-3.5":   4,
		"a":      1,
		"日本":     4,
		"x日本y":   6,
		"12日本34": 8,
	} {
		if w := p.width(s); w != want {
			t.Errorf("expected width(%q) = %d, got %d", s, want, w)
		}
	}
}

func TestTreeprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New(5, 3, 8, 1, 4)
	out := Treeprint(tree)
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "4\n") {
		t.Errorf("expected outline to start with root 4")
	}
	for _, v := range []string{"1", "3", "5", "8"} {
		if strings.Count(out, "── "+v+"\n") != 1 {
			t.Errorf("expected value %s exactly once in outline", v)
		}
	}
	if cnt := strings.Count(out, Placeholder); cnt != 2 {
		t.Errorf("expected 2 placeholders, found %d", cnt)
	}
	if strings.Index(out, "── 1") > strings.Index(out, "── 5") {
		t.Errorf("expected left child 1 to be listed before right child 5")
	}
}

func TestTraversals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	tree := bst.New(5, 3, 8, 1, 4)
	tr := Collect(tree)
	if len(tr.Level) != 5 || tr.Post[4] != 4 || tr.In[0] != 1 {
		t.Errorf("unexpected traversals %v", tr)
	}
	var buf bytes.Buffer
	if err := NewPrinter[int](nil).Traversals(&buf, tree); err != nil {
		t.Fatal(err)
	}
	want := "Level order:  4, 1, 5, 3, 8\n" +
		"Pre order:    4, 1, 3, 5, 8\n" +
		"In order:     1, 3, 4, 5, 8\n" +
		"Post order:   3, 1, 8, 5, 4\n"
	if buf.String() != want {
		t.Errorf("unexpected traversals output:\n%s\nexpected:\n%s", buf.String(), want)
	}
}
