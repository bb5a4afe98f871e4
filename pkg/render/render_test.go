package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/arbor/pkg/tree"
)

func sampleTree(t *testing.T) *tree.Node {
	t.Helper()
	root, err := tree.New("root")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, _ := tree.NewWithContent("a", 1)
	b, _ := tree.New("b")
	c, _ := tree.New("c")
	for _, link := range []struct{ parent, child *tree.Node }{
		{root, a}, {a, c}, {root, b},
	} {
		if err := link.parent.Add(link.child); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return root
}

func TestToDOT(t *testing.T) {
	root := sampleTree(t)
	dot := ToDOT(root, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"/root" [label="root"`,
		`"/root/a" [label="a"`,
		`"/root" -> "/root/a";`,
		`"/root/a" -> "/root/a/c";`,
		`"/root" -> "/root/b";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	root := sampleTree(t)
	dot := ToDOT(root, Options{Detailed: true})

	for _, want := range []string{
		"size: 4",    // root label
		"content: 1", // node a carries content
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTInteriorNodesFilled(t *testing.T) {
	root := sampleTree(t)
	dot := ToDOT(root, Options{})

	if !strings.Contains(dot, `"/root" [label="root", fillcolor=lightgrey];`) {
		t.Errorf("interior node not filled:\n%s", dot)
	}
	if strings.Contains(dot, `"/root/b" [label="b", fillcolor=lightgrey];`) {
		t.Errorf("leaf node unexpectedly filled:\n%s", dot)
	}
}

func TestOutline(t *testing.T) {
	root := sampleTree(t)

	got := Outline(root, Options{})
	want := strings.Join([]string{
		"root",
		"├── a",
		"│   └── c",
		"└── b",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Outline:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestOutlineDetailed(t *testing.T) {
	root := sampleTree(t)

	got := Outline(root, Options{Detailed: true})
	if !strings.Contains(got, "a (1)") {
		t.Errorf("detailed outline missing content:\n%s", got)
	}
}

func TestOutlineSingleNode(t *testing.T) {
	root, err := tree.New("solo")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := Outline(root, Options{}), "solo\n"; got != want {
		t.Errorf("Outline: got %q, want %q", got, want)
	}
}
