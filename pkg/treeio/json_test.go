package treeio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/arbor/pkg/tree"
)

func buildTree(t *testing.T) *tree.Node {
	t.Helper()
	root, err := tree.New("R")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range []string{"A", "B"} {
		n, err := tree.New(name)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := root.Add(n); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	c, err := tree.NewWithContent("C", map[string]any{"weight": 3.5})
	if err != nil {
		t.Fatalf("NewWithContent: %v", err)
	}
	if err := root.ChildByName("A").Add(c); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return root
}

func preorder(root *tree.Node) []string {
	var out []string
	for n := range root.All() {
		out = append(out, n.Name())
	}
	return out
}

func TestWriteReadJSON(t *testing.T) {
	root := buildTree(t)

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got, want := preorder(back), preorder(root); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("shape = %v, want %v", got, want)
	}
	if v, ok := back.FindPath("A/C").Content(); !ok || v.(map[string]any)["weight"] != 3.5 {
		t.Errorf("content = (%v, %v)", v, ok)
	}
}

func TestWriteReadFlat(t *testing.T) {
	root := buildTree(t)

	var buf bytes.Buffer
	if err := WriteFlat(root, &buf); err != nil {
		t.Fatalf("WriteFlat: %v", err)
	}

	back, err := ReadFlat(&buf)
	if err != nil {
		t.Fatalf("ReadFlat: %v", err)
	}
	if got, want := preorder(back), preorder(root); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("shape = %v, want %v", got, want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Malformed", `{`},
		{"MissingName", `{"children":[]}`},
		{"SiblingCollision", `{"name":"R","children":[{"name":"A"},{"name":"A"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadFlatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Malformed", `[`},
		{"Empty", `[]`},
		{"OrphanRecord", `[{"name":"R"},{"name":"X","parent":"nope"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadFlat(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	root := buildTree(t)
	dir := t.TempDir()

	for _, name := range []string{"tree.json", "tree.flat.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportFile(root, path); err != nil {
				t.Fatalf("ExportFile: %v", err)
			}
			back, err := ImportFile(path)
			if err != nil {
				t.Fatalf("ImportFile: %v", err)
			}
			if got, want := preorder(back), preorder(root); strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("shape = %v, want %v", got, want)
			}
		})
	}

	if _, err := ImportFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ImportFile(missing) = %v, want not-exist", err)
	}
}

func TestDetectFormat(t *testing.T) {
	if DetectFormat("x.flat.json") != FormatFlat {
		t.Error("flat extension not detected")
	}
	if DetectFormat("x.json") != FormatNested {
		t.Error("nested extension not detected")
	}
}

func TestParseFormat(t *testing.T) {
	for s, want := range map[string]Format{"": FormatNested, "nested": FormatNested, "flat": FormatFlat} {
		got, err := ParseFormat(s)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = (%v, %v), want %v", s, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
