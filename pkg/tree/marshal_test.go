package tree

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func contentTree(t *testing.T) *Node {
	t.Helper()
	r, err := NewWithContent("R", map[string]any{"kind": "root"})
	if err != nil {
		t.Fatalf("NewWithContent: %v", err)
	}
	a := attach(t, r, node(t, "A"))
	if err := a.SetContent("payload"); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	attach(t, r, node(t, "B"))
	attach(t, a, node(t, "C"))
	return r
}

func TestFlatten(t *testing.T) {
	r := contentTree(t)

	records, err := r.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	gotNames := make([]string, len(records))
	for i, rec := range records {
		gotNames[i] = rec.Name
	}
	// pre-order guarantees every parent precedes its children
	if !slices.Equal(gotNames, []string{"R", "A", "C", "B"}) {
		t.Errorf("record order = %v", gotNames)
	}

	parents := map[string]string{}
	for _, rec := range records {
		parents[rec.Name] = rec.Parent
	}
	want := map[string]string{"R": "", "A": "R", "C": "A", "B": "R"}
	for name, parent := range want {
		if parents[name] != parent {
			t.Errorf("parent of %s = %q, want %q", name, parents[name], parent)
		}
	}
}

func TestFlattenDuplicateNames(t *testing.T) {
	// sibling-unique names can still repeat across the tree, which the flat
	// format cannot represent
	r, a, _, _ := fixtureTree(t)
	attach(t, a, node(t, "B"))
	if _, err := r.Flatten(); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Flatten = %v, want ErrDuplicateName", err)
	}
}

func TestBuildRoundTrip(t *testing.T) {
	r := contentTree(t)
	records, err := r.Flatten()
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	rebuilt, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	origSeq := r.All()
	rebuiltNodes := map[string]*Node{}
	for n := range rebuilt.All() {
		rebuiltNodes[n.Name()] = n
	}
	for orig := range origSeq {
		n, ok := rebuiltNodes[orig.Name()]
		if !ok {
			t.Fatalf("node %q missing after round trip", orig.Name())
		}
		origParent, rebuiltParent := "", ""
		if orig.Parent() != nil {
			origParent = orig.Parent().Name()
		}
		if n.Parent() != nil {
			rebuiltParent = n.Parent().Name()
		}
		if origParent != rebuiltParent {
			t.Errorf("parent of %q = %q, want %q", n.Name(), rebuiltParent, origParent)
		}
	}

	// content survives as generic JSON values
	if v, ok := rebuilt.ChildByName("A").Content(); !ok || v != "payload" {
		t.Errorf("content of A = (%v, %v)", v, ok)
	}
	if v, ok := rebuilt.Content(); !ok || v.(map[string]any)["kind"] != "root" {
		t.Errorf("content of R = (%v, %v)", v, ok)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		werr    error
	}{
		{"Empty", nil, ErrEmptyRecords},
		{"FirstHasParent", []Record{{Name: "A", Parent: "R"}}, ErrBadRecordOrder},
		{"UnknownParent", []Record{{Name: "R"}, {Name: "A", Parent: "X"}}, ErrBadRecordOrder},
		{"ChildBeforeParent", []Record{{Name: "R"}, {Name: "C", Parent: "A"}, {Name: "A", Parent: "R"}}, ErrBadRecordOrder},
		{"DuplicateSibling", []Record{{Name: "R"}, {Name: "A", Parent: "R"}, {Name: "A", Parent: "R"}}, ErrDuplicateName},
		{"EmptyName", []Record{{Name: ""}}, ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.records); !errors.Is(err, tt.werr) {
				t.Errorf("Build = %v, want %v", err, tt.werr)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := contentTree(t)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var rebuilt Node
	if err := json.Unmarshal(data, &rebuilt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	var want, got []string
	for n := range r.All() {
		want = append(want, n.Name())
	}
	for n := range rebuilt.All() {
		got = append(got, n.Name())
	}
	if !slices.Equal(got, want) {
		t.Errorf("shape after round trip = %v, want %v", got, want)
	}

	// the rebuilt tree satisfies the linkage invariants
	for n := range rebuilt.All() {
		checkIndex(t, n)
	}

	if v, ok := rebuilt.FindPath("A").Content(); !ok || v != "payload" {
		t.Errorf("content of A = (%v, %v)", v, ok)
	}
}

func TestUnmarshalRejectsSiblingCollision(t *testing.T) {
	in := `{"name":"R","children":[{"name":"A"},{"name":"A"}]}`
	var n Node
	if err := json.Unmarshal([]byte(in), &n); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Unmarshal = %v, want ErrDuplicateName", err)
	}
}

func TestMarshalOmitsAbsentContent(t *testing.T) {
	r, _, _, _ := fixtureTree(t)
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, present := raw["content"]; present {
		t.Error("absent content should not be serialized")
	}
}
