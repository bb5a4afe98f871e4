package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/store"
	"github.com/matzehuels/arbor/pkg/tree"
)

func testServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	return New(s, log.NewWithOptions(io.Discard, log.Options{})), s
}

func seedTree(t *testing.T, s store.Store, name string) {
	t.Helper()
	root, _ := tree.New("root")
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
	if _, err := s.Save(context.Background(), name, root); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func doRequest(t *testing.T, srv *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
	}
	return payload.Error.Code
}

func TestListTrees(t *testing.T) {
	srv, s := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/v1/trees", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"trees\":[]}\n" {
		t.Errorf("empty list body = %q", got)
	}

	seedTree(t, s, "demo")
	rec = doRequest(t, srv, http.MethodGet, "/v1/trees", nil)

	var payload struct {
		Trees []store.Info `json:"trees"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(payload.Trees) != 1 || payload.Trees[0].Name != "demo" {
		t.Errorf("trees = %+v, want one entry named demo", payload.Trees)
	}
	if payload.Trees[0].Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", payload.Trees[0].Nodes)
	}
}

func TestGetTree(t *testing.T) {
	srv, s := testServer(t)
	seedTree(t, s, "demo")

	rec := doRequest(t, srv, http.MethodGet, "/v1/trees/demo", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var entry store.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if entry.Name != "demo" || len(entry.Records) != 4 {
		t.Errorf("entry = %+v, want demo with 4 records", entry)
	}
}

func TestGetTreeNotFound(t *testing.T) {
	srv, _ := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/v1/trees/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "TREE_NOT_FOUND" {
		t.Errorf("error code = %q, want TREE_NOT_FOUND", code)
	}
}

func TestPutTree(t *testing.T) {
	srv, s := testServer(t)

	body := []byte(`{"records":[{"name":"root"},{"name":"kid","parent":"root"}]}`)
	rec := doRequest(t, srv, http.MethodPut, "/v1/trees/uploaded", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	entry, err := s.Load(context.Background(), "uploaded")
	if err != nil {
		t.Fatalf("Load after PUT: %v", err)
	}
	root, err := entry.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root.Name() != "root" || root.NumChildren() != 1 {
		t.Errorf("stored tree = %s with %d children, want root with 1", root.Name(), root.NumChildren())
	}
}

func TestPutTreeInvalid(t *testing.T) {
	srv, _ := testServer(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/v1/trees/x", `{"records":`},
		{"empty records", "/v1/trees/x", `{"records":[]}`},
		{"child before parent", "/v1/trees/x", `{"records":[{"name":"root"},{"name":"a","parent":"missing"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, srv, http.MethodPut, tt.path, []byte(tt.body))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestDeleteTree(t *testing.T) {
	srv, s := testServer(t)
	seedTree(t, s, "demo")

	rec := doRequest(t, srv, http.MethodDelete, "/v1/trees/demo", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	if _, err := s.Load(context.Background(), "demo"); err != store.ErrNotFound {
		t.Errorf("Load after delete: %v, want ErrNotFound", err)
	}

	// deleting again is still a 204
	rec = doRequest(t, srv, http.MethodDelete, "/v1/trees/demo", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204", rec.Code)
	}
}

func TestGetNode(t *testing.T) {
	srv, s := testServer(t)
	seedTree(t, s, "demo")

	rec := doRequest(t, srv, http.MethodGet, "/v1/trees/demo/nodes/a", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Path    string        `json:"path"`
		Records []tree.Record `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if payload.Path != "/root/a" {
		t.Errorf("path = %q, want /root/a", payload.Path)
	}
	if len(payload.Records) != 2 {
		t.Errorf("got %d records, want 2 (a and c)", len(payload.Records))
	}
}

func TestGetNodeNotFound(t *testing.T) {
	srv, s := testServer(t)
	seedTree(t, s, "demo")

	rec := doRequest(t, srv, http.MethodGet, "/v1/trees/demo/nodes/a/zzz", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "NODE_NOT_FOUND" {
		t.Errorf("error code = %q, want NODE_NOT_FOUND", code)
	}
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code apperrors.Code
		want int
	}{
		{apperrors.ErrCodeInvalidInput, http.StatusBadRequest},
		{apperrors.ErrCodeTreeNotFound, http.StatusNotFound},
		{apperrors.ErrCodeFrozen, http.StatusConflict},
		{apperrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{apperrors.ErrCodeInternal, http.StatusInternalServerError},
		{apperrors.Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusForCode(tt.code); got != tt.want {
			t.Errorf("statusForCode(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
