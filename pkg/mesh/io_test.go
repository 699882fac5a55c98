package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	original := square()

	var buf bytes.Buffer
	if err := original.Store(&buf); err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadValidatesFaceIndices(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"index beyond vertices", `{"vertices":[[0,0,0],[1,0,0]],"faces":[[0,1,2]]}`},
		{"negative index", `{"vertices":[[0,0,0],[1,0,0],[0,1,0]],"faces":[[0,-1,2]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.input)); err == nil {
				t.Error("Load() succeeded, want face index error")
			}
		})
	}
}

func TestLoadBadJSON(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"vertices":`)); err == nil {
		t.Error("Load() succeeded on truncated JSON, want error")
	}
}

func TestLoadEmptyMesh(t *testing.T) {
	m, err := Load(strings.NewReader(`{"vertices":[],"faces":[]}`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if got := m.Area(); got != 0 {
		t.Errorf("Area() = %g, want 0", got)
	}
}

func TestMeshArea(t *testing.T) {
	m := square()
	if got := m.Area(); got != 1 {
		t.Errorf("Area() = %g, want 1", got)
	}
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount() = %d, want 4", got)
	}
	if got := m.FaceCount(); got != 2 {
		t.Errorf("FaceCount() = %d, want 2", got)
	}
}
