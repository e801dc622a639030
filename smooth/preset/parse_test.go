package preset

import (
	"errors"
	"testing"
)

const table = `
presets:
  - name: camera-follow
    retention: 0.001
    kind: linear
    description: tight follow
  - name: turret
    retention: 0.2
    kind: rotation
  - name: hud
    retention: 0.05
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(table))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}

	p, ok := r.Lookup("camera-follow")
	if !ok || p.Retention != 0.001 || p.Kind != KindLinear || p.Description != "tight follow" {
		t.Fatalf("camera-follow = %+v", p)
	}
	if p, _ := r.Lookup("turret"); p.Kind != KindRotation {
		t.Fatalf("turret kind = %s", p.Kind)
	}
	if p, _ := r.Lookup("hud"); p.Kind != KindLinear {
		t.Fatalf("hud kind = %s, want default linear", p.Kind)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		is   error
	}{
		{"bad retention", "presets:\n  - name: x\n    retention: 2\n", ErrInvalidPreset},
		{"bad kind", "presets:\n  - name: x\n    retention: 0.1\n    kind: spring\n", ErrInvalidPreset},
		{"duplicate", "presets:\n  - name: x\n    retention: 0.1\n  - name: x\n    retention: 0.2\n", errDuplicatePreset},
	} {
		if _, err := Parse([]byte(tc.data)); !errors.Is(err, tc.is) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.is)
		}
	}

	if _, err := Parse([]byte("presets: [")); err == nil {
		t.Fatal("expected YAML syntax error")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	r, err := Load([]byte("presets:\n  - name: zoom\n    retention: 0.3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 4 {
		t.Fatalf("Len = %d, want 4", r.Len())
	}
	if p, _ := r.Lookup("zoom"); p.Retention != 0.3 {
		t.Fatalf("zoom = %v, want 0.3", p.Retention)
	}
}

func TestParseEmpty(t *testing.T) {
	r, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}
