package location

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCorrectionMinutes(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		city string
		want int
	}{
		{"Seoul", -32},   // 126.978 vs meridian 135
		{"Tokyo", 19},    // 139.6917 vs 135
		{"Beijing", -14}, // 116.4074 vs 120
		{"London", -1},   // -0.1278 vs 0
	}
	for _, tt := range tests {
		p, ok := r.Resolve(tt.city)
		if !ok {
			t.Fatalf("city %s not resolvable", tt.city)
		}
		if got := p.CorrectionMinutes(); got != tt.want {
			t.Errorf("%s correction = %d min, want %d", tt.city, got, tt.want)
		}
	}
}

func TestResolve_Normalization(t *testing.T) {
	r := NewResolver()
	for _, name := range []string{"seoul", "Seoul", "SEOUL", " Seoul "} {
		if _, ok := r.Resolve(name); !ok {
			t.Errorf("Resolve(%q) failed", name)
		}
	}
	if _, ok := r.Resolve("Atlantis"); ok {
		t.Error("unknown city should not resolve")
	}
}

func TestResolve_MultiWordCity(t *testing.T) {
	r := NewResolver()
	p, ok := r.Resolve("New York")
	if !ok {
		t.Fatal("New York not resolvable")
	}
	if p.UTCOffset != -5 {
		t.Errorf("New York UTC offset = %v", p.UTCOffset)
	}
}

func TestAdd_Validation(t *testing.T) {
	r := NewResolver()
	if err := r.Add(Place{Longitude: 10}); err == nil {
		t.Error("expected error for unnamed place")
	}
	if err := r.Add(Place{Name: "Nowhere", Longitude: 500}); err == nil {
		t.Error("expected error for out-of-range longitude")
	}
	if err := r.Add(Place{Name: "Gyeongju", Longitude: 129.2247, Latitude: 35.8562, UTCOffset: 9}); err != nil {
		t.Errorf("Add failed: %v", err)
	}
	if _, ok := r.Resolve("gyeongju"); !ok {
		t.Error("added place should resolve")
	}
}

func TestLoadExtra(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "places.yaml")
	content := `
- name: Suwon
  longitude: 127.0286
  latitude: 37.2636
  utc_offset: 9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver()
	if err := r.LoadExtra(path); err != nil {
		t.Fatalf("LoadExtra failed: %v", err)
	}
	p, ok := r.Resolve("Suwon")
	if !ok {
		t.Fatal("Suwon should resolve after LoadExtra")
	}
	if p.CorrectionMinutes() != -32 {
		t.Errorf("Suwon correction = %d, want -32", p.CorrectionMinutes())
	}
}
