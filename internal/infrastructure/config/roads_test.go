package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRoadsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roads.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadRoads_EmptyPathMeansBuiltinRoster(t *testing.T) {
	roads, err := LoadRoads("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roads != nil {
		t.Fatalf("expected nil roster for empty path, got %d entries", len(roads))
	}
}

func TestLoadRoads_ParsesEntries(t *testing.T) {
	path := writeRoadsFile(t, `[
  {
    "name": "Jalan Sudirman",
    "origin": {"lat": -6.2088, "lng": 106.8456},
    "destination": {"lat": -6.2297, "lng": 106.8269}
  }
]`)

	roads, err := LoadRoads(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roads) != 1 {
		t.Fatalf("expected 1 road, got %d", len(roads))
	}
	if roads[0].Name != "Jalan Sudirman" {
		t.Errorf("unexpected name %q", roads[0].Name)
	}
	if got := roads[0].Key(); got != "-6.2088,106.8456--6.2297,106.8269" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestLoadRoads_RejectsEmptyRoster(t *testing.T) {
	path := writeRoadsFile(t, `[]`)
	if _, err := LoadRoads(path); err == nil {
		t.Fatal("expected error for empty roster")
	}
}

func TestLoadRoads_RejectsMissingName(t *testing.T) {
	path := writeRoadsFile(t, `[{"origin": {"lat": 1, "lng": 2}, "destination": {"lat": 3, "lng": 4}}]`)
	if _, err := LoadRoads(path); err == nil {
		t.Fatal("expected error for entry without name")
	}
}

func TestLoadRoads_RejectsZeroLengthSegment(t *testing.T) {
	path := writeRoadsFile(t, `[{"name": "Loop", "origin": {"lat": 1, "lng": 2}, "destination": {"lat": 1, "lng": 2}}]`)
	if _, err := LoadRoads(path); err == nil {
		t.Fatal("expected error for identical endpoints")
	}
}

func TestLoadRoads_MissingFile(t *testing.T) {
	if _, err := LoadRoads("/nonexistent/roads.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
