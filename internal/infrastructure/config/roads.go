package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// LoadRoads reads a monitored-road roster from a JSON file. An empty path
// returns nil, which callers treat as "use the built-in roster".
func LoadRoads(path string) ([]domain.MonitoredLocation, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roads file: %w", err)
	}

	var roads []domain.MonitoredLocation
	if err := json.Unmarshal(data, &roads); err != nil {
		return nil, fmt.Errorf("parsing roads file: %w", err)
	}

	if len(roads) == 0 {
		return nil, fmt.Errorf("roads file %s has no entries", path)
	}
	for i, r := range roads {
		if r.Name == "" {
			return nil, fmt.Errorf("roads file entry %d missing name", i)
		}
		if r.Origin == r.Destination {
			return nil, fmt.Errorf("road %q has identical origin and destination", r.Name)
		}
	}

	return roads, nil
}
