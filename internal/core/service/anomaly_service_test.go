package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubBaseline implements ports.HistoryService with a fixed average.
type stubBaseline struct {
	avg    float64
	avgErr error
}

func (b *stubBaseline) Record(_ context.Context, _ *domain.Observation) error { return nil }

func (b *stubBaseline) AverageDuration(_ context.Context, _ string) (float64, error) {
	if b.avgErr != nil {
		return 0, b.avgErr
	}
	return b.avg, nil
}

func (b *stubBaseline) WeeklySummary(_ context.Context) (*domain.TrafficSummary, error) {
	return &domain.TrafficSummary{}, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAnomalyService_Check_NoHistory(t *testing.T) {
	svc := NewAnomalyService(&stubBaseline{avgErr: domain.ErrNoHistory}, zerolog.Nop())

	result, err := svc.Check(context.Background(), 1200, "a-b")
	if err != nil {
		t.Fatalf("missing history must not be an error, got: %v", err)
	}
	if result.Unusual {
		t.Error("expected not unusual without history")
	}
	if result.Explanation != "No historical data available" {
		t.Errorf("unexpected explanation: %q", result.Explanation)
	}
}

func TestAnomalyService_Check_StrictThreshold(t *testing.T) {
	cases := []struct {
		name        string
		current     int
		avg         float64
		unusual     bool
		explanation string
	}{
		{"just above threshold", 151, 100, true, "Traffic is 51.0% higher than usual"},
		{"exactly at threshold", 150, 100, false, "Traffic is within normal range"},
		{"well above threshold", 180, 100, true, "Traffic is 80.0% higher than usual"},
		{"below average", 80, 100, false, "Traffic is within normal range"},
		{"equal to average", 100, 100, false, "Traffic is within normal range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAnomalyService(&stubBaseline{avg: tc.avg}, zerolog.Nop())

			result, err := svc.Check(context.Background(), tc.current, "a-b")
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if result.Unusual != tc.unusual {
				t.Errorf("unusual = %v, want %v", result.Unusual, tc.unusual)
			}
			if result.Explanation != tc.explanation {
				t.Errorf("explanation = %q, want %q", result.Explanation, tc.explanation)
			}
		})
	}
}

func TestAnomalyService_Check_ZeroAverageIsNoHistory(t *testing.T) {
	svc := NewAnomalyService(&stubBaseline{avg: 0}, zerolog.Nop())

	result, err := svc.Check(context.Background(), 1200, "a-b")
	if err != nil {
		t.Fatalf("zero average must not be an error, got: %v", err)
	}
	if result.Unusual {
		t.Error("expected not unusual for a zero average")
	}
	if result.Explanation != "No historical data available" {
		t.Errorf("unexpected explanation: %q", result.Explanation)
	}
}

func TestAnomalyService_Check_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("mongo unavailable")
	svc := NewAnomalyService(&stubBaseline{avgErr: storeErr}, zerolog.Nop())

	if _, err := svc.Check(context.Background(), 1200, "a-b"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got: %v", err)
	}
}
