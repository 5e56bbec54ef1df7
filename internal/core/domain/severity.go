package domain

// Severity grades how much slower a road segment moves compared to its
// free-flow duration.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityModerate Severity = "moderate"
	SeverityHeavy    Severity = "heavy"
	SeveritySevere   Severity = "severe"
)

// severityBands lists the upper bound of each band in ascending order. A
// ratio equal to an upper bound belongs to that band; anything above the
// last bound is severe.
var severityBands = []struct {
	upper float64
	label Severity
}{
	{upper: 0.15, label: SeverityNormal},
	{upper: 0.30, label: SeverityModerate},
	{upper: 0.60, label: SeverityHeavy},
}

// ClassifySeverity maps a travel-time increase ratio onto a severity band.
// The function is total: every float, including negative ratios from
// lighter-than-usual traffic, yields a severity.
func ClassifySeverity(increaseRatio float64) Severity {
	for _, band := range severityBands {
		if increaseRatio <= band.upper {
			return band.label
		}
	}
	return SeveritySevere
}

// Level returns the rank of the severity, normal (0) through severe (3).
// Unknown values rank below normal.
func (s Severity) Level() int {
	switch s {
	case SeverityNormal:
		return 0
	case SeverityModerate:
		return 1
	case SeverityHeavy:
		return 2
	case SeveritySevere:
		return 3
	default:
		return -1
	}
}

// Marker returns the symbol shown next to the severity in rendered reports.
func (s Severity) Marker() string {
	switch s {
	case SeverityNormal:
		return "🟢"
	case SeverityModerate:
		return "🟡"
	case SeverityHeavy:
		return "🟠"
	case SeveritySevere:
		return "🔴"
	default:
		return "⚪"
	}
}

// Title returns the severity capitalized for display.
func (s Severity) Title() string {
	switch s {
	case SeverityNormal:
		return "Normal"
	case SeverityModerate:
		return "Moderate"
	case SeverityHeavy:
		return "Heavy"
	case SeveritySevere:
		return "Severe"
	default:
		return "Unknown"
	}
}
