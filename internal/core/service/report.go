package service

import (
	"fmt"
	"strings"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// The renderers produce the plain-text blocks handed to chat transports.
// Transport markup (bold, keyboards, parse modes) stays out of the core.

const noStatsText = "📊 No traffic data available yet. Check back after some data is collected!"

func renderTrafficReport(report *ports.TrafficReport) string {
	var b strings.Builder
	b.WriteString("🚦 Jakarta Traffic Report\n\n")

	for _, status := range report.Statuses {
		b.WriteString(renderStatusLines(&status))
		b.WriteString("\n")
	}

	return b.String()
}

func renderLocationReport(status *ports.LocationStatus) string {
	var b strings.Builder
	b.WriteString(renderStatusLines(status))
	if !status.Unusual && status.Explanation != "" {
		b.WriteString("✅ Traffic is normal\n")
	}
	return b.String()
}

// renderStatusLines emits the per-segment block shared by the traffic and
// location reports: marker, name, durations, and a warning when unusual.
func renderStatusLines(status *ports.LocationStatus) string {
	var b strings.Builder

	obs := status.Observation
	fmt.Fprintf(&b, "%s %s\n", obs.Severity.Marker(), status.Name)
	fmt.Fprintf(&b, "Current: %d min | Normal: %d min\n", obs.DurationInTraffic/60, obs.DurationNormal/60)
	if status.Unusual {
		fmt.Fprintf(&b, "⚠️ %s\n", status.Explanation)
	}

	return b.String()
}

func renderRouteReport(report *ports.RouteReport) string {
	obs := report.Observation

	annotation := "✅ Traffic is normal"
	if report.Unusual {
		annotation = fmt.Sprintf("⚠️ %s", report.Explanation)
	}

	var b strings.Builder
	b.WriteString("🚗 Route Information\n\n")
	fmt.Fprintf(&b, "📍 Destination: %s\n", report.DestinationText)
	fmt.Fprintf(&b, "%s Traffic Status: %s\n\n", obs.Severity.Marker(), obs.Severity.Title())
	b.WriteString("⏱️ Travel Time:\n")
	fmt.Fprintf(&b, "• Current (with traffic): %d minutes\n", obs.DurationInTraffic/60)
	fmt.Fprintf(&b, "• Normal conditions: %d minutes\n\n", obs.DurationNormal/60)
	b.WriteString(annotation)
	b.WriteString("\n")

	return b.String()
}

func renderStatsReport(summary *domain.TrafficSummary) string {
	if summary.Count == 0 {
		return noStatsText
	}

	avgMins := int(summary.AvgDuration / 60)

	var b strings.Builder
	b.WriteString("📊 Traffic Statistics (Last 7 Days)\n\n")
	fmt.Fprintf(&b, "📈 Total Records: %d\n", summary.Count)
	fmt.Fprintf(&b, "⏱️ Average Duration: %d minutes\n", avgMins)
	fmt.Fprintf(&b, "🔴 Severe Traffic: %d incidents (%.1f%%)\n\n", summary.SevereCount, summary.SeverePercent())
	b.WriteString("Data collected from major Jakarta roads\n")

	return b.String()
}
