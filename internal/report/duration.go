package report

import (
	"fmt"
	"strings"
)

// DurationStyle selects how accumulated seconds render in the final output.
type DurationStyle string

const (
	// DurationVerbose renders day/hour/minute/second components, omitting
	// zero-valued higher units: "1d 2h 3m 4s", "45m 10s", "0s".
	DurationVerbose DurationStyle = "verbose"

	// DurationCompact renders hours and minutes only, hours omitted when
	// zero but minutes always present: "1h 0m", "45m", "0m".
	DurationCompact DurationStyle = "compact"
)

// FormatSeconds renders a duration per the given style. Negative durations
// are treated as zero; every non-negative input has a defined output.
func FormatSeconds(sec int64, style DurationStyle) string {
	if sec < 0 {
		sec = 0
	}
	if style == DurationCompact {
		return formatCompact(sec)
	}
	return formatVerbose(sec)
}

func formatVerbose(sec int64) string {
	days := sec / 86400
	hours := (sec % 86400) / 3600
	mins := (sec % 3600) / 60
	secs := sec % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

func formatCompact(sec int64) string {
	hours := sec / 3600
	mins := (sec % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
