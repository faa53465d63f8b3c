package pages

import (
	"strings"
	"time"

	"badgematic/internal/printjobs"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// StepLabel converts a pipeline step into visitor-facing copy.
func StepLabel(step printjobs.Step) string {
	switch step {
	case printjobs.StepQueued:
		return "Queued for printing…"
	case printjobs.StepImageProcessing:
		return "Processing your photo…"
	case printjobs.StepComposingBadge:
		return "Composing your badge…"
	case printjobs.StepPrinting:
		return "Sending to the printer…"
	case printjobs.StepDone:
		return "Done"
	case printjobs.StepFailed:
		return "Failed"
	default:
		return "Waiting"
	}
}

// FormatTimestamp renders persisted timestamps for the operator page.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "—"
	}
	return value.UTC().Format("02 Jan 2006 15:04")
}
