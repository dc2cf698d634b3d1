package gantt

import (
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

const (
	// MinimumVisibleDuration is the shortest width a bar is drawn with.
	MinimumVisibleDuration = 36 * time.Hour

	// Bars stay inside [EdgeMarginPercent, MaxRightPercent] of the chart.
	EdgeMarginPercent = 0.5
	MaxRightPercent   = 99.0
)

// PositionTask maps a task onto window as left offset and width, both in
// percent of the window span. Spans are measured in milliseconds; an empty
// window counts as one millisecond.
func PositionTask(task domain.Task, window domain.TimeWindow, minVisible time.Duration) domain.Position {
	task = task.Normalized()

	total := millis(window.Span())
	if total <= 0 {
		total = 1
	}

	startOffset := max(0, millis(task.Start.Sub(window.From)))
	rawDuration := min(millis(task.End.Sub(task.Start)), millis(task.End.Sub(window.From)))
	duration := max(rawDuration, millis(minVisible))

	left := startOffset / total * 100
	width := duration / total * 100

	if left > 100 {
		left = 100
	}
	if left+width > 100 {
		width = 100 - left
	}

	if left < EdgeMarginPercent {
		left = EdgeMarginPercent
	}
	if left > MaxRightPercent {
		left = MaxRightPercent
	}
	if left+width > MaxRightPercent {
		width = MaxRightPercent - left
	}

	return domain.Position{
		LeftPercent:  left,
		WidthPercent: width,
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
