package gantt

import (
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

const (
	// DefaultPadDays is the padding kept on each side of now when the
	// window is computed.
	DefaultPadDays = 30

	day = 24 * time.Hour
)

// ComputeTimeWindow returns the window [now-padDays, now+padDays] grown to
// include every task start and end. The padded window is a floor: tasks
// inside it never shrink it.
func ComputeTimeWindow(tasks []domain.Task, padDays int, now time.Time) domain.TimeWindow {
	if padDays < 0 {
		padDays = 0
	}
	pad := time.Duration(padDays) * day

	window := domain.TimeWindow{
		From: now.Add(-pad),
		To:   now.Add(pad),
	}

	for _, t := range tasks {
		t = t.Normalized()
		if t.Start.Before(window.From) {
			window.From = t.Start
		}
		if t.End.After(window.To) {
			window.To = t.End
		}
	}

	return window
}
