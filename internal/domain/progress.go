package domain

import "fmt"

// ProgressStatus buckets an activity by its completion percentage.
type ProgressStatus string

const (
	StatusCompleted  ProgressStatus = "completed"
	StatusInProgress ProgressStatus = "in_progress"
	StatusNotStarted ProgressStatus = "not_started"
)

func ClassifyProgress(progress int) ProgressStatus {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

func (s ProgressStatus) String() string {
	return string(s)
}

// Label is the human readable status of an activity at the given progress.
func Label(progress int) string {
	switch ClassifyProgress(progress) {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return fmt.Sprintf("In progress (%d%%)", progress)
	default:
		return "Not started"
	}
}

// CSSClass returns the progress bar class the web client styles the status with.
func (s ProgressStatus) CSSClass() string {
	switch s {
	case StatusCompleted:
		return "progress-bar-success"
	case StatusInProgress:
		return "progress-bar-warning"
	default:
		return "progress-bar-danger"
	}
}

// ClampProgress bounds a progress value to 0..100.
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
