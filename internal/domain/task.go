package domain

import "time"

// Task is one bar of the timeline chart, derived from an activity record.
type Task struct {
	ID              string
	DisplayName     string
	Start           time.Time
	End             time.Time
	ProgressPercent int
	GroupKey        string
}

// Normalized returns the task with a reversed interval collapsed to zero
// duration at its start.
func (t Task) Normalized() Task {
	if t.End.Before(t.Start) {
		t.End = t.Start
	}
	return t
}

// Overlaps reports whether the half-open intervals [Start, End) intersect.
// Touching endpoints do not overlap.
func (t Task) Overlaps(other Task) bool {
	return t.End.After(other.Start) && t.Start.Before(other.End)
}

// PlacedTask is a task with its vertical slot inside its group's row.
type PlacedTask struct {
	Task
	Lane int
}

// Group is the set of tasks sharing a group key, in placement order.
type Group struct {
	Key   string
	Tasks []PlacedTask
}

// LaneCount is the number of lanes the group row needs.
func (g Group) LaneCount() int {
	count := 0
	for _, t := range g.Tasks {
		if t.Lane+1 > count {
			count = t.Lane + 1
		}
	}
	return count
}

// TimeWindow is the time span the chart maps onto its horizontal axis.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

func (w TimeWindow) Span() time.Duration {
	return w.To.Sub(w.From)
}

// Position is the horizontal placement of a task as percentages of the
// chart width.
type Position struct {
	LeftPercent  float64
	WidthPercent float64
}
