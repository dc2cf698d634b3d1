package gantt

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

func TestComputeTimeWindow_Empty(t *testing.T) {
	now := baseTime

	window := ComputeTimeWindow(nil, DefaultPadDays, now)

	if got := window.Span(); got != 60*24*time.Hour {
		t.Errorf("Span() = %v, want 60 days", got)
	}
	if !window.From.Equal(now.Add(-30 * 24 * time.Hour)) {
		t.Errorf("From = %v, want now-30d", window.From)
	}
	if !window.To.Equal(now.Add(30 * 24 * time.Hour)) {
		t.Errorf("To = %v, want now+30d", window.To)
	}
}

func TestComputeTimeWindow(t *testing.T) {
	now := dayAt(100)

	tests := []struct {
		name     string
		tasks    []domain.Task
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "tasks inside padding keep the default window",
			tasks:    []domain.Task{newTask("a", "u1", 95, 110)},
			wantFrom: dayAt(70),
			wantTo:   dayAt(130),
		},
		{
			name:     "early start extends from",
			tasks:    []domain.Task{newTask("a", "u1", 10, 100)},
			wantFrom: dayAt(10),
			wantTo:   dayAt(130),
		},
		{
			name:     "late end extends to",
			tasks:    []domain.Task{newTask("a", "u1", 100, 200)},
			wantFrom: dayAt(70),
			wantTo:   dayAt(200),
		},
		{
			name: "both ends extend across tasks",
			tasks: []domain.Task{
				newTask("a", "u1", 20, 30),
				newTask("b", "u2", 150, 180),
			},
			wantFrom: dayAt(20),
			wantTo:   dayAt(180),
		},
		{
			name:     "reversed interval counts as its start",
			tasks:    []domain.Task{newTask("a", "u1", 160, 10)},
			wantFrom: dayAt(70),
			wantTo:   dayAt(160),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ComputeTimeWindow(tt.tasks, DefaultPadDays, now)

			if !window.From.Equal(tt.wantFrom) {
				t.Errorf("From = %v, want %v", window.From, tt.wantFrom)
			}
			if !window.To.Equal(tt.wantTo) {
				t.Errorf("To = %v, want %v", window.To, tt.wantTo)
			}
			for _, task := range tt.tasks {
				task = task.Normalized()
				if task.Start.Before(window.From) || task.End.After(window.To) {
					t.Errorf("task %s [%v, %v] outside window", task.ID, task.Start, task.End)
				}
			}
		})
	}
}
