package gantt

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

var baseTime = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func dayAt(n int) time.Time {
	return baseTime.Add(time.Duration(n) * 24 * time.Hour)
}

func newTask(id, group string, startDay, endDay int) domain.Task {
	return domain.Task{
		ID:          id,
		DisplayName: id,
		Start:       dayAt(startDay),
		End:         dayAt(endDay),
		GroupKey:    group,
	}
}

func lanesByID(groups []domain.Group) map[string]int {
	lanes := make(map[string]int)
	for _, g := range groups {
		for _, t := range g.Tasks {
			lanes[t.ID] = t.Lane
		}
	}
	return lanes
}

func TestComputeLanes(t *testing.T) {
	tests := []struct {
		name      string
		tasks     []domain.Task
		wantLanes map[string]int
	}{
		{
			name:      "single task gets lane 0",
			tasks:     []domain.Task{newTask("a", "u1", 0, 5)},
			wantLanes: map[string]int{"a": 0},
		},
		{
			name: "overlapping chain reuses freed lane",
			tasks: []domain.Task{
				newTask("a", "u1", 0, 5),
				newTask("b", "u1", 3, 8),
				newTask("c", "u1", 6, 10),
			},
			wantLanes: map[string]int{"a": 0, "b": 1, "c": 0},
		},
		{
			name: "touching endpoints share a lane",
			tasks: []domain.Task{
				newTask("a", "u1", 0, 5),
				newTask("b", "u1", 5, 9),
			},
			wantLanes: map[string]int{"a": 0, "b": 0},
		},
		{
			name: "three mutually overlapping tasks use three lanes",
			tasks: []domain.Task{
				newTask("a", "u1", 0, 10),
				newTask("b", "u1", 1, 10),
				newTask("c", "u1", 2, 10),
			},
			wantLanes: map[string]int{"a": 0, "b": 1, "c": 2},
		},
		{
			name: "input order does not matter, start order does",
			tasks: []domain.Task{
				newTask("c", "u1", 6, 10),
				newTask("b", "u1", 3, 8),
				newTask("a", "u1", 0, 5),
			},
			wantLanes: map[string]int{"a": 0, "b": 1, "c": 0},
		},
		{
			name: "groups are laid out independently",
			tasks: []domain.Task{
				newTask("a", "u1", 0, 5),
				newTask("b", "u2", 0, 5),
				newTask("c", "u1", 1, 4),
			},
			wantLanes: map[string]int{"a": 0, "b": 0, "c": 1},
		},
		{
			name: "reversed interval is clamped to zero duration",
			tasks: []domain.Task{
				newTask("a", "u1", 5, 2),
				newTask("b", "u1", 5, 6),
			},
			wantLanes: map[string]int{"a": 0, "b": 0},
		},
		{
			name: "zero duration task inside another overlaps it",
			tasks: []domain.Task{
				newTask("a", "u1", 0, 10),
				newTask("b", "u1", 4, 4),
			},
			wantLanes: map[string]int{"a": 0, "b": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lanesByID(ComputeLanes(tt.tasks))

			if len(got) != len(tt.wantLanes) {
				t.Fatalf("ComputeLanes() placed %d tasks, want %d", len(got), len(tt.wantLanes))
			}
			for id, want := range tt.wantLanes {
				if got[id] != want {
					t.Errorf("lane of %s = %d, want %d", id, got[id], want)
				}
			}
		})
	}
}

func TestComputeLanes_Empty(t *testing.T) {
	if got := ComputeLanes(nil); len(got) != 0 {
		t.Errorf("ComputeLanes(nil) returned %d groups, want 0", len(got))
	}
	if got := ComputeLanes([]domain.Task{}); len(got) != 0 {
		t.Errorf("ComputeLanes([]) returned %d groups, want 0", len(got))
	}
}

func TestComputeLanes_GroupOrderIsFirstSeen(t *testing.T) {
	tasks := []domain.Task{
		newTask("a", "zoe", 0, 1),
		newTask("b", "adam", 0, 1),
		newTask("c", "zoe", 2, 3),
		newTask("d", "mia", 0, 1),
	}

	groups := ComputeLanes(tasks)

	wantOrder := []string{"zoe", "adam", "mia"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, key := range wantOrder {
		if groups[i].Key != key {
			t.Errorf("groups[%d].Key = %q, want %q", i, groups[i].Key, key)
		}
	}
}

func TestComputeLanes_StableForEqualStarts(t *testing.T) {
	tasks := []domain.Task{
		newTask("first", "u1", 2, 4),
		newTask("second", "u1", 2, 4),
		newTask("third", "u1", 2, 4),
	}

	groups := ComputeLanes(tasks)

	wantIDs := []string{"first", "second", "third"}
	for i, id := range wantIDs {
		if groups[0].Tasks[i].ID != id {
			t.Errorf("Tasks[%d].ID = %q, want %q", i, groups[0].Tasks[i].ID, id)
		}
		if groups[0].Tasks[i].Lane != i {
			t.Errorf("Tasks[%d].Lane = %d, want %d", i, groups[0].Tasks[i].Lane, i)
		}
	}
}

func TestComputeLanes_Properties(t *testing.T) {
	tasks := []domain.Task{
		newTask("t1", "u1", 0, 3),
		newTask("t2", "u1", 1, 7),
		newTask("t3", "u1", 2, 4),
		newTask("t4", "u1", 3, 5),
		newTask("t5", "u1", 4, 9),
		newTask("t6", "u1", 7, 8),
		newTask("t7", "u1", 8, 12),
		newTask("t8", "u2", 0, 20),
		newTask("t9", "u2", 5, 6),
		newTask("t10", "u1", 6, 6),
	}

	groups := ComputeLanes(tasks)

	for _, g := range groups {
		t.Run(g.Key, func(t *testing.T) {
			for i, a := range g.Tasks {
				for _, b := range g.Tasks[i+1:] {
					if a.Lane == b.Lane && a.Overlaps(b.Task) {
						t.Errorf("tasks %s and %s overlap but share lane %d", a.ID, b.ID, a.Lane)
					}
				}
			}

			// first-fit: every lane below a task's lane is taken by an
			// earlier overlapping task
			for i, p := range g.Tasks {
				for lane := 0; lane < p.Lane; lane++ {
					blocked := false
					for _, earlier := range g.Tasks[:i] {
						if earlier.Lane == lane && earlier.Overlaps(p.Task) {
							blocked = true
							break
						}
					}
					if !blocked {
						t.Errorf("task %s got lane %d but lane %d was free", p.ID, p.Lane, lane)
					}
				}
			}
		})
	}

	again := ComputeLanes(tasks)
	first := lanesByID(groups)
	second := lanesByID(again)
	for id, lane := range first {
		if second[id] != lane {
			t.Errorf("second run lane of %s = %d, want %d", id, second[id], lane)
		}
	}
}
