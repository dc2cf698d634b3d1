package gantt

import (
	"slices"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

// ComputeLanes partitions tasks by group key, in order of first appearance,
// and assigns every task the lowest lane not used by an earlier placed task
// of its group that overlaps it. Tasks are placed by ascending start; ties
// keep their input order.
func ComputeLanes(tasks []domain.Task) []domain.Group {
	if len(tasks) == 0 {
		return nil
	}

	order := make([]string, 0)
	byKey := make(map[string][]domain.Task)
	for _, t := range tasks {
		if _, seen := byKey[t.GroupKey]; !seen {
			order = append(order, t.GroupKey)
		}
		byKey[t.GroupKey] = append(byKey[t.GroupKey], t.Normalized())
	}

	groups := make([]domain.Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, domain.Group{
			Key:   key,
			Tasks: assignLanes(byKey[key]),
		})
	}

	return groups
}

func assignLanes(tasks []domain.Task) []domain.PlacedTask {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b domain.Task) int {
		return a.Start.Compare(b.Start)
	})

	placed := make([]domain.PlacedTask, 0, len(sorted))
	for _, t := range sorted {
		used := make(map[int]struct{})
		for _, p := range placed {
			if p.Overlaps(t) {
				used[p.Lane] = struct{}{}
			}
		}

		placed = append(placed, domain.PlacedTask{
			Task: t,
			Lane: firstFreeLane(used),
		})
	}

	return placed
}

func firstFreeLane(used map[int]struct{}) int {
	lane := 0
	for {
		if _, taken := used[lane]; !taken {
			return lane
		}
		lane++
	}
}
