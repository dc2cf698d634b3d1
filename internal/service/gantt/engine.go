package gantt

import (
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

type Options struct {
	DefaultPadDays     int
	MinVisibleDuration time.Duration
}

func DefaultOptions() Options {
	return Options{
		DefaultPadDays:     DefaultPadDays,
		MinVisibleDuration: MinimumVisibleDuration,
	}
}

type PositionedTask struct {
	domain.PlacedTask
	Position domain.Position
}

type GroupLayout struct {
	Key       string
	LaneCount int
	Tasks     []PositionedTask
}

type Layout struct {
	Window    domain.TimeWindow
	Groups    []GroupLayout
	TaskCount int
}

// Engine lays tasks out for the timeline chart. It keeps no state between
// calls; the clock is only read to pad the window.
type Engine struct {
	opts Options
	now  func() time.Time
}

func NewEngine(opts Options, now func() time.Time) *Engine {
	if opts.MinVisibleDuration <= 0 {
		opts.MinVisibleDuration = MinimumVisibleDuration
	}
	if opts.DefaultPadDays < 0 {
		opts.DefaultPadDays = DefaultPadDays
	}
	if now == nil {
		now = time.Now
	}

	return &Engine{
		opts: opts,
		now:  now,
	}
}

func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) Layout(tasks []domain.Task) *Layout {
	window := ComputeTimeWindow(tasks, e.opts.DefaultPadDays, e.now())
	groups := ComputeLanes(tasks)

	layout := &Layout{
		Window: window,
		Groups: make([]GroupLayout, 0, len(groups)),
	}

	for _, g := range groups {
		positioned := make([]PositionedTask, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			positioned = append(positioned, PositionedTask{
				PlacedTask: t,
				Position:   PositionTask(t.Task, window, e.opts.MinVisibleDuration),
			})
		}

		layout.Groups = append(layout.Groups, GroupLayout{
			Key:       g.Key,
			LaneCount: g.LaneCount(),
			Tasks:     positioned,
		})
		layout.TaskCount += len(positioned)
	}

	return layout
}
