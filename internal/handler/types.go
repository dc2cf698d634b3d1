package handler

import (
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/activity"
)

type windowResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type taskResponse struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name"`
	ActivityType string    `json:"activity_type,omitempty"`
	EntityID     string    `json:"entity_id,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Progress     int       `json:"progress"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	CSSClass     string    `json:"css_class"`
	Lane         int       `json:"lane"`
	LeftPercent  float64   `json:"left_percent"`
	WidthPercent float64   `json:"width_percent"`
}

type groupResponse struct {
	GroupKey  string         `json:"group_key"`
	LaneCount int            `json:"lane_count"`
	Tasks     []taskResponse `json:"tasks"`
}

type timelineResponse struct {
	RunID  string          `json:"run_id"`
	Window windowResponse  `json:"window"`
	Groups []groupResponse `json:"groups"`
	Total  int             `json:"total"`
}

type layoutRequest struct {
	Activities []domain.ActivityRecord `json:"activities" binding:"required"`
}

type statsResponse struct {
	Labels     []string             `json:"labels"`
	Completed  []float64            `json:"completed"`
	InProgress []float64            `json:"in_progress"`
	NotStarted []float64            `json:"not_started"`
	Users      []activity.UserStats `json:"users"`
	Total      int                  `json:"total"`
}

func toTimelineResponse(t *activity.Timeline) timelineResponse {
	resp := timelineResponse{
		RunID: t.RunID,
		Window: windowResponse{
			From: t.Layout.Window.From,
			To:   t.Layout.Window.To,
		},
		Groups: make([]groupResponse, 0, len(t.Layout.Groups)),
		Total:  t.Total,
	}

	for _, g := range t.Layout.Groups {
		group := groupResponse{
			GroupKey:  g.Key,
			LaneCount: g.LaneCount,
			Tasks:     make([]taskResponse, 0, len(g.Tasks)),
		}
		for _, pt := range g.Tasks {
			status := domain.ClassifyProgress(pt.ProgressPercent)
			record := t.Records[pt.ID]
			group.Tasks = append(group.Tasks, taskResponse{
				ID:           pt.ID,
				DisplayName:  pt.DisplayName,
				ActivityType: record.ActivityType,
				EntityID:     record.EntityID,
				Start:        pt.Start,
				End:          pt.End,
				Progress:     pt.ProgressPercent,
				Status:       status.String(),
				StatusLabel:  domain.Label(pt.ProgressPercent),
				CSSClass:     status.CSSClass(),
				Lane:         pt.Lane,
				LeftPercent:  pt.Position.LeftPercent,
				WidthPercent: pt.Position.WidthPercent,
			})
		}
		resp.Groups = append(resp.Groups, group)
	}

	return resp
}

func toStatsResponse(r *activity.StatsResult) statsResponse {
	resp := statsResponse{
		Labels:     make([]string, 0, len(r.Users)),
		Completed:  make([]float64, 0, len(r.Users)),
		InProgress: make([]float64, 0, len(r.Users)),
		NotStarted: make([]float64, 0, len(r.Users)),
		Users:      r.Users,
		Total:      r.Total,
	}
	for _, u := range r.Users {
		resp.Labels = append(resp.Labels, u.Username)
		resp.Completed = append(resp.Completed, u.CompletedPercent)
		resp.InProgress = append(resp.InProgress, u.InProgressPercent)
		resp.NotStarted = append(resp.NotStarted, u.NotStartedPercent)
	}
	return resp
}
