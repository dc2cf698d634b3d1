package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/activity"
)

const maxLayoutActivities = 5000

type TimelineService interface {
	Timeline(ctx context.Context, criteria domain.ActivityCriteria) (*activity.Timeline, error)
	LayoutRecords(ctx context.Context, records []domain.ActivityRecord) *activity.Timeline
	Stats(ctx context.Context, criteria domain.ActivityCriteria) (*activity.StatsResult, error)
}

type TimelineHandler struct {
	service      TimelineService
	defaultLimit int
}

func NewTimelineHandler(service TimelineService, defaultLimit int) *TimelineHandler {
	return &TimelineHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// Register mounts the timeline routes on rg.
func (h *TimelineHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/timeline", h.HandleTimeline)
	rg.POST("/timeline/layout", h.HandleLayout)
	rg.GET("/activity/stats", h.HandleStats)
}

func (h *TimelineHandler) HandleTimeline(c *gin.Context) {
	ctx := c.Request.Context()

	criteria, err := parseCriteria(c, h.defaultLimit)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	timeline, err := h.service.Timeline(ctx, criteria)
	if err != nil {
		slog.WarnContext(ctx, "timeline request failed",
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTimelineResponse(timeline))
}

func (h *TimelineHandler) HandleLayout(c *gin.Context) {
	ctx := c.Request.Context()

	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "request body must be {\"activities\": [...]}")
		return
	}
	if len(req.Activities) > maxLayoutActivities {
		respondBadRequest(c, "too many activities")
		return
	}

	timeline := h.service.LayoutRecords(ctx, req.Activities)

	slog.InfoContext(ctx, "laid out supplied activities",
		slog.String("run_id", timeline.RunID),
		slog.Int("activity_count", len(req.Activities)),
	)

	c.JSON(http.StatusOK, toTimelineResponse(timeline))
}

func (h *TimelineHandler) HandleStats(c *gin.Context) {
	ctx := c.Request.Context()

	criteria, err := parseCriteria(c, h.defaultLimit)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.service.Stats(ctx, criteria)
	if err != nil {
		slog.WarnContext(ctx, "stats request failed",
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatsResponse(result))
}
