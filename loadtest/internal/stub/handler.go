package stub

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage *BucketStorage
}

func NewHandler(storage *BucketStorage) *Handler {
	return &Handler{storage: storage}
}

// Register mounts the stub routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/seed", h.HandleSeed)
	r.POST("/reset", h.HandleReset)
	r.GET("/api/useractivity", h.HandleGetActivities)
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalCount := 0
	for _, sb := range req.Buckets {
		startTime, err := time.Parse(time.RFC3339, sb.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time: " + sb.StartTime})
			return
		}
		endTime, err := time.Parse(time.RFC3339, sb.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_time: " + sb.EndTime})
			return
		}
		if sb.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}

		activityType := sb.ActivityType
		if activityType == "" {
			activityType = "DOCUMENT_EDIT"
		}
		durationHours := sb.DurationHours
		if durationHours <= 0 {
			durationHours = 48
		}

		h.storage.AddBucket(runID, &Bucket{
			Username:     sb.Username,
			StartTime:    startTime,
			EndTime:      endTime,
			Count:        sb.Count,
			ActivityType: activityType,
			Duration:     time.Duration(durationHours) * time.Hour,
		})

		totalCount += sb.Count
	}

	slog.Info("seeded data",
		slog.String("run_id", runID),
		slog.Int("bucket_count", len(req.Buckets)),
		slog.Int("total_activity_count", totalCount),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":       "seeded",
		"run_id":       runID,
		"bucket_count": len(req.Buckets),
		"total_count":  totalCount,
	})
}

// GET /api/useractivity?limit=&offset=&sort_column=&asc=&activity_type=&user_id=&entity_id=&run_id=
func (h *Handler) HandleGetActivities(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	q := Query{
		UserID:       c.Query("user_id"),
		ActivityType: c.Query("activity_type"),
		EntityID:     c.Query("entity_id"),
	}

	var err error
	if q.Limit, err = intQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if q.Offset, err = intQuery(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}
	if q.SortColumn, err = intQuery(c, "sort_column"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort_column"})
		return
	}
	if v := c.Query("asc"); v != "" {
		if q.Ascending, err = strconv.ParseBool(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asc"})
			return
		}
	}

	activities, total := h.storage.List(runID, q)

	slog.Debug("get activities",
		slog.String("run_id", runID),
		slog.Int("count", len(activities)),
		slog.Int("total", total),
	)

	c.JSON(http.StatusOK, ActivitiesResponse{
		Activities: activities,
		Total:      total,
	})
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
