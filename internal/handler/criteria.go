package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

const maxListLimit = 1000

// parseCriteria reads the activity listing filters from the query string.
func parseCriteria(c *gin.Context, defaultLimit int) (domain.ActivityCriteria, error) {
	criteria := domain.ActivityCriteria{
		UserID:       c.Query("user_id"),
		ActivityType: c.Query("activity_type"),
		EntityID:     c.Query("entity_id"),
		Limit:        defaultLimit,
		SortColumn:   domain.SortByCreateDate,
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return criteria, fmt.Errorf("limit must be a positive integer")
		}
		criteria.Limit = min(limit, maxListLimit)
	}

	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return criteria, fmt.Errorf("offset must be a non-negative integer")
		}
		criteria.Offset = offset
	}

	if v := c.Query("sort_column"); v != "" {
		col, err := strconv.Atoi(v)
		if err != nil || !domain.SortColumn(col).Valid() {
			return criteria, fmt.Errorf("sort_column must be between %d and %d", domain.SortByCreateDate, domain.SortByPlannedDate)
		}
		criteria.SortColumn = domain.SortColumn(col)
	}

	if v := c.Query("asc"); v != "" {
		asc, err := strconv.ParseBool(v)
		if err != nil {
			return criteria, fmt.Errorf("asc must be a boolean")
		}
		criteria.Ascending = asc
	}

	return criteria, nil
}
