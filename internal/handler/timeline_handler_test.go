package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/activity"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/gantt"
	"github.com/KasumiMercury/primind-activity-timeline/internal/testutil"
)

var fixedNow = time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T, source domain.ActivitySource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return fixedNow }
	svc := activity.NewService(source, nil, gantt.NewEngine(gantt.DefaultOptions(), clock), nil, nil, activity.Options{
		SourceName:      "http",
		DefaultDuration: 7 * 24 * time.Hour,
		Now:             clock,
	})

	r := gin.New()
	NewTimelineHandler(svc, 100).Register(r.Group("/api/v1"))
	return r
}

func samplePage(t *testing.T) *domain.ActivityPage {
	t.Helper()
	var page domain.ActivityPage
	if err := json.Unmarshal([]byte(testutil.ActivityJSON), &page); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return &page
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHandleTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockActivitySource(ctrl)

	source.EXPECT().ListActivities(gomock.Any(), domain.ActivityCriteria{
		UserID:     "u1",
		Limit:      20,
		Offset:     5,
		SortColumn: domain.SortByProgress,
		Ascending:  true,
	}).Return(samplePage(t), nil)

	r := setupRouter(t, source)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline?user_id=u1&limit=20&offset=5&sort_column=3&asc=true", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[timelineResponse](t, w)
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
	if len(resp.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(resp.Groups))
	}

	alice := resp.Groups[0]
	if alice.GroupKey != "alice" || alice.LaneCount != 2 {
		t.Errorf("alice group = %+v", alice)
	}

	first := alice.Tasks[0]
	if first.ID != "a1" || first.DisplayName != "Budget" || first.Status != "in_progress" || first.StatusLabel != "In progress (50%)" {
		t.Errorf("first task = %+v", first)
	}
	if first.LeftPercent < 0.5 || first.LeftPercent+first.WidthPercent > 99+1e-9 {
		t.Errorf("first task position out of bounds: %+v", first)
	}

	bob := resp.Groups[1]
	if bob.Tasks[0].CSSClass != "progress-bar-success" {
		t.Errorf("bob css class = %q", bob.Tasks[0].CSSClass)
	}
}

func TestHandleTimelineDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockActivitySource(ctrl)

	source.EXPECT().ListActivities(gomock.Any(), domain.ActivityCriteria{Limit: 100}).
		Return(&domain.ActivityPage{Activities: []domain.ActivityRecord{}}, nil)

	r := setupRouter(t, source)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[timelineResponse](t, w)
	if resp.Groups == nil || len(resp.Groups) != 0 {
		t.Errorf("Groups = %v, want empty", resp.Groups)
	}
	wantFrom := fixedNow.AddDate(0, 0, -30)
	if !resp.Window.From.Equal(wantFrom) {
		t.Errorf("Window.From = %v, want %v", resp.Window.From, wantFrom)
	}
}

func TestHandleTimelineInvalidQuery(t *testing.T) {
	tests := []string{
		"limit=abc",
		"limit=0",
		"offset=-1",
		"sort_column=9",
		"asc=maybe",
	}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := setupRouter(t, domain.NewMockActivitySource(ctrl))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline?"+query, nil))

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			resp := decode[errorResponse](t, w)
			if resp.Error != "invalid_request" {
				t.Errorf("error = %q, want invalid_request", resp.Error)
			}
		})
	}
}

func TestHandleTimelineSourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockActivitySource(ctrl)
	source.EXPECT().ListActivities(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	r := setupRouter(t, source)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestHandleTimelineCapsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockActivitySource(ctrl)
	source.EXPECT().ListActivities(gomock.Any(), domain.ActivityCriteria{Limit: maxListLimit}).
		Return(&domain.ActivityPage{}, nil)

	r := setupRouter(t, source)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/timeline?limit=50000", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHandleLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := setupRouter(t, domain.NewMockActivitySource(ctrl))

	body, err := json.Marshal(map[string]any{"activities": samplePage(t).Activities})
	if err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/layout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[timelineResponse](t, w)
	if resp.Total != 3 || len(resp.Groups) != 2 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestHandleLayoutInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"activities": [`},
		{name: "missing activities", body: `{}`},
		{name: "wrong type", body: `{"activities": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := setupRouter(t, domain.NewMockActivitySource(ctrl))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline/layout", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockActivitySource(ctrl)
	source.EXPECT().ListActivities(gomock.Any(), gomock.Any()).Return(samplePage(t), nil)

	r := setupRouter(t, source)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/activity/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[statsResponse](t, w)
	if len(resp.Labels) != 2 || resp.Labels[0] != "alice" || resp.Labels[1] != "bob" {
		t.Errorf("Labels = %v", resp.Labels)
	}
	if resp.InProgress[0] != 50 || resp.NotStarted[0] != 50 {
		t.Errorf("alice percentages = %v / %v", resp.InProgress[0], resp.NotStarted[0])
	}
	if resp.Completed[1] != 100 {
		t.Errorf("bob completed = %v, want 100", resp.Completed[1])
	}
}
