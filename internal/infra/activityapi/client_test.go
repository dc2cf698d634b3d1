package activityapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

func TestListActivitiesSendsCriteria(t *testing.T) {
	var gotQuery map[string]string
	var gotCookie string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/api/useractivity" {
			t.Errorf("path = %q, want /docs/api/useractivity", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		if c, err := r.Cookie("auth_token"); err == nil {
			gotCookie = c.Value
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"activities":[{"id":"a1","user_id":"u1","username":"alice","activity_type":"EDIT","progress":120,"create_timestamp":1700000000000}],"total":7}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTPClient(srv.URL+"/docs", "secret", srv.Client())

	page, err := client.ListActivities(context.Background(), domain.ActivityCriteria{
		UserID:       "u1",
		ActivityType: "EDIT",
		Limit:        20,
		Offset:       40,
		SortColumn:   domain.SortByProgress,
		Ascending:    true,
	})
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}

	want := map[string]string{
		"user_id":       "u1",
		"activity_type": "EDIT",
		"limit":         "20",
		"offset":        "40",
		"sort_column":   "3",
		"asc":           "true",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query[%q] = %q, want %q", k, gotQuery[k], v)
		}
	}
	if _, ok := gotQuery["entity_id"]; ok {
		t.Error("entity_id sent without a filter")
	}
	if gotCookie != "secret" {
		t.Errorf("auth cookie = %q, want secret", gotCookie)
	}

	if page.Total != 7 || len(page.Activities) != 1 {
		t.Fatalf("page = %+v", page)
	}
	record := page.Activities[0]
	if record.Progress != 100 {
		t.Errorf("Progress = %d, want clamped 100", record.Progress)
	}
	if created, ok := record.CreatedAt(); !ok || created.UnixMilli() != 1700000000000 {
		t.Errorf("CreatedAt() = %v, %v", created, ok)
	}
	if _, ok := record.PlannedAt(); ok {
		t.Error("PlannedAt() reported a value the response omitted")
	}
}

func TestListActivitiesEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0})
	}))
	defer srv.Close()

	client := NewClientWithHTTPClient(srv.URL, "", srv.Client())

	page, err := client.ListActivities(context.Background(), domain.ActivityCriteria{})
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}
	if page.Activities == nil {
		t.Error("Activities is nil, want empty slice")
	}
}

func TestListActivitiesErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non 200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"activities":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClientWithHTTPClient(srv.URL, "", srv.Client())
			if _, err := client.ListActivities(context.Background(), domain.ActivityCriteria{}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
