package stub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewBucketStorage()).Register(r)
	return r
}

func seed(t *testing.T, r *gin.Engine, body string) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/seed?run_id=r1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed status = %d, body = %s", w.Code, w.Body.String())
	}
}

func list(t *testing.T, r *gin.Engine, query string) ActivitiesResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/useractivity?run_id=r1&"+query, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp ActivitiesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	return resp
}

const seedBody = `{"buckets":[
  {"username":"alice","start_time":"2025-01-01T00:00:00Z","end_time":"2025-01-11T00:00:00Z","count":10},
  {"username":"bob","start_time":"2025-01-05T00:00:00Z","end_time":"2025-01-06T00:00:00Z","count":4,"activity_type":"REVIEW"}
]}`

func TestSeedAndList(t *testing.T) {
	r := newRouter()
	seed(t, r, seedBody)

	resp := list(t, r, "limit=5")
	if resp.Total != 14 {
		t.Errorf("Total = %d, want 14", resp.Total)
	}
	if len(resp.Activities) != 5 {
		t.Errorf("got %d activities, want 5", len(resp.Activities))
	}

	// newest first by default
	for i := 1; i < len(resp.Activities); i++ {
		if *resp.Activities[i-1].CreateTimestamp < *resp.Activities[i].CreateTimestamp {
			t.Errorf("activities not sorted newest first at %d", i)
		}
	}
}

func TestListFilters(t *testing.T) {
	r := newRouter()
	seed(t, r, seedBody)

	resp := list(t, r, "activity_type=REVIEW")
	if resp.Total != 4 {
		t.Errorf("Total = %d, want 4", resp.Total)
	}

	userID := resp.Activities[0].UserID
	resp = list(t, r, "user_id="+userID)
	if resp.Total != 4 {
		t.Errorf("Total for bob = %d, want 4", resp.Total)
	}

	resp = list(t, r, "offset=100")
	if len(resp.Activities) != 0 || resp.Total != 14 {
		t.Errorf("offset past end = %d activities, total %d", len(resp.Activities), resp.Total)
	}
}

func TestListIsDeterministic(t *testing.T) {
	r := newRouter()
	seed(t, r, seedBody)

	first := list(t, r, "sort_column=3&asc=true")
	second := list(t, r, "sort_column=3&asc=true")

	for i := range first.Activities {
		if first.Activities[i].ID != second.Activities[i].ID {
			t.Fatalf("listing differs at %d", i)
		}
	}
}

func TestReset(t *testing.T) {
	r := newRouter()
	seed(t, r, seedBody)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reset?run_id=r1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}

	if resp := list(t, r, ""); resp.Total != 0 {
		t.Errorf("Total after reset = %d, want 0", resp.Total)
	}
}

func TestSeedRejectsBadInput(t *testing.T) {
	tests := []string{
		`{"buckets":[{"username":"a","start_time":"nope","end_time":"2025-01-01T00:00:00Z","count":1}]}`,
		`{"buckets":[{"start_time":"2025-01-01T00:00:00Z","end_time":"2025-01-02T00:00:00Z","count":1}]}`,
		`{"buckets":`,
	}

	for _, body := range tests {
		r := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/seed", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d for %s, want 400", w.Code, body)
		}
	}
}
