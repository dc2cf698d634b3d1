package stub

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"
	"time"
)

type Bucket struct {
	Username     string
	StartTime    time.Time
	EndTime      time.Time
	Count        int
	ActivityType string
	Duration     time.Duration
}

// Query mirrors the filters and paging of the activity endpoint.
type Query struct {
	UserID       string
	ActivityType string
	EntityID     string
	Limit        int
	Offset       int
	SortColumn   int
	Ascending    bool
}

type BucketStorage struct {
	mu      sync.RWMutex
	buckets map[string][]*Bucket // runID -> buckets
}

func NewBucketStorage() *BucketStorage {
	return &BucketStorage{
		buckets: make(map[string][]*Bucket),
	}
}

func (s *BucketStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, runID)
}

func (s *BucketStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets = make(map[string][]*Bucket)
}

func (s *BucketStorage) AddBucket(runID string, bucket *Bucket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[runID] = append(s.buckets[runID], bucket)
}

// List returns the page of generated activities matching q and the number
// of matches before paging.
func (s *BucketStorage) List(runID string, q Query) ([]ActivityResponse, int) {
	s.mu.RLock()
	buckets := slices.Clone(s.buckets[runID])
	s.mu.RUnlock()

	var all []ActivityResponse
	for _, bucket := range buckets {
		for _, a := range generateActivities(runID, bucket) {
			if q.UserID != "" && a.UserID != q.UserID {
				continue
			}
			if q.ActivityType != "" && a.ActivityType != q.ActivityType {
				continue
			}
			if q.EntityID != "" && a.EntityID != q.EntityID {
				continue
			}
			all = append(all, a)
		}
	}

	slices.SortStableFunc(all, func(a, b ActivityResponse) int {
		c := compareColumn(a, b, q.SortColumn)
		if !q.Ascending {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})

	total := len(all)
	if q.Offset >= total {
		return []ActivityResponse{}, total
	}
	end := total
	if q.Limit > 0 && q.Offset+q.Limit < total {
		end = q.Offset + q.Limit
	}
	return all[q.Offset:end], total
}

func compareColumn(a, b ActivityResponse, column int) int {
	switch column {
	case 1:
		return cmp.Compare(a.Username, b.Username)
	case 2:
		return cmp.Compare(a.ActivityType, b.ActivityType)
	case 3:
		return cmp.Compare(a.Progress, b.Progress)
	case 4:
		return cmp.Compare(deref(a.PlannedDateTimestamp), deref(b.PlannedDateTimestamp))
	default:
		return cmp.Compare(deref(a.CreateTimestamp), deref(b.CreateTimestamp))
	}
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func generateActivities(runID string, bucket *Bucket) []ActivityResponse {
	if bucket.Count <= 0 {
		return nil
	}

	bucketDuration := bucket.EndTime.Sub(bucket.StartTime)
	if bucketDuration <= 0 {
		bucketDuration = time.Hour
	}

	interval := bucketDuration / time.Duration(bucket.Count)
	if interval == 0 {
		interval = time.Second
	}

	userID := "user-" + shortHash(runID+"/"+bucket.Username)
	activities := make([]ActivityResponse, 0, bucket.Count)

	for i := 0; i < bucket.Count; i++ {
		created := bucket.StartTime.Add(time.Duration(i) * interval)
		id := generateActivityID(runID, bucket.Username, bucket.StartTime, i)

		// progress cycles through not started, in progress and completed
		progress := (i * 25) % 125
		if progress > 100 {
			progress = 100
		}

		createMs := created.UnixMilli()
		plannedMs := created.Add(bucket.Duration).UnixMilli()

		a := ActivityResponse{
			ID:                   id,
			UserID:               userID,
			Username:             bucket.Username,
			ActivityType:         bucket.ActivityType,
			EntityID:             "doc-" + id[len(id)-8:],
			EntityName:           fmt.Sprintf("%s #%d", bucket.ActivityType, i+1),
			Progress:             progress,
			PlannedDateTimestamp: &plannedMs,
			CreateTimestamp:      &createMs,
		}
		if progress == 100 {
			completedMs := created.Add(bucket.Duration / 2).UnixMilli()
			a.CompletedDateTimestamp = &completedMs
		}

		activities = append(activities, a)
	}

	return activities
}

func shortHash(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:4])
}

func generateActivityID(runID, username string, bucketStart time.Time, index int) string {
	input := fmt.Sprintf("%s-%s-%s-%d", runID, username, bucketStart.Format("20060102150405"), index)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%s-%s", runID, hex.EncodeToString(hash[:8]))
}
