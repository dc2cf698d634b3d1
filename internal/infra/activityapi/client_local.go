//go:build !gcloud

package activityapi

import (
	"net/http"
	"time"
)

// newHTTPClient is unauthenticated outside Google Cloud; the auth cookie is
// the only credential.
func newHTTPClient(_ string) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}
