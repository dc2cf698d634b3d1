package layoutrecorder

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Setenv("LAYOUT_RESULTS_DISABLED", "true")
	t.Setenv("INFLUXDB_URL", "")
	t.Setenv("INFLUXDB_BUCKET", "")
	t.Setenv("BIGQUERY_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj-1")

	cfg := LoadConfig()

	if !cfg.Disabled {
		t.Error("Disabled = false, want true")
	}
	if cfg.InfluxDBURL != "http://localhost:8086" {
		t.Errorf("InfluxDBURL = %q", cfg.InfluxDBURL)
	}
	if cfg.InfluxDBBucket != "timeline_layouts" {
		t.Errorf("InfluxDBBucket = %q", cfg.InfluxDBBucket)
	}
	if cfg.BigQueryProjectID != "proj-1" {
		t.Errorf("BigQueryProjectID = %q, want proj-1", cfg.BigQueryProjectID)
	}
}
