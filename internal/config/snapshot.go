package config

import "time"

const (
	snapshotTTLSecondsEnv = "SNAPSHOT_TTL_SECONDS"

	defaultSnapshotTTLSeconds = 60
)

type SnapshotConfig struct {
	TTL time.Duration
}

func LoadSnapshotConfig() *SnapshotConfig {
	ttl := nonNegativeIntEnv(snapshotTTLSecondsEnv, defaultSnapshotTTLSeconds)
	return &SnapshotConfig{
		TTL: time.Duration(ttl) * time.Second,
	}
}

func (c *SnapshotConfig) Enabled() bool {
	return c != nil && c.TTL > 0
}
