package snapshot

import "errors"

var (
	ErrInvalidSnapshotData = errors.New("invalid snapshot data")
	ErrInvalidTTL          = errors.New("snapshot ttl must be positive")
)
