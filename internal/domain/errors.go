package domain

import "errors"

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSourceUnavailable = errors.New("activity source unavailable")
)
