package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidSourceKind     = errors.New("ACTIVITY_SOURCE must be one of: http, sql")
	ErrActivityAPIURLMissing = errors.New("ACTIVITY_API_URL is required when ACTIVITY_SOURCE=http")
	ErrActivityDBDSNMissing  = errors.New("ACTIVITY_DB_DSN is required when ACTIVITY_SOURCE=sql")
)
