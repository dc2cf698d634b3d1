package config

import (
	"os"
	"strings"
)

const (
	activitySourceEnv     = "ACTIVITY_SOURCE"
	activityAPIURLEnv     = "ACTIVITY_API_URL"
	activityAPITokenEnv   = "ACTIVITY_API_TOKEN"
	activityDBDSNEnv      = "ACTIVITY_DB_DSN"
	activityFetchLimitEnv = "ACTIVITY_FETCH_LIMIT"

	defaultActivityDBDSN      = "activity.db"
	defaultActivityFetchLimit = 100
)

type SourceKind string

const (
	SourceKindHTTP SourceKind = "http"
	SourceKindSQL  SourceKind = "sql"
)

type SourceConfig struct {
	Kind       SourceKind
	APIURL     string
	APIToken   string
	DBDSN      string
	FetchLimit int
}

func LoadSourceConfig() (*SourceConfig, error) {
	kind := SourceKind(strings.ToLower(os.Getenv(activitySourceEnv)))
	if kind == "" {
		kind = SourceKindHTTP
	}
	if kind != SourceKindHTTP && kind != SourceKindSQL {
		return nil, ErrInvalidSourceKind
	}

	dsn := os.Getenv(activityDBDSNEnv)
	if dsn == "" {
		dsn = defaultActivityDBDSN
	}

	return &SourceConfig{
		Kind:       kind,
		APIURL:     strings.TrimRight(os.Getenv(activityAPIURLEnv), "/"),
		APIToken:   os.Getenv(activityAPITokenEnv),
		DBDSN:      dsn,
		FetchLimit: positiveIntEnv(activityFetchLimitEnv, defaultActivityFetchLimit),
	}, nil
}

func (c *SourceConfig) Validate() error {
	switch c.Kind {
	case SourceKindHTTP:
		if c.APIURL == "" {
			return ErrActivityAPIURLMissing
		}
	case SourceKindSQL:
		if c.DBDSN == "" {
			return ErrActivityDBDSNMissing
		}
	default:
		return ErrInvalidSourceKind
	}
	return nil
}
