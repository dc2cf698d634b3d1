package config

import "time"

const (
	layoutDefaultPadDaysEnv      = "LAYOUT_DEFAULT_PAD_DAYS"
	layoutMinVisibleHoursEnv     = "LAYOUT_MIN_VISIBLE_HOURS"
	layoutDefaultDurationDaysEnv = "LAYOUT_DEFAULT_DURATION_DAYS"

	defaultLayoutPadDays         = 30
	defaultLayoutMinVisibleHours = 36
	defaultLayoutDurationDays    = 7
)

type LayoutConfig struct {
	DefaultPadDays     int
	MinVisibleDuration time.Duration
	// DefaultDuration is the length given to an activity with neither a
	// completed nor a planned date.
	DefaultDuration time.Duration
}

func LoadLayoutConfig() *LayoutConfig {
	padDays := nonNegativeIntEnv(layoutDefaultPadDaysEnv, defaultLayoutPadDays)
	minVisibleHours := positiveIntEnv(layoutMinVisibleHoursEnv, defaultLayoutMinVisibleHours)
	durationDays := positiveIntEnv(layoutDefaultDurationDaysEnv, defaultLayoutDurationDays)

	return &LayoutConfig{
		DefaultPadDays:     padDays,
		MinVisibleDuration: time.Duration(minVisibleHours) * time.Hour,
		DefaultDuration:    time.Duration(durationDays) * 24 * time.Hour,
	}
}
