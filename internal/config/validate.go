package config

import (
	"fmt"
	"time"
)

const maxIntervalDays = 365

// Validate performs business-rule validation on the loaded configuration
// and resolves derived fields. Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	if c.Photos.Dir == "" {
		return fmt.Errorf("photos.dir is required")
	}
	if c.Photos.MaxBytes <= 0 {
		return fmt.Errorf("photos.max_bytes must be > 0 (got %d)", c.Photos.MaxBytes)
	}
	if c.Photos.UploadsPerMinute < 0 {
		return fmt.Errorf("photos.uploads_per_minute must be >= 0 (got %d)", c.Photos.UploadsPerMinute)
	}

	return nil
}

func (s *ScheduleConfig) validate() error {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	if s.DefaultWateringIntervalDays < 1 || s.DefaultWateringIntervalDays > maxIntervalDays {
		return fmt.Errorf("default_watering_interval_days must be between 1 and %d (got %d)",
			maxIntervalDays, s.DefaultWateringIntervalDays)
	}
	if s.DefaultFertilizingIntervalDays < 1 || s.DefaultFertilizingIntervalDays > maxIntervalDays {
		return fmt.Errorf("default_fertilizing_interval_days must be between 1 and %d (got %d)",
			maxIntervalDays, s.DefaultFertilizingIntervalDays)
	}
	if s.MaxRangeDays < 1 {
		return fmt.Errorf("max_range_days must be > 0 (got %d)", s.MaxRangeDays)
	}

	return nil
}
