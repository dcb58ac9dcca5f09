package schedule

import (
	"strings"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// instantLayouts are tried in order by ParseInstant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseInstant parses an ISO-8601 timestamp or date. An explicit offset is
// honoured; a value without one is wall-clock time in loc (UTC when loc is
// nil), so a bare date means midnight on that day in the caller's calendar.
// Blank or malformed input yields nil.
func ParseInstant(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}

func validInstant(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// CalculateNextCareAt returns the next occurrence of a recurring care action.
//
// A present override wins and is returned as is; an invalid override yields
// nil. Otherwise the interval is added, in calendar days, to the last
// occurrence or, when there is none, to fallbackFrom. The reference's time of
// day is kept. Nil is returned when no valid reference exists or the
// interval is not positive.
func CalculateNextCareAt(intervalDays int, lastOccurredAt, overrideAt, fallbackFrom *time.Time) *time.Time {
	if overrideAt != nil {
		if !validInstant(overrideAt) {
			return nil
		}
		at := *overrideAt
		return &at
	}

	if intervalDays < 1 {
		return nil
	}

	ref := lastOccurredAt
	if !validInstant(ref) {
		ref = fallbackFrom
	}
	if !validInstant(ref) {
		return nil
	}

	next := ref.AddDate(0, 0, intervalDays)
	return &next
}

// Status classifies nextAt by calendar day relative to now. Both instants
// are read in now's location, so anything due later today is DUE.
func Status(nextAt *time.Time, now time.Time) domain.ScheduleStatus {
	if !validInstant(nextAt) {
		return domain.ScheduleStatusUnscheduled
	}

	diff := civilDay(nextAt.In(now.Location())) - civilDay(now)
	switch {
	case diff < 0:
		return domain.ScheduleStatusOverdue
	case diff == 0:
		return domain.ScheduleStatusDue
	default:
		return domain.ScheduleStatusUpcoming
	}
}

// LatestLogByType returns the log of type t with the greatest OccurredAt,
// or nil if logs holds none of that type.
func LatestLogByType(logs []domain.CareLog, t domain.CareEventType) *domain.CareLog {
	var latest *domain.CareLog
	for i := range logs {
		if logs[i].EventType != t {
			continue
		}
		if latest == nil || logs[i].OccurredAt.After(latest.OccurredAt) {
			latest = &logs[i]
		}
	}
	return latest
}

// ElapsedDays returns the number of calendar days from since to now, both
// read in now's location.
func ElapsedDays(since, now time.Time) int {
	return int(civilDay(now) - civilDay(since.In(now.Location())))
}

// BuildSchedule derives the schedule of one plant. latest holds the most
// recent log per care action. Without a profile, watering and fertilizing
// stay unscheduled; repotting always follows plant.NextRepotAt.
func BuildSchedule(
	plant domain.Plant,
	profile *domain.CareProfile,
	latest map[domain.CareEventType]*domain.CareLog,
	now time.Time,
) domain.CareSchedule {
	s := domain.CareSchedule{
		PlantID:   plant.ID,
		PlantName: plant.Name,
	}

	if profile != nil {
		fallback := profile.CreatedAt
		if fallback.IsZero() {
			fallback = plant.CreatedAt
		}

		next := func(t domain.CareEventType) *time.Time {
			var last *time.Time
			if l := latest[t]; l != nil {
				last = &l.OccurredAt
			}
			return CalculateNextCareAt(profile.IntervalFor(t), last, profile.OverrideFor(t), &fallback)
		}

		s.NextWateringAt = next(domain.CareEventWater)
		s.NextFertilizingAt = next(domain.CareEventFertilize)
	}

	if validInstant(plant.NextRepotAt) {
		at := *plant.NextRepotAt
		s.NextRepotAt = &at
	}

	s.WateringStatus = Status(s.NextWateringAt, now)
	s.FertilizingStatus = Status(s.NextFertilizingAt, now)
	s.RepotStatus = Status(s.NextRepotAt, now)

	return s
}
