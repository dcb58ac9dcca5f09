package schedule

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// UnknownPlantName labels completed events whose plant has no schedule.
const UnknownPlantName = "Unknown plant"

const completedColor = "#4f9f6c"

var typeColors = map[domain.CareEventType]string{
	domain.CareEventWater:     "#3772ff",
	domain.CareEventFertilize: "#f59f00",
	domain.CareEventRepot:     "#9c36b5",
}

// EventColor returns the calendar color of an event.
func EventColor(t domain.CareEventType, completed bool) string {
	if completed {
		return completedColor
	}
	return typeColors[t]
}

// EventTitle returns the calendar label of an event.
func EventTitle(plantName string, t domain.CareEventType, completed bool) string {
	state := "Planned"
	if completed {
		state = "Done"
	}
	return fmt.Sprintf("%s · %s · %s", state, plantName, t)
}

// PlannedEventID derives a stable identifier for a projected occurrence.
func PlannedEventID(plantID uuid.UUID, t domain.CareEventType, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", plantID, t, at.UTC().Format(time.RFC3339Nano))
}

// inRange reports whether t lies in the closed interval [from, to].
func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// ReconcileEvents merges projected occurrences from schedules with the
// completed logs into one feed ordered by StartsAt. Only instants inside
// [from, to] are kept. At equal instants planned events precede completed ones.
func ReconcileEvents(schedules []domain.CareSchedule, logs []domain.CareLog, from, to time.Time) []domain.CareScheduleEvent {
	names := make(map[uuid.UUID]string, len(schedules))
	for _, s := range schedules {
		names[s.PlantID] = s.PlantName
	}

	events := make([]domain.CareScheduleEvent, 0, len(logs)+len(schedules))

	for _, s := range schedules {
		for _, t := range domain.CareEventTypes {
			at := s.NextAt(t)
			if !validInstant(at) || !inRange(*at, from, to) {
				continue
			}
			status := s.StatusOf(t)
			events = append(events, domain.CareScheduleEvent{
				ID:        PlannedEventID(s.PlantID, t, *at),
				PlantID:   s.PlantID,
				PlantName: s.PlantName,
				Type:      t,
				StartsAt:  *at,
				Status:    &status,
				Title:     EventTitle(s.PlantName, t, false),
				Color:     EventColor(t, false),
			})
		}
	}

	for _, l := range logs {
		if !inRange(l.OccurredAt, from, to) {
			continue
		}
		name, ok := names[l.PlantID]
		if !ok {
			name = UnknownPlantName
		}
		events = append(events, domain.CareScheduleEvent{
			ID:             l.ID.String(),
			PlantID:        l.PlantID,
			PlantName:      name,
			Type:           l.EventType,
			StartsAt:       l.OccurredAt,
			Completed:      true,
			FertilizerName: l.FertilizerName,
			Note:           l.Note,
			Title:          EventTitle(name, l.EventType, true),
			Color:          EventColor(l.EventType, true),
		})
	}

	slices.SortStableFunc(events, func(a, b domain.CareScheduleEvent) int {
		return a.StartsAt.Compare(b.StartsAt)
	})

	return events
}
