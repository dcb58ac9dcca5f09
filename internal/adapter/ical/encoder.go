// Package ical renders care events as an iCalendar (RFC 5545) feed.
package ical

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const (
	productID  = "-//plantcare//care calendar//EN"
	uidDomain  = "plantcare"
	propColor  = ics.ComponentProperty("COLOR")
	propStatus = ics.ComponentProperty("X-PLANTCARE-STATUS")
)

// Encoder writes care events as all-day VEVENTs.
type Encoder struct {
	name string
}

// NewEncoder returns an encoder whose calendars carry the given display name.
func NewEncoder(name string) *Encoder {
	return &Encoder{name: name}
}

// EncodeEvents renders events as one VCALENDAR. Each event covers the
// calendar day of its StartsAt, taken in now's location.
func (e *Encoder) EncodeEvents(events []domain.CareScheduleEvent, now time.Time) ([]byte, error) {
	loc := now.Location()

	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)
	if e.name != "" {
		cal.SetXWRCalName(e.name)
	}
	cal.SetXWRTimezone(loc.String())

	for _, ev := range events {
		day := ev.StartsAt.In(loc)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

		vev := cal.AddEvent(ev.ID + "@" + uidDomain)
		vev.SetDtStampTime(now)
		vev.SetAllDayStartAt(start)
		vev.SetAllDayEndAt(start.AddDate(0, 0, 1))
		vev.SetSummary(ev.Title)
		vev.SetProperty(ics.ComponentPropertyCategories, ev.Type.String())
		vev.SetProperty(propColor, ev.Color)
		if ev.Status != nil {
			vev.SetProperty(propStatus, ev.Status.String())
		}
		if desc := description(ev); desc != "" {
			vev.SetDescription(desc)
		}
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func description(ev domain.CareScheduleEvent) string {
	var lines []string
	if ev.FertilizerName != nil {
		lines = append(lines, "Fertilizer: "+*ev.FertilizerName)
	}
	if ev.Note != nil {
		lines = append(lines, *ev.Note)
	}
	return strings.Join(lines, "\n")
}
