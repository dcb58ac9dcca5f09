package domain

// CareEventType identifies a recurring care action.
type CareEventType string

const (
	CareEventWater     CareEventType = "WATER"
	CareEventFertilize CareEventType = "FERTILIZE"
	CareEventRepot     CareEventType = "REPOT"
)

// CareEventTypes lists every care action in display order.
var CareEventTypes = []CareEventType{CareEventWater, CareEventFertilize, CareEventRepot}

func (t CareEventType) String() string { return string(t) }

func (t CareEventType) IsValid() bool {
	switch t {
	case CareEventWater, CareEventFertilize, CareEventRepot:
		return true
	}
	return false
}

// ScheduleStatus classifies a next-occurrence date relative to today.
type ScheduleStatus string

const (
	ScheduleStatusOverdue     ScheduleStatus = "OVERDUE"
	ScheduleStatusDue         ScheduleStatus = "DUE"
	ScheduleStatusUpcoming    ScheduleStatus = "UPCOMING"
	ScheduleStatusUnscheduled ScheduleStatus = "UNSCHEDULED"
)

func (s ScheduleStatus) String() string { return string(s) }

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusOverdue, ScheduleStatusDue, ScheduleStatusUpcoming, ScheduleStatusUnscheduled:
		return true
	}
	return false
}
