package dashboard

import (
	"fmt"

	"scheduledash/models"
)

// ScheduleStore holds the weekly schedule being edited. Writes are not
// validated so the user can type through intermediate invalid states;
// validation happens at submission.
type ScheduleStore struct {
	data models.WeeklySchedule
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{data: models.DefaultSchedule()}
}

// Replace swaps in a freshly fetched schedule.
func (s *ScheduleStore) Replace(schedule models.WeeklySchedule) {
	s.data = schedule.Clone()
}

// SetField updates one time field of one weekday.
func (s *ScheduleStore) SetField(day, field, value string) error {
	if !models.IsWeekday(day) {
		return fmt.Errorf("unknown weekday %q", day)
	}
	hours := s.data[day]
	switch field {
	case "startTime":
		hours.StartTime = value
	case "endTime":
		hours.EndTime = value
	default:
		return fmt.Errorf("unknown schedule field %q", field)
	}
	s.data[day] = hours
	return nil
}

// Snapshot returns a copy of the schedule for submission or display.
func (s *ScheduleStore) Snapshot() models.WeeklySchedule {
	return s.data.Clone()
}
