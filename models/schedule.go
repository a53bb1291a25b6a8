package models

// Weekdays lists the working days shown on the dashboard, in display order.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

// DayHours holds the working hours for a single weekday. Times are
// zero-padded 24-hour "HH:MM" strings, so they compare lexicographically.
type DayHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WeeklySchedule maps a weekday name to its working hours.
type WeeklySchedule map[string]DayHours

// DefaultSchedule returns the fallback schedule used until the remote API
// has been consulted.
func DefaultSchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		schedule[day] = DayHours{StartTime: "09:00", EndTime: "17:30"}
	}
	return schedule
}

// Clone returns an independent copy of the schedule.
func (ws WeeklySchedule) Clone() WeeklySchedule {
	out := make(WeeklySchedule, len(ws))
	for day, hours := range ws {
		out[day] = hours
	}
	return out
}

// IsWeekday reports whether name is one of the known weekdays.
func IsWeekday(name string) bool {
	for _, day := range Weekdays {
		if day == name {
			return true
		}
	}
	return false
}
