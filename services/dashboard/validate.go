package dashboard

import (
	"time"

	"scheduledash/models"
)

// DateLayout is the ISO calendar-date layout used throughout the dashboard.
// Zero-padded dates compare correctly as plain strings.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in UTC. The dashboard normalizes
// all "past date" checks to UTC rather than the browser's local midnight, so
// behaviour near day boundaries is deterministic.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// ValidateSchedule checks every weekday of the schedule. A weekday appears
// in the result iff both times are set and the start is not before the end;
// absence means the weekday is valid.
func ValidateSchedule(schedule models.WeeklySchedule) map[string]string {
	errs := make(map[string]string)
	for day, hours := range schedule {
		if hours.StartTime != "" && hours.EndTime != "" && hours.StartTime >= hours.EndTime {
			errs[day] = "End time must be after start time"
		}
	}
	return errs
}

// ValidateTimeOff checks a time-off candidate against today's date. Rules
// short-circuit per field: a missing start date suppresses the past-date
// check but not the end-date checks. An empty result means the candidate is
// acceptable for submission.
func ValidateTimeOff(candidate models.TimeOffRecord, today string) map[string]string {
	errs := make(map[string]string)

	if candidate.Type == "" {
		errs["type"] = "Please select a type"
	}

	if candidate.StartDate == "" {
		errs["startDate"] = "Please select a start date"
	} else if candidate.StartDate < today {
		errs["startDate"] = "Start date cannot be in the past"
	}

	if candidate.Type == models.TimeOffVacation {
		if candidate.EndDate == "" {
			errs["endDate"] = "Please select an end date"
		} else if candidate.EndDate < candidate.StartDate {
			errs["endDate"] = "End date must be after start date"
		}
	}

	return errs
}
