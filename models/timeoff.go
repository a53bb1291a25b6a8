package models

// TimeOffType distinguishes a date-range vacation from a single day off.
type TimeOffType string

const (
	TimeOffVacation TimeOffType = "vacation"
	TimeOffDayOff   TimeOffType = "dayOff"
)

// TimeOffStatus is the approval state assigned by the remote system.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

// TimeOffRecord is the canonical shape of a time-off entry. Dates are ISO
// "YYYY-MM-DD" strings. For a dayOff entry EndDate always equals StartDate.
type TimeOffRecord struct {
	ID          string        `json:"id"`
	Type        TimeOffType   `json:"type"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Description string        `json:"description,omitempty"`
	Status      TimeOffStatus `json:"status,omitempty"`
}

// RawTimeOff is a time-off entry as returned by the remote API. Depending on
// the backing store the identifier arrives either as "id" or as "_id"; no
// code outside Normalize may read either field directly.
type RawTimeOff struct {
	ID          string        `json:"id"`
	AlternateID string        `json:"_id"`
	Type        TimeOffType   `json:"type"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Description string        `json:"description,omitempty"`
	Status      TimeOffStatus `json:"status,omitempty"`
}

// Normalize maps a raw API record to the canonical record shape, resolving
// the identifier-field fallback. It is idempotent and must be applied to
// every record that crosses the API boundary.
func (r RawTimeOff) Normalize() TimeOffRecord {
	id := r.ID
	if id == "" {
		id = r.AlternateID
	}
	return TimeOffRecord{
		ID:          id,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		Status:      r.Status,
	}
}
