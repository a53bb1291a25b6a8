package dashboard

import (
	"context"
	"io"

	"scheduledash/models"
)

// ScheduleAPI is the remote schedule collaborator, bound to the signed-in
// user's bearer token by the transport layer.
type ScheduleAPI interface {
	FetchSchedule(ctx context.Context) (models.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) (models.WeeklySchedule, error)
}

// TimeOffAPI is the remote time-off collaborator. Every record it returns is
// raw and must pass through the normalizer before entering the store.
type TimeOffAPI interface {
	ListTimeOff(ctx context.Context) ([]models.RawTimeOff, error)
	CreateTimeOff(ctx context.Context, candidate models.TimeOffRecord) (models.RawTimeOff, error)
	UpdateTimeOff(ctx context.Context, id string, patch models.TimeOffRecord) (models.RawTimeOff, error)
	DeleteTimeOff(ctx context.Context, id string) error
}

// Session is one user's dashboard session: the sole owner of the schedule
// and time-off stores, the drafts, the notification, and the busy flag.
type Session interface {
	// Load fetches the schedule and time-off list from the remote API.
	Load(ctx context.Context) error

	// State returns a snapshot of everything the UI renders.
	State() State

	// Weekly schedule.
	SetScheduleField(day, field, value string) error
	SubmitSchedule(ctx context.Context) (map[string]string, error)

	// New time-off draft.
	SetDraftField(field, value string) error
	AddTimeOff(ctx context.Context) (map[string]string, error)

	// Editing session for a committed record.
	EditTimeOff(id string) error
	SetEditField(field, value string) error
	SaveTimeOff(ctx context.Context) (map[string]string, error)
	CancelEdit() error

	DeleteTimeOff(ctx context.Context, id string, confirmed bool) error

	DismissNotification()

	// Export writes the current schedule and time-off list as an xlsx
	// workbook.
	Export(w io.Writer) error
}

// State is the render snapshot handed to the UI layer.
type State struct {
	Schedule     models.WeeklySchedule  `json:"schedule"`
	TimeOff      []models.TimeOffRecord `json:"timeOff"`
	Draft        models.TimeOffRecord   `json:"draft"`
	Editing      *models.TimeOffRecord  `json:"editing,omitempty"`
	Notification *models.Notification   `json:"notification,omitempty"`
	Busy         bool                   `json:"busy"`
}
