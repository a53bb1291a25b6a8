package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"scheduledash/models"
	"scheduledash/services/remote"
	"scheduledash/utils"

	"go.uber.org/zap"
)

// DefaultSession implements Session. A single busy flag serializes effective
// mutation: while one remote call is outstanding every further submission is
// refused with ErrBusy, never queued. Local field edits remain possible so
// the user can keep typing while a request is in flight.
type DefaultSession struct {
	ScheduleAPI ScheduleAPI
	TimeOffAPI  TimeOffAPI

	// Now supplies today's date for past-date validation; defaults to the
	// UTC clock.
	Now func() string

	mu       sync.Mutex
	busy     bool
	schedule *ScheduleStore
	timeOff  *TimeOffStore
	draft    models.TimeOffRecord
	notifier *Notifier
	logger   *zap.Logger
}

func NewSession(scheduleAPI ScheduleAPI, timeOffAPI TimeOffAPI, notificationTTL time.Duration) *DefaultSession {
	return &DefaultSession{
		ScheduleAPI: scheduleAPI,
		TimeOffAPI:  timeOffAPI,
		Now:         Today,
		schedule:    NewScheduleStore(),
		timeOff:     NewTimeOffStore(),
		draft:       emptyDraft(),
		notifier:    NewNotifier(notificationTTL),
		logger:      utils.GetLogger(),
	}
}

func emptyDraft() models.TimeOffRecord {
	return models.TimeOffRecord{Type: models.TimeOffVacation}
}

// begin claims the busy flag. end must be called once begin succeeds.
func (s *DefaultSession) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *DefaultSession) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Load fetches the schedule and the time-off list. On failure the stores
// keep their prior values (the schedule retains its defaults on first load)
// and an error notification is raised.
func (s *DefaultSession) Load(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	schedule, err := s.ScheduleAPI.FetchSchedule(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch schedule", zap.Error(err))
		s.notifier.Show("Failed to load data. Please try again later.", models.SeverityError)
		return err
	}

	rawRecords, err := s.TimeOffAPI.ListTimeOff(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch time off", zap.Error(err))
		s.notifier.Show("Failed to load data. Please try again later.", models.SeverityError)
		return err
	}

	records := make([]models.TimeOffRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		records = append(records, raw.Normalize())
	}

	s.mu.Lock()
	s.schedule.Replace(schedule)
	s.timeOff.Replace(records)
	s.mu.Unlock()
	return nil
}

// State returns a render snapshot of the session. Everything in it is a
// copy; later edits must never show through a snapshot already handed out.
func (s *DefaultSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := State{
		Schedule:     s.schedule.Snapshot(),
		TimeOff:      s.timeOff.List(),
		Draft:        s.draft,
		Notification: s.notifier.Current(),
		Busy:         s.busy,
	}
	if draft := s.timeOff.EditDraft(); draft != nil {
		copied := *draft
		state.Editing = &copied
	}
	return state
}

// SetScheduleField records a single time-field edit. No validation happens
// here; invalid intermediate states are allowed until submission.
func (s *DefaultSession) SetScheduleField(day, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.SetField(day, field, value)
}

// SubmitSchedule validates the schedule and, when clean, pushes it to the
// remote API. Field errors are returned without any remote call being made.
func (s *DefaultSession) SubmitSchedule(ctx context.Context) (map[string]string, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	snapshot := s.schedule.Snapshot()
	s.mu.Unlock()

	if fieldErrs := ValidateSchedule(snapshot); len(fieldErrs) > 0 {
		return fieldErrs, &ValidationError{Fields: fieldErrs}
	}

	updated, err := s.ScheduleAPI.UpdateSchedule(ctx, snapshot)
	if err != nil {
		s.logger.Error("Failed to update schedule", zap.Error(err))
		return s.notifyFailure("Failed to update schedule. Please try again.", err), err
	}

	s.mu.Lock()
	s.schedule.Replace(updated)
	s.mu.Unlock()
	s.notifier.Show("Schedule updated successfully!", models.SeveritySuccess)
	return nil, nil
}

// SetDraftField updates one field of the new time-off draft. Switching the
// type to dayOff pins the end date to the start date, and start-date changes
// keep it pinned, so a dayOff draft is always a zero-length range.
func (s *DefaultSession) SetDraftField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return applyTimeOffField(&s.draft, field, value)
}

// AddTimeOff validates the draft and creates it remotely. The record enters
// the store only with the server-assigned identifier, after normalization.
func (s *DefaultSession) AddTimeOff(ctx context.Context) (map[string]string, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	candidate := s.draft
	s.mu.Unlock()

	if fieldErrs := ValidateTimeOff(candidate, s.Now()); len(fieldErrs) > 0 {
		return fieldErrs, &ValidationError{Fields: fieldErrs}
	}

	raw, err := s.TimeOffAPI.CreateTimeOff(ctx, candidate)
	if err != nil {
		s.logger.Error("Failed to create time off", zap.Error(err))
		return s.notifyFailure("Failed to add time off. Please try again.", err), err
	}

	s.mu.Lock()
	s.timeOff.Add(raw.Normalize())
	s.draft = emptyDraft()
	s.mu.Unlock()
	s.notifier.Show("Time off added successfully!", models.SeveritySuccess)
	return nil, nil
}

// EditTimeOff opens the editing session for a committed record.
func (s *DefaultSession) EditTimeOff(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.timeOff.BeginEdit(id); err != nil {
		return err
	}
	return nil
}

// SetEditField updates one field of the record under edit, with the same
// dayOff end-date semantics as the new-entry draft. The committed list is
// untouched until SaveTimeOff.
func (s *DefaultSession) SetEditField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.timeOff.EditDraft()
	if draft == nil {
		return ErrNoEditSession
	}
	return applyTimeOffField(draft, field, value)
}

// SaveTimeOff validates the edit draft, updates the record remotely and
// commits the normalized response.
func (s *DefaultSession) SaveTimeOff(ctx context.Context) (map[string]string, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	s.mu.Lock()
	draft := s.timeOff.EditDraft()
	if draft == nil {
		s.mu.Unlock()
		return nil, ErrNoEditSession
	}
	candidate := *draft
	s.mu.Unlock()

	if fieldErrs := ValidateTimeOff(candidate, s.Now()); len(fieldErrs) > 0 {
		return fieldErrs, &ValidationError{Fields: fieldErrs}
	}

	raw, err := s.TimeOffAPI.UpdateTimeOff(ctx, candidate.ID, candidate)
	if err != nil {
		s.logger.Error("Failed to update time off", zap.String("id", candidate.ID), zap.Error(err))
		return s.notifyFailure("Failed to update time off. Please try again.", err), err
	}

	record := raw.Normalize()
	s.mu.Lock()
	updateErr := s.timeOff.Update(record.ID, record)
	s.timeOff.EndEdit()
	s.mu.Unlock()
	if updateErr != nil {
		return nil, updateErr
	}
	s.notifier.Show("Time off updated successfully!", models.SeveritySuccess)
	return nil, nil
}

// CancelEdit discards the edit draft unchanged.
func (s *DefaultSession) CancelEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timeOff.EditDraft() == nil {
		return ErrNoEditSession
	}
	s.timeOff.EndEdit()
	return nil
}

// DeleteTimeOff removes a record after explicit confirmation. Without the
// confirmation flag the session is left completely untouched.
func (s *DefaultSession) DeleteTimeOff(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.mu.Lock()
	known := s.timeOff.Contains(id)
	s.mu.Unlock()
	if !known {
		return &StateError{Op: "delete", ID: id}
	}

	if err := s.TimeOffAPI.DeleteTimeOff(ctx, id); err != nil {
		s.logger.Error("Failed to delete time off", zap.String("id", id), zap.Error(err))
		s.notifyFailure("Failed to delete time off. Please try again.", err)
		return err
	}

	s.mu.Lock()
	removeErr := s.timeOff.Remove(id)
	s.mu.Unlock()
	if removeErr != nil {
		return removeErr
	}
	s.notifier.Show("Time off deleted successfully!", models.SeveritySuccess)
	return nil
}

// DismissNotification clears the active notification.
func (s *DefaultSession) DismissNotification() {
	s.notifier.Dismiss()
}

// notifyFailure raises an error notification for a failed remote call. The
// server-supplied message takes precedence over the generic default, and any
// server field errors are returned for field-level display.
func (s *DefaultSession) notifyFailure(fallback string, err error) map[string]string {
	message := fallback
	var fieldErrs map[string]string

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			message = apiErr.Message
		}
		fieldErrs = apiErr.FieldErrors
	}

	s.notifier.Show(message, models.SeverityError)
	return fieldErrs
}

// applyTimeOffField mutates one field of a time-off draft, maintaining the
// dayOff invariant endDate == startDate.
func applyTimeOffField(record *models.TimeOffRecord, field, value string) error {
	switch field {
	case "type":
		record.Type = models.TimeOffType(value)
		if record.Type == models.TimeOffDayOff {
			record.EndDate = record.StartDate
		}
	case "startDate":
		record.StartDate = value
		if record.Type == models.TimeOffDayOff {
			record.EndDate = value
		}
	case "endDate":
		record.EndDate = value
	case "description":
		record.Description = value
	default:
		return fmt.Errorf("unknown time off field %q", field)
	}
	return nil
}
