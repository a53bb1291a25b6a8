package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"scheduledash/models"
)

// ScheduleService wraps the remote schedule endpoints, bound to one bearer
// token.
type ScheduleService struct {
	Client *Client
	Token  string
}

// FetchSchedule retrieves the weekly schedule. The response may carry
// extraneous metadata fields next to the weekday entries, so only known
// weekdays are kept.
func (s ScheduleService) FetchSchedule(ctx context.Context) (models.WeeklySchedule, error) {
	var raw map[string]json.RawMessage
	if err := s.Client.do(ctx, s.Token, "GET", "/schedule", nil, &raw); err != nil {
		return nil, err
	}
	return stripSchedule(raw)
}

// UpdateSchedule replaces the stored weekly schedule and returns the server's
// view of it.
func (s ScheduleService) UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) (models.WeeklySchedule, error) {
	var raw map[string]json.RawMessage
	if err := s.Client.do(ctx, s.Token, "PUT", "/schedule", schedule, &raw); err != nil {
		return nil, err
	}
	return stripSchedule(raw)
}

func stripSchedule(raw map[string]json.RawMessage) (models.WeeklySchedule, error) {
	schedule := make(models.WeeklySchedule)
	for day, value := range raw {
		if !models.IsWeekday(day) {
			continue
		}
		var hours models.DayHours
		if err := json.Unmarshal(value, &hours); err != nil {
			return nil, fmt.Errorf("decode hours for %s: %w", day, err)
		}
		schedule[day] = hours
	}
	return schedule, nil
}
