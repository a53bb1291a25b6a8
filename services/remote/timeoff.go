package remote

import (
	"context"

	"scheduledash/models"
)

// TimeOffService wraps the remote time-off endpoints, bound to one bearer
// token. All responses are raw records; callers must normalize them before
// use.
type TimeOffService struct {
	Client *Client
	Token  string
}

func (s TimeOffService) ListTimeOff(ctx context.Context) ([]models.RawTimeOff, error) {
	var out []models.RawTimeOff
	if err := s.Client.do(ctx, s.Token, "GET", "/timeoff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s TimeOffService) CreateTimeOff(ctx context.Context, candidate models.TimeOffRecord) (models.RawTimeOff, error) {
	var out models.RawTimeOff
	if err := s.Client.do(ctx, s.Token, "POST", "/timeoff", candidate, &out); err != nil {
		return models.RawTimeOff{}, err
	}
	return out, nil
}

func (s TimeOffService) UpdateTimeOff(ctx context.Context, id string, patch models.TimeOffRecord) (models.RawTimeOff, error) {
	var out models.RawTimeOff
	if err := s.Client.do(ctx, s.Token, "PUT", "/timeoff/"+id, patch, &out); err != nil {
		return models.RawTimeOff{}, err
	}
	return out, nil
}

func (s TimeOffService) DeleteTimeOff(ctx context.Context, id string) error {
	return s.Client.do(ctx, s.Token, "DELETE", "/timeoff/"+id, nil, nil)
}
