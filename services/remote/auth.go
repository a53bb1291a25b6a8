package remote

import "context"

// Credentials are forwarded opaquely to the remote verifier.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is the user profile returned alongside a token.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// AuthResponse is the result of a successful login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthService wraps the remote authentication endpoints.
type AuthService struct {
	Client *Client
}

func (s AuthService) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.Client.do(ctx, "", "POST", "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
