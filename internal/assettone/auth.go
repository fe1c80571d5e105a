package assettone

import (
	"context"
	"net/http"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

// TokenPair is the token block of login/ and register/ responses.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	UserID      string         `json:"user_id"`
	Username    string         `json:"username"`
	LastSession string         `json:"last_session"`
	Profile     models.Profile `json:"profile"`
	Tokens      TokenPair      `json:"tokens"`
}

// Login posts credentials. Auth endpoints are the only authenticated-area
// calls that go out without a bearer header.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login/", nil, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Registration carries the exact field set the sign-up form collects.
type Registration struct {
	Username             string `json:"username"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	Password             string `json:"password"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
}

type RegisterResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Tokens   TokenPair `json:"tokens"`
}

func (c *Client) Register(ctx context.Context, reg Registration) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/register/", nil, reg, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

type profileEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Profile models.Profile `json:"profile"`
}

func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var out profileEnvelope
	if err := c.get(ctx, "/profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UpdateProfile patches the given profile fields and returns which ones the
// server accepted.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) ([]string, error) {
	var out struct {
		Success       bool     `json:"success"`
		UpdatedFields []string `json:"updated_fields"`
	}
	if err := c.patch(ctx, "/profile/", fields, &out); err != nil {
		return nil, err
	}
	return out.UpdatedFields, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.post(ctx, "/change-password/", body, nil)
}
