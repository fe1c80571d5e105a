package assettone

import (
	"context"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

// StaffInput is the create-staff-account payload. The server generates the
// credentials and mails them to the new staff member.
type StaffInput struct {
	FirstName            string                    `json:"first_name"`
	LastName             string                    `json:"last_name"`
	Email                string                    `json:"email"`
	PhoneNumber          string                    `json:"phone_number"`
	UserType             models.UserType           `json:"user_type"`
	IdentificationType   models.IdentificationType `json:"identification_type,omitempty"`
	IdentificationNumber string                    `json:"identification_number,omitempty"`
	Permissions          models.Permissions        `json:"permissions"`
	PropertyIDs          []string                  `json:"properties,omitempty"`
}

type CreateStaffResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

func (c *Client) CreateStaffAccount(ctx context.Context, in StaffInput) (*CreateStaffResult, error) {
	var out CreateStaffResult
	if err := c.post(ctx, "/create-staff-account/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStaff returns the staff the caller may see: admins get managers and
// clerks, managers get clerks only. The server enforces the visibility rule.
func (c *Client) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	if err := c.get(ctx, "/staff/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStaff(ctx context.Context, id string) (*models.StaffMember, error) {
	var out models.StaffMember
	if err := c.get(ctx, "/staff/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStaff(ctx context.Context, id string, in StaffInput) (*models.StaffMember, error) {
	var out models.StaffMember
	if err := c.put(ctx, "/staff/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	return c.delete(ctx, "/staff/"+id+"/")
}
