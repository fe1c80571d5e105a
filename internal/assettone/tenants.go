package assettone

import (
	"context"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

type TenantInput struct {
	FirstName             string                    `json:"first_name"`
	LastName              string                    `json:"last_name"`
	Email                 string                    `json:"email,omitempty"`
	PhoneNumber           string                    `json:"phone_number"`
	IdentificationType    models.IdentificationType `json:"identification_type,omitempty"`
	IdentificationNumber  string                    `json:"identification_number,omitempty"`
	Occupation            string                    `json:"occupation,omitempty"`
	MonthlyIncome         *float64                  `json:"monthly_income,omitempty"`
	EmergencyContactName  string                    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string                    `json:"emergency_contact_phone,omitempty"`
}

// ListTenants returns tenants grouped by property name, the shape the
// tenants list endpoint serves.
func (c *Client) ListTenants(ctx context.Context) (map[string][]models.Tenant, error) {
	var out map[string][]models.Tenant
	if err := c.get(ctx, "/tenants/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	var out models.Tenant
	if err := c.get(ctx, "/tenants/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTenant(ctx context.Context, in TenantInput) (*models.Tenant, error) {
	var out models.Tenant
	if err := c.post(ctx, "/tenants/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTenant(ctx context.Context, id string, in TenantInput) (*models.Tenant, error) {
	var out models.Tenant
	if err := c.put(ctx, "/tenants/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.delete(ctx, "/tenants/"+id+"/")
}
