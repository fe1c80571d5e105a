package assettone

import (
	"context"
	"net/url"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

type MaintenanceRequestInput struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	UnitID      string                     `json:"unit"`
	Priority    models.MaintenancePriority `json:"priority"`
	Notes       string                     `json:"notes,omitempty"`
}

func (c *Client) ListMaintenanceRequests(ctx context.Context) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	if err := c.get(ctx, "/maintenance-requests/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := c.get(ctx, "/maintenance-requests/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMaintenanceRequest(ctx context.Context, in MaintenanceRequestInput) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := c.post(ctx, "/maintenance-requests/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMaintenanceRequest(ctx context.Context, id string, in MaintenanceRequestInput) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := c.put(ctx, "/maintenance-requests/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMaintenanceRequest(ctx context.Context, id string) error {
	return c.delete(ctx, "/maintenance-requests/"+id+"/")
}

// ApproveMaintenanceRequest moves a PENDING request to APPROVED.
func (c *Client) ApproveMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := c.post(ctx, "/maintenance-requests/"+id+"/approve/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectMaintenanceRequest moves a PENDING request to REJECTED.
func (c *Client) RejectMaintenanceRequest(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := c.post(ctx, "/maintenance-requests/"+id+"/reject/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteMaintenanceRequest moves an APPROVED request to COMPLETED,
// recording what the repair cost.
func (c *Client) CompleteMaintenanceRequest(ctx context.Context, id string, repairCost float64) (*models.MaintenanceRequest, error) {
	body := map[string]float64{"repair_cost": repairCost}
	var out models.MaintenanceRequest
	if err := c.post(ctx, "/maintenance-requests/"+id+"/complete/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MaintenanceByProperty(ctx context.Context, propertyID string) ([]models.MaintenanceRequest, error) {
	return c.maintenanceFiltered(ctx, "by_property", "property_id", propertyID)
}

func (c *Client) MaintenanceByTenant(ctx context.Context, tenantID string) ([]models.MaintenanceRequest, error) {
	return c.maintenanceFiltered(ctx, "by_tenant", "tenant_id", tenantID)
}

func (c *Client) MaintenanceByUnit(ctx context.Context, unitID string) ([]models.MaintenanceRequest, error) {
	return c.maintenanceFiltered(ctx, "by_unit", "unit_id", unitID)
}

func (c *Client) maintenanceFiltered(ctx context.Context, action, param, id string) ([]models.MaintenanceRequest, error) {
	query := url.Values{}
	query.Set(param, id)
	var out []models.MaintenanceRequest
	if err := c.get(ctx, "/maintenance-requests/"+action+"/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
