package assettone

import (
	"context"
	"net/url"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

type UnitInput struct {
	UnitNumber     string               `json:"unit_number"`
	PropertyID     string               `json:"property"`
	UnitType       models.UnitType      `json:"unit_type"`
	CustomUnitType string               `json:"custom_unit_type,omitempty"`
	Rent           float64              `json:"rent"`
	PaymentPeriod  models.PaymentPeriod `json:"payment_period"`
	Floor          string               `json:"floor,omitempty"`
	SquareFootage  *float64             `json:"square_footage,omitempty"`
}

func (c *Client) ListUnits(ctx context.Context) ([]models.Unit, error) {
	var out []models.Unit
	if err := c.get(ctx, "/units/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	var out models.Unit
	if err := c.get(ctx, "/units/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUnit(ctx context.Context, in UnitInput) (*models.Unit, error) {
	var out models.Unit
	if err := c.post(ctx, "/units/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id string, in UnitInput) (*models.Unit, error) {
	var out models.Unit
	if err := c.put(ctx, "/units/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUnit(ctx context.Context, id string) error {
	return c.delete(ctx, "/units/"+id+"/")
}

// AvailableUnits lists unoccupied units, optionally scoped to a property.
func (c *Client) AvailableUnits(ctx context.Context, propertyID string) ([]models.Unit, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("property_id", propertyID)
	}
	var out []models.Unit
	if err := c.get(ctx, "/units/available_units/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnitsByType groups a property's units by their unit type.
func (c *Client) UnitsByType(ctx context.Context, propertyID string) (map[string][]models.Unit, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("property_id", propertyID)
	}
	var out map[string][]models.Unit
	if err := c.get(ctx, "/units/by_type/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUnitStatus patches occupancy-related fields on a unit.
func (c *Client) UpdateUnitStatus(ctx context.Context, id string, patch map[string]any) (*models.Unit, error) {
	var out models.Unit
	if err := c.patch(ctx, "/units/"+id+"/update_status/", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type PayRentInput struct {
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// PayRent records a rent payment against the unit's active lease.
func (c *Client) PayRent(ctx context.Context, unitID string, in PayRentInput) error {
	return c.post(ctx, "/units/"+unitID+"/pay-rent/", in, nil)
}

// RequestRent asks the server to send a rent notice to the unit's tenant.
func (c *Client) RequestRent(ctx context.Context, unitID string) error {
	return c.post(ctx, "/units/"+unitID+"/request-rent/", nil, nil)
}
