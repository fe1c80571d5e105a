package assettone

import (
	"context"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

// PropertyInput is the create/update payload for a property.
type PropertyInput struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Description  string `json:"description,omitempty"`
}

func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.get(ctx, "/properties/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var out models.Property
	if err := c.get(ctx, "/properties/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProperty(ctx context.Context, in PropertyInput) (*models.Property, error) {
	var out models.Property
	if err := c.post(ctx, "/properties/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, in PropertyInput) (*models.Property, error) {
	var out models.Property
	if err := c.put(ctx, "/properties/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.delete(ctx, "/properties/"+id+"/")
}

// PropertyUnits lists the units nested under a property.
func (c *Client) PropertyUnits(ctx context.Context, propertyID string) ([]models.Unit, error) {
	var out []models.Unit
	if err := c.get(ctx, "/properties/"+propertyID+"/units/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
