package assettone

import (
	"context"
	"net/url"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

type EmailTenantsResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Failed  []struct {
		TenantID string `json:"tenant_id"`
		Error    string `json:"error"`
	} `json:"failed"`
}

// EmailTenants sends one message to many tenants; the server fans out the
// email delivery and appends a communication record either way.
func (c *Client) EmailTenants(ctx context.Context, subject, message string, tenantIDs []string) (*EmailTenantsResult, error) {
	body := map[string]any{
		"subject": subject,
		"message": message,
		"tenants": tenantIDs,
	}
	var out EmailTenantsResult
	if err := c.post(ctx, "/email-tenants/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommunicationFilter narrows the history view. Zero values mean no filter.
type CommunicationFilter struct {
	Type      models.CommunicationType
	StartDate string
	EndDate   string
	TenantID  string
}

func (c *Client) CommunicationHistory(ctx context.Context, filter CommunicationFilter) ([]models.CommunicationRecord, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	if filter.TenantID != "" {
		query.Set("tenant_id", filter.TenantID)
	}

	var out struct {
		Success bool                         `json:"success"`
		Data    []models.CommunicationRecord `json:"data"`
	}
	if err := c.get(ctx, "/communication-history/", query, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
