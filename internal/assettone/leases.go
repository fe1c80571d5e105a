package assettone

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

type LeaseInput struct {
	UnitID          string               `json:"unit"`
	TenantID        string               `json:"tenant"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	MonthlyRent     float64              `json:"monthly_rent"`
	SecurityDeposit float64              `json:"security_deposit"`
	PaymentPeriod   models.PaymentPeriod `json:"payment_period"`
	Notes           string               `json:"notes,omitempty"`
}

func (c *Client) ListLeases(ctx context.Context) ([]models.Lease, error) {
	var out []models.Lease
	if err := c.get(ctx, "/leases/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLease(ctx context.Context, id string) (*models.Lease, error) {
	var out models.Lease
	if err := c.get(ctx, "/leases/"+id+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLease(ctx context.Context, in LeaseInput) (*models.Lease, error) {
	var out models.Lease
	if err := c.post(ctx, "/leases/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLease(ctx context.Context, id string, in LeaseInput) (*models.Lease, error) {
	var out models.Lease
	if err := c.put(ctx, "/leases/"+id+"/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLease(ctx context.Context, id string) error {
	return c.delete(ctx, "/leases/"+id+"/")
}

func (c *Client) ActiveLeases(ctx context.Context) ([]models.Lease, error) {
	var out []models.Lease
	if err := c.get(ctx, "/leases/active_leases/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TerminateResult reflects the statuses the server cascades when a lease ends.
type TerminateResult struct {
	Status       string `json:"status"`
	LeaseID      string `json:"lease_id"`
	UnitStatus   string `json:"unit_status"`
	TenantStatus string `json:"tenant_status"`
}

// TerminateLease ends an active lease; the server frees the unit and
// deactivates the tenant as a side effect.
func (c *Client) TerminateLease(ctx context.Context, id string) (*TerminateResult, error) {
	var out TerminateResult
	if err := c.post(ctx, "/leases/"+id+"/terminate_lease/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransferLease terminates the lease and opens a new one for the given
// tenant on the same unit and terms, preserving lease history.
func (c *Client) TransferLease(ctx context.Context, id, newTenantID, notes string) (*models.Lease, error) {
	body := map[string]string{"tenant": newTenantID, "notes": notes}
	var out models.Lease
	if err := c.post(ctx, "/leases/"+id+"/transfer_lease/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadLeasePDF fetches the rendered lease document as raw bytes.
func (c *Client) DownloadLeasePDF(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+apiPrefix+"/leases/"+id+"/download_pdf/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.AccessToken())
	return c.send(req)
}

// CompleteSigning uploads the captured signature. The multipart body is
// built by the signing package; contentType carries its boundary. The
// signing page is reached from an emailed link, so no bearer is attached.
func (c *Client) CompleteSigning(ctx context.Context, leaseID string, body []byte, contentType string) error {
	reqURL := fmt.Sprintf("%s%s/leases/%s/complete_signing/", c.baseURL, apiPrefix, url.PathEscape(leaseID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	_, err = c.send(req)
	return err
}
