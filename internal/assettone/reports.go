package assettone

import (
	"context"
	"net/url"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

func reportQuery(filter models.ReportFilter) url.Values {
	query := url.Values{}
	if filter.PropertyID != "" {
		query.Set("property", filter.PropertyID)
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	return query
}

func (c *Client) LeaseReport(ctx context.Context, filter models.ReportFilter) ([]models.Lease, error) {
	var out []models.Lease
	if err := c.get(ctx, "/reports/lease_report/", reportQuery(filter), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PaymentReport(ctx context.Context, filter models.ReportFilter) ([]models.RentPayment, error) {
	var out []models.RentPayment
	if err := c.get(ctx, "/reports/payment_report/", reportQuery(filter), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MaintenanceReport(ctx context.Context, filter models.ReportFilter) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	if err := c.get(ctx, "/reports/maintenance_report/", reportQuery(filter), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DashboardSummary(ctx context.Context, propertyID string) (*models.DashboardSummary, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("property", propertyID)
	}
	var out models.DashboardSummary
	if err := c.get(ctx, "/reports/dashboard_summary/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardMetrics fetches the current-month overview rendered on the
// dashboard landing screen.
func (c *Client) DashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	var out models.DashboardMetrics
	if err := c.get(ctx, "/dashboard-metrics/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordRentPayment records a payment against a lease and returns the
// server's period bookkeeping.
func (c *Client) RecordRentPayment(ctx context.Context, in models.RentPayment) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "/payments/", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
