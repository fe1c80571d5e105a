package assettone

import (
	"context"
	"net/http"
)

// The marketing-page endpoints take no bearer token.

type statusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Health pings the API root.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out statusMessage
	if err := c.do(ctx, http.MethodGet, "/health/", nil, nil, &out, false); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) BookDemo(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/book-demo/", nil, body, nil, false)
}

func (c *Client) ContactUs(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/contact-us/", nil, body, nil, false)
}

// SubscriptionQuote prices a subscription from unit count and average rent.
// The server formats the figures for display, so they stay strings here.
func (c *Client) SubscriptionQuote(ctx context.Context, numberOfUnits int, averageRent float64) (map[string]string, error) {
	body := map[string]any{
		"number_of_units": numberOfUnits,
		"average_rent":    averageRent,
	}
	var out map[string]string
	if err := c.do(ctx, http.MethodPost, "/get-quote/", nil, body, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}
