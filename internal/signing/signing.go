// Package signing handles the unauthenticated lease-signing flow: the
// emailed link carries a base64 JSON payload describing the lease, and the
// captured signature goes back up as a multipart form.
package signing

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
)

var ErrInvalidPayload = errors.New("invalid lease data")

// LeasePayload is what the signing link encodes in its data query parameter.
type LeasePayload struct {
	LeaseID      string `json:"lease_id"`
	SigningToken string `json:"signing_token"`
	Tenant       struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"tenant"`
	Unit struct {
		Number string `json:"number"`
		Type   string `json:"type"`
		Floor  string `json:"floor"`
		Size   string `json:"size"`
	} `json:"unit"`
	Property struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
	} `json:"property"`
	LeaseTerms struct {
		StartDate       string `json:"start_date"`
		EndDate         string `json:"end_date"`
		MonthlyRent     string `json:"monthly_rent"`
		SecurityDeposit string `json:"security_deposit"`
		PaymentPeriod   string `json:"payment_period"`
	} `json:"lease_terms"`
}

// DecodePayload unpacks the base64 JSON carried in the signing URL.
func DecodePayload(encoded string) (*LeasePayload, error) {
	if encoded == "" {
		return nil, ErrInvalidPayload
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	var payload LeasePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if payload.LeaseID == "" {
		return nil, fmt.Errorf("%w: missing lease_id", ErrInvalidPayload)
	}
	return &payload, nil
}

// EncodePayload is DecodePayload's inverse, used when generating preview
// links locally and in tests.
func EncodePayload(payload *LeasePayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// SignatureForm builds the multipart body the complete-signing endpoint
// expects: a signature.png file part plus the signing token field. It
// returns the body and its content type (which carries the boundary).
func SignatureForm(signaturePNG []byte, signingToken string) ([]byte, string, error) {
	if len(signaturePNG) == 0 {
		return nil, "", errors.New("signature image is empty")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("signature", "signature.png")
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(signaturePNG); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("signing_token", signingToken); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
