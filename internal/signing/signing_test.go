package signing

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() *LeasePayload {
	p := &LeasePayload{
		LeaseID:      "L-42",
		SigningToken: "tok-abc",
	}
	p.Tenant.FirstName = "Jane"
	p.Tenant.LastName = "Doe"
	p.Unit.Number = "A-12"
	p.Property.Name = "Sunset Towers"
	p.LeaseTerms.StartDate = "2026-09-01"
	p.LeaseTerms.MonthlyRent = "900"
	return p
}

func TestDecodePayload_RoundTrip(t *testing.T) {
	encoded, err := EncodePayload(samplePayload())
	require.NoError(t, err)

	decoded, err := DecodePayload(encoded)
	require.NoError(t, err)
	assert.Equal(t, "L-42", decoded.LeaseID)
	assert.Equal(t, "tok-abc", decoded.SigningToken)
	assert.Equal(t, "Jane", decoded.Tenant.FirstName)
	assert.Equal(t, "Sunset Towers", decoded.Property.Name)
	assert.Equal(t, "900", decoded.LeaseTerms.MonthlyRent)
}

func TestDecodePayload_Invalid(t *testing.T) {
	// Empty, bad base64, bad JSON, and a payload without a lease all fail
	// the same way.
	for _, encoded := range []string{
		"",
		"%%%not-base64%%%",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`{"signing_token":"tok"}`)),
	} {
		_, err := DecodePayload(encoded)
		assert.ErrorIs(t, err, ErrInvalidPayload, "encoded=%q", encoded)
	}
}

func TestSignatureForm(t *testing.T) {
	body, contentType, err := SignatureForm([]byte("png-bytes"), "tok-abc")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="))

	boundary := strings.TrimPrefix(contentType, "multipart/form-data; boundary=")
	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	require.Len(t, form.File["signature"], 1)
	assert.Equal(t, "signature.png", form.File["signature"][0].Filename)
	assert.Equal(t, []string{"tok-abc"}, form.Value["signing_token"])

	file, err := form.File["signature"][0].Open()
	require.NoError(t, err)
	defer file.Close()
	var content bytes.Buffer
	_, err = content.ReadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", content.String())
}

func TestSignatureForm_EmptyImage(t *testing.T) {
	_, _, err := SignatureForm(nil, "tok-abc")
	assert.Error(t, err)
}
