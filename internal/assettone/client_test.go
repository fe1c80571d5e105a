package assettone

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string, onUnauthorized func()) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(srv.URL, staticTokens(token), onUnauthorized, logger), srv
}

func TestRegister_SingleRequestWithExactFields(t *testing.T) {
	var calls int
	var got map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/register/", r.URL.Path)
		// Registration rides without a bearer token.
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"User registered successfully","username":"jdoe","tokens":{"access":"a","refresh":"r"}}`))
	}), "", nil)

	resp, err := client.Register(context.Background(), Registration{
		Username:             "jdoe",
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		PhoneNumber:          "0712345678",
		Password:             "secret99",
		IdentificationType:   "passport",
		IdentificationNumber: "A1234567",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "jdoe", resp.Username)
	assert.Equal(t, "a", resp.Tokens.Access)

	wantKeys := []string{
		"username", "first_name", "last_name", "email",
		"phone_number", "password", "identification_type", "identification_number",
	}
	assert.Len(t, got, len(wantKeys))
	for _, key := range wantKeys {
		assert.Contains(t, got, key)
	}
	assert.Equal(t, "passport", got["identification_type"])
}

func TestLogin_DecodesSessionPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/login/", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "Login successful",
			"username": "jdoe",
			"last_session": "2026-08-01 10:00",
			"profile": {
				"user_type": "MANAGER",
				"permissions": {"can_add_units": true}
			},
			"tokens": {"access": "acc", "refresh": "ref"}
		}`))
	}), "", nil)

	resp, err := client.Login(context.Background(), "jdoe", "secret99")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", resp.Username)
	assert.Equal(t, "acc", resp.Tokens.Access)
	assert.True(t, resp.Profile.Permissions.CanAddUnits)
	assert.False(t, resp.Profile.Permissions.CanDeleteUnits)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}), "tok-123", nil)

	_, err := client.ListProperties(context.Background())
	require.NoError(t, err)
}

func TestClient_APIErrorShapes(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantFields map[string]string
	}{
		{"error key", 400, `{"error":"Unit is already occupied"}`, "Unit is already occupied", nil},
		{"detail key", 404, `{"detail":"Not found."}`, "Not found.", nil},
		{"message key", 403, `{"message":"Forbidden"}`, "Forbidden", nil},
		{"field map", 400, `{"email":["Enter a valid email address."]}`, "validation failed",
			map[string]string{"email": "Enter a valid email address."}},
		{"plain text", 500, `boom`, "boom", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}), "tok", nil)

			_, err := client.ListProperties(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
			assert.Equal(t, tc.wantFields, apiErr.Fields)
		})
	}
}

func TestClient_UnauthorizedHookFires(t *testing.T) {
	var invalidated int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token expired"}`))
	}), "stale", func() { invalidated++ })

	_, err := client.ListProperties(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, invalidated)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_NoRetryOnFailure(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}), "tok", nil)

	_, err := client.ListProperties(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCompleteSigning_MultipartUpload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/leases/L1/complete_signing/", r.URL.Path)
		// Signing happens from an email link; no bearer token exists.
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tok-abc", r.FormValue("signing_token"))

		file, header, err := r.FormFile("signature")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "signature.png", header.Filename)

		_, _ = w.Write([]byte(`{"success":true}`))
	}), "", nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("signature", "signature.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("signing_token", "tok-abc"))
	require.NoError(t, mw.Close())

	err = client.CompleteSigning(context.Background(), "L1", buf.Bytes(), mw.FormDataContentType())
	require.NoError(t, err)
}
