package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/CodeDreamers777/assettone-console/internal/assettone"
	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/CodeDreamers777/assettone-console/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router   *gin.Engine
	store    *session.Store
	upstream int64
}

// newFixture wires a full router against a fake upstream. Every request the
// console dispatches bumps the upstream counter.
func newFixture(t *testing.T, upstream http.HandlerFunc) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.upstream, 1)
		if upstream != nil {
			upstream(w, r)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store, err := session.Open(filepath.Join(t.TempDir(), "console.db"), logger)
	require.NoError(t, err)
	f.store = store

	client := assettone.NewClient(srv.URL, store, store.Invalidate, logger)
	handler := NewHandler(client, store, logger)

	f.router = gin.New()
	SetupRoutes(f.router, handler, []string{"http://localhost:5173"})
	return f
}

func (f *fixture) upstreamCalls() int64 {
	return atomic.LoadInt64(&f.upstream)
}

func (f *fixture) loginAs(t *testing.T, role models.UserType, perms models.Permissions) {
	t.Helper()
	require.NoError(t, f.store.Save(session.Session{
		AccessToken: "opaque-token",
		Username:    "jdoe",
		UserType:    role,
		Permissions: perms,
	}))
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestGuard_AnonymousBouncesToLogin(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rec.Header().Get("Location"))
	assert.Zero(t, f.upstreamCalls())

	rec = f.do(http.MethodGet, "/properties", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login?next="))

	rec = f.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGuard_AuthenticatedSkipsLogin(t *testing.T) {
	f := newFixture(t, nil)
	f.loginAs(t, models.UserTypeAdmin, models.Permissions{})

	rec := f.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = f.do(http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLogin_ValidationStopsBeforeDispatch(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/login", `{"username":"jdoe","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be at least 6 characters")

	// The invalid form never produced an upstream request.
	assert.Zero(t, f.upstreamCalls())
}

func TestLogin_SavesSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/login/", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"username": "jdoe",
			"last_session": "2026-08-01 10:00",
			"profile": {"user_type": "MANAGER", "permissions": {"can_add_units": true}},
			"tokens": {"access": "acc", "refresh": "ref"}
		}`))
	})

	rec := f.do(http.MethodPost, "/login", `{"username":"jdoe","password":"secret99"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	sess, err := f.store.Current()
	require.NoError(t, err)
	assert.Equal(t, "acc", sess.AccessToken)
	assert.Equal(t, models.UserTypeManager, sess.UserType)
	assert.True(t, sess.Permissions.CanAddUnits)
}

func TestLogout_EndsSession(t *testing.T) {
	f := newFixture(t, nil)
	f.loginAs(t, models.UserTypeAdmin, models.Permissions{})

	rec := f.do(http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// The guard treats the operator as anonymous again.
	rec = f.do(http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestCreateProperty_RequiresPermissionFlag(t *testing.T) {
	f := newFixture(t, nil)
	f.loginAs(t, models.UserTypeClerk, models.Permissions{})

	body := `{"name":"Sunset Towers","address_line1":"1 Main St","city":"Nairobi","state":"Nairobi","postal_code":"00100","country":"Kenya"}`
	rec := f.do(http.MethodPost, "/properties", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, f.upstreamCalls())

	// Granting the flag unlocks the same request.
	f.loginAs(t, models.UserTypeClerk, models.Permissions{CanManageProperties: true})
	rec = f.do(http.MethodPost, "/properties", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), f.upstreamCalls())
}

func TestCreateTenant_ShortPhoneNeverDispatches(t *testing.T) {
	f := newFixture(t, nil)
	f.loginAs(t, models.UserTypeClerk, models.Permissions{})

	rec := f.do(http.MethodPost, "/tenants", `{"first_name":"John","last_name":"Smith","phone_number":"071234567"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be at least 10 characters")
	assert.Zero(t, f.upstreamCalls())
}

func TestApproveMaintenance_RejectsTerminalStatus(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/maintenance-requests/M1/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"M1","status":"COMPLETED"}`))
	})
	f.loginAs(t, models.UserTypeManager, models.Permissions{})

	rec := f.do(http.MethodPost, "/maintenance/M1/approve", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Can only approve pending maintenance requests")

	// Only the status lookup went out; the approve action never did.
	assert.Equal(t, int64(1), f.upstreamCalls())
}

func TestCompleteMaintenance_TenantCanComplete(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"id":"M1","status":"APPROVED"}`))
			return
		}
		require.Equal(t, "/api/v1/maintenance-requests/M1/complete/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"M1","status":"COMPLETED","repair_cost":120}`))
	})
	f.loginAs(t, models.UserTypeTenant, models.Permissions{})

	rec := f.do(http.MethodPost, "/maintenance/M1/complete", `{"repair_cost":120}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETED")
	// Status lookup plus the complete dispatch.
	assert.Equal(t, int64(2), f.upstreamCalls())

	// The same tenant still cannot approve.
	rec = f.do(http.MethodPost, "/maintenance/M1/approve", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListMaintenance_TenantRowsOfferComplete(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"M1","title":"Leaking tap","status":"APPROVED"},
			{"id":"M2","title":"Broken lock","status":"PENDING"},
			{"id":"M3","title":"Painted","status":"COMPLETED"}
		]`))
	})
	f.loginAs(t, models.UserTypeTenant, models.Permissions{})

	rec := f.do(http.MethodGet, "/maintenance", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		ID             string   `json:"id"`
		AllowedActions []string `json:"allowed_actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 3)

	// APPROVED offers the tenant exactly "complete"; pending approval and
	// terminal rows offer nothing.
	assert.Equal(t, []string{"complete"}, rows[0].AllowedActions)
	assert.Empty(t, rows[1].AllowedActions)
	assert.Empty(t, rows[2].AllowedActions)
}

func TestListMaintenance_StaffRowsOfferFullSet(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"M1","title":"Leaking tap","status":"PENDING"}]`))
	})
	f.loginAs(t, models.UserTypeManager, models.Permissions{})

	rec := f.do(http.MethodGet, "/maintenance", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		AllowedActions []string `json:"allowed_actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"approve", "reject"}, rows[0].AllowedActions)
}

func TestCompleteMaintenance_RequiresRepairCost(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"M1","status":"APPROVED"}`))
	})
	f.loginAs(t, models.UserTypeManager, models.Permissions{})

	rec := f.do(http.MethodPost, "/maintenance/M1/complete", `{"repair_cost":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportReport_CSV(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reports/lease_report/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"L1","monthly_rent":900}]`))
	})
	f.loginAs(t, models.UserTypeAdmin, models.Permissions{})

	rec := f.do(http.MethodGet, "/reports/lease/export?format=csv", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="lease-report.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "0.id,L1")
}

func TestUpstreamFailure_MapsToAPIError(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Unit is already occupied"}`))
	})
	f.loginAs(t, models.UserTypeAdmin, models.Permissions{})

	rec := f.do(http.MethodGet, "/properties", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unit is already occupied")
}

func TestSignLeaseScreen_RejectsBadPayload(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/sign-lease?data=not-base64!", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Lease Data")
	assert.Zero(t, f.upstreamCalls())
}
