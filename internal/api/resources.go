package api

import (
	"net/http"
	"strings"

	"github.com/CodeDreamers777/assettone-console/internal/assettone"
	"github.com/CodeDreamers777/assettone-console/internal/forms"
	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/CodeDreamers777/assettone-console/internal/rbac"
	"github.com/CodeDreamers777/assettone-console/internal/views"
	"github.com/gin-gonic/gin"
)

// Each list screen re-fetches its collection and applies the q= text filter
// locally; there is no server-side search.

func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.client.ListProperties(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	properties = views.Search(properties, c.Query("q"), views.PropertyFields)
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.client.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageProperties) {
		return
	}
	var form forms.PropertyForm
	if !h.bindForm(c, &form) {
		return
	}
	property, err := h.client.CreateProperty(c.Request.Context(), propertyInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageProperties) {
		return
	}
	var form forms.PropertyForm
	if !h.bindForm(c, &form) {
		return
	}
	property, err := h.client.UpdateProperty(c.Request.Context(), c.Param("id"), propertyInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageProperties) {
		return
	}
	if err := h.client.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) PropertyUnits(c *gin.Context) {
	units, err := h.client.PropertyUnits(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	units = views.Search(units, c.Query("q"), views.UnitFields)
	c.JSON(http.StatusOK, units)
}

func propertyInput(form forms.PropertyForm) assettone.PropertyInput {
	return assettone.PropertyInput{
		Name:         form.Name,
		AddressLine1: form.AddressLine1,
		AddressLine2: form.AddressLine2,
		City:         form.City,
		State:        form.State,
		PostalCode:   form.PostalCode,
		Country:      form.Country,
		Description:  form.Description,
	}
}

func (h *Handler) ListUnits(c *gin.Context) {
	var (
		units []models.Unit
		err   error
	)
	switch {
	case c.Query("available") == "true":
		units, err = h.client.AvailableUnits(c.Request.Context(), c.Query("property_id"))
	default:
		units, err = h.client.ListUnits(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	units = views.Search(units, c.Query("q"), views.UnitFields)
	c.JSON(http.StatusOK, units)
}

func (h *Handler) UnitsByType(c *gin.Context) {
	grouped, err := h.client.UnitsByType(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) GetUnit(c *gin.Context) {
	unit, err := h.client.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *Handler) CreateUnit(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionAddUnits) {
		return
	}
	var form forms.UnitForm
	if !h.bindForm(c, &form) {
		return
	}
	unit, err := h.client.CreateUnit(c.Request.Context(), unitInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

func (h *Handler) UpdateUnit(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionEditUnits) {
		return
	}
	var form forms.UnitForm
	if !h.bindForm(c, &form) {
		return
	}
	unit, err := h.client.UpdateUnit(c.Request.Context(), c.Param("id"), unitInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *Handler) DeleteUnit(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionDeleteUnits) {
		return
	}
	if err := h.client.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateUnitStatus forwards a partial status patch, used when marking a unit
// under maintenance or back in service.
func (h *Handler) UpdateUnitStatus(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionEditUnits) {
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil || len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	unit, err := h.client.UpdateUnitStatus(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *Handler) PayRent(c *gin.Context) {
	var in assettone.PayRentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.client.PayRent(c.Request.Context(), c.Param("id"), in); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}

func (h *Handler) RequestRent(c *gin.Context) {
	if err := h.client.RequestRent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rent notice sent"})
}

func unitInput(form forms.UnitForm) assettone.UnitInput {
	return assettone.UnitInput{
		UnitNumber:     form.UnitNumber,
		PropertyID:     form.PropertyID,
		UnitType:       models.UnitType(form.UnitType),
		CustomUnitType: form.CustomUnitType,
		Rent:           form.Rent,
		PaymentPeriod:  models.PaymentPeriod(form.PaymentPeriod),
		Floor:          form.Floor,
	}
}

// ListTenants serves the grouped-by-property shape the tenants screen
// renders, filtering each group by the q= query.
func (h *Handler) ListTenants(c *gin.Context) {
	grouped, err := h.client.ListTenants(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if query := strings.TrimSpace(c.Query("q")); query != "" {
		filtered := make(map[string][]models.Tenant, len(grouped))
		for property, tenants := range grouped {
			if matched := views.Search(tenants, query, views.TenantFields); len(matched) > 0 {
				filtered[property] = matched
			}
		}
		grouped = filtered
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) GetTenant(c *gin.Context) {
	tenant, err := h.client.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *Handler) CreateTenant(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageTenants) {
		return
	}
	var form forms.TenantForm
	if !h.bindForm(c, &form) {
		return
	}
	tenant, err := h.client.CreateTenant(c.Request.Context(), tenantInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

func (h *Handler) UpdateTenant(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageTenants) {
		return
	}
	var form forms.TenantForm
	if !h.bindForm(c, &form) {
		return
	}
	tenant, err := h.client.UpdateTenant(c.Request.Context(), c.Param("id"), tenantInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageTenants) {
		return
	}
	if err := h.client.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tenantInput(form forms.TenantForm) assettone.TenantInput {
	return assettone.TenantInput{
		FirstName:             form.FirstName,
		LastName:              form.LastName,
		Email:                 form.Email,
		PhoneNumber:           form.PhoneNumber,
		IdentificationType:    models.IdentificationType(form.IdentificationType),
		IdentificationNumber:  form.IdentificationNumber,
		Occupation:            form.Occupation,
		EmergencyContactName:  form.EmergencyContactName,
		EmergencyContactPhone: form.EmergencyContactPhone,
	}
}

func (h *Handler) ListLeases(c *gin.Context) {
	var (
		leases []models.Lease
		err    error
	)
	if c.Query("active") == "true" {
		leases, err = h.client.ActiveLeases(c.Request.Context())
	} else {
		leases, err = h.client.ListLeases(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	leases = views.Search(leases, c.Query("q"), func(l models.Lease) []string {
		return []string{l.TenantName, l.UnitNumber, l.PropertyName, string(l.Status)}
	})
	c.JSON(http.StatusOK, leases)
}

func (h *Handler) GetLease(c *gin.Context) {
	lease, err := h.client.GetLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

func (h *Handler) CreateLease(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageLeases) {
		return
	}
	var form forms.LeaseForm
	if !h.bindForm(c, &form) {
		return
	}
	lease, err := h.client.CreateLease(c.Request.Context(), leaseInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lease)
}

func (h *Handler) UpdateLease(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageLeases) {
		return
	}
	var form forms.LeaseForm
	if !h.bindForm(c, &form) {
		return
	}
	lease, err := h.client.UpdateLease(c.Request.Context(), c.Param("id"), leaseInput(form))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

func (h *Handler) DeleteLease(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageLeases) {
		return
	}
	if err := h.client.DeleteLease(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) TerminateLease(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionTerminateLease) {
		return
	}
	result, err := h.client.TerminateLease(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) TransferLease(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionTransferLease) {
		return
	}
	var body struct {
		Tenant string `json:"tenant"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Tenant == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A new tenant is required"})
		return
	}
	lease, err := h.client.TransferLease(c.Request.Context(), c.Param("id"), body.Tenant, body.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lease)
}

func (h *Handler) DownloadLeasePDF(c *gin.Context) {
	pdf, err := h.client.DownloadLeasePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="lease-`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func leaseInput(form forms.LeaseForm) assettone.LeaseInput {
	return assettone.LeaseInput{
		UnitID:          form.UnitID,
		TenantID:        form.TenantID,
		StartDate:       form.StartDate,
		EndDate:         form.EndDate,
		MonthlyRent:     form.MonthlyRent,
		SecurityDeposit: form.SecurityDeposit,
		PaymentPeriod:   models.PaymentPeriod(form.PaymentPeriod),
		Notes:           form.Notes,
	}
}
