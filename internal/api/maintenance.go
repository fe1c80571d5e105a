package api

import (
	"net/http"

	"github.com/CodeDreamers777/assettone-console/internal/assettone"
	"github.com/CodeDreamers777/assettone-console/internal/forms"
	"github.com/CodeDreamers777/assettone-console/internal/maintenance"
	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/CodeDreamers777/assettone-console/internal/rbac"
	"github.com/CodeDreamers777/assettone-console/internal/views"
	"github.com/gin-gonic/gin"
)

// maintenanceRow decorates a request with the actions the caller's role may
// take from its current status, so the screen enables exactly those.
type maintenanceRow struct {
	models.MaintenanceRequest
	AllowedActions []maintenance.WorkflowAction `json:"allowed_actions"`
}

// actionGates maps each workflow action to the capability a caller needs
// before the screen offers it. Tenants hold complete but not approve/reject,
// so their APPROVED rows show only "Mark as Complete".
var actionGates = map[maintenance.WorkflowAction]rbac.Action{
	maintenance.ActionApprove:  rbac.ActionApproveMaintenance,
	maintenance.ActionReject:   rbac.ActionApproveMaintenance,
	maintenance.ActionComplete: rbac.ActionCompleteMaintenance,
}

func (h *Handler) decorate(requests []models.MaintenanceRequest) []maintenanceRow {
	role := h.currentRole()
	rows := make([]maintenanceRow, len(requests))
	for i, req := range requests {
		rows[i] = maintenanceRow{MaintenanceRequest: req}
		for _, action := range maintenance.AllowedActions(req.Status) {
			if rbac.Can(role, actionGates[action]) {
				rows[i].AllowedActions = append(rows[i].AllowedActions, action)
			}
		}
	}
	return rows
}

func (h *Handler) ListMaintenanceRequests(c *gin.Context) {
	var (
		requests []models.MaintenanceRequest
		err      error
	)
	switch {
	case c.Query("property_id") != "":
		requests, err = h.client.MaintenanceByProperty(c.Request.Context(), c.Query("property_id"))
	case c.Query("tenant_id") != "":
		requests, err = h.client.MaintenanceByTenant(c.Request.Context(), c.Query("tenant_id"))
	case c.Query("unit_id") != "":
		requests, err = h.client.MaintenanceByUnit(c.Request.Context(), c.Query("unit_id"))
	default:
		requests, err = h.client.ListMaintenanceRequests(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	requests = views.Search(requests, c.Query("q"), views.MaintenanceFields)
	c.JSON(http.StatusOK, h.decorate(requests))
}

func (h *Handler) GetMaintenanceRequest(c *gin.Context) {
	request, err := h.client.GetMaintenanceRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	rows := h.decorate([]models.MaintenanceRequest{*request})
	c.JSON(http.StatusOK, rows[0])
}

func (h *Handler) CreateMaintenanceRequest(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionCreateMaintenance) {
		return
	}
	var form forms.MaintenanceRequestForm
	if !h.bindForm(c, &form) {
		return
	}
	request, err := h.client.CreateMaintenanceRequest(c.Request.Context(), assettone.MaintenanceRequestInput{
		Title:       form.Title,
		Description: form.Description,
		UnitID:      form.UnitID,
		Priority:    models.MaintenancePriority(form.Priority),
		Notes:       form.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *Handler) UpdateMaintenanceRequest(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionCreateMaintenance) {
		return
	}
	var form forms.MaintenanceRequestForm
	if !h.bindForm(c, &form) {
		return
	}
	request, err := h.client.UpdateMaintenanceRequest(c.Request.Context(), c.Param("id"), assettone.MaintenanceRequestInput{
		Title:       form.Title,
		Description: form.Description,
		UnitID:      form.UnitID,
		Priority:    models.MaintenancePriority(form.Priority),
		Notes:       form.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *Handler) DeleteMaintenanceRequest(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionApproveMaintenance) {
		return
	}
	if err := h.client.DeleteMaintenanceRequest(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// transitionMaintenance checks the workflow locally before dispatching, so
// an action that cannot fire never reaches the network.
func (h *Handler) transitionMaintenance(c *gin.Context, action maintenance.WorkflowAction,
	call func(id string) (*models.MaintenanceRequest, error)) {

	if !h.requireAction(c, rbac.ActionApproveMaintenance) {
		return
	}
	id := c.Param("id")
	current, err := h.client.GetMaintenanceRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !maintenance.CanTransition(current.Status, action) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Can only " + string(action) + " " + allowedSourceStatus(action) + " maintenance requests",
		})
		return
	}
	updated, err := call(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func allowedSourceStatus(action maintenance.WorkflowAction) string {
	if action == maintenance.ActionComplete {
		return "approved"
	}
	return "pending"
}

func (h *Handler) ApproveMaintenanceRequest(c *gin.Context) {
	h.transitionMaintenance(c, maintenance.ActionApprove, func(id string) (*models.MaintenanceRequest, error) {
		return h.client.ApproveMaintenanceRequest(c.Request.Context(), id)
	})
}

func (h *Handler) RejectMaintenanceRequest(c *gin.Context) {
	h.transitionMaintenance(c, maintenance.ActionReject, func(id string) (*models.MaintenanceRequest, error) {
		return h.client.RejectMaintenanceRequest(c.Request.Context(), id)
	})
}

func (h *Handler) CompleteMaintenanceRequest(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionCompleteMaintenance) {
		return
	}
	var form forms.RepairCostForm
	if !h.bindForm(c, &form) {
		return
	}

	id := c.Param("id")
	current, err := h.client.GetMaintenanceRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := maintenance.ValidateComplete(current.Status, form.RepairCost); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.client.CompleteMaintenanceRequest(c.Request.Context(), id, form.RepairCost)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListStaff(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageStaff) {
		return
	}
	staff, err := h.client.ListStaff(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) GetStaff(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageStaff) {
		return
	}
	staff, err := h.client.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageStaff) {
		return
	}
	var form forms.StaffForm
	if !h.bindForm(c, &form) {
		return
	}
	result, err := h.client.CreateStaffAccount(c.Request.Context(), assettone.StaffInput{
		FirstName:            form.FirstName,
		LastName:             form.LastName,
		Email:                form.Email,
		PhoneNumber:          form.PhoneNumber,
		UserType:             models.UserType(form.UserType),
		IdentificationType:   models.IdentificationType(form.IdentificationType),
		IdentificationNumber: form.IdentificationNumber,
		Permissions:          form.Permissions,
		PropertyIDs:          form.PropertyIDs,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageStaff) {
		return
	}
	var in assettone.StaffInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	staff, err := h.client.UpdateStaff(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionManageStaff) {
		return
	}
	if err := h.client.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) EmailTenants(c *gin.Context) {
	if !h.requireAction(c, rbac.ActionMessageTenants) {
		return
	}
	var form forms.EmailTenantsForm
	if !h.bindForm(c, &form) {
		return
	}
	result, err := h.client.EmailTenants(c.Request.Context(), form.Subject, form.Message, form.TenantIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CommunicationHistory(c *gin.Context) {
	records, err := h.client.CommunicationHistory(c.Request.Context(), assettone.CommunicationFilter{
		Type:      models.CommunicationType(c.Query("type")),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		TenantID:  c.Query("tenant_id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
