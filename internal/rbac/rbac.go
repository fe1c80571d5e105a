// Package rbac centralizes the permission matrix the original console
// scattered across screens as ad-hoc role string comparisons.
package rbac

import "github.com/CodeDreamers777/assettone-console/internal/models"

// Action names a role-gated console operation.
type Action string

const (
	ActionManageProperties     Action = "manage_properties"
	ActionAddUnits             Action = "add_units"
	ActionEditUnits            Action = "edit_units"
	ActionDeleteUnits          Action = "delete_units"
	ActionViewFinancialData    Action = "view_financial_data"
	ActionManageTenants        Action = "manage_tenants"
	ActionManageLeases         Action = "manage_leases"
	ActionTransferLease        Action = "transfer_lease"
	ActionTerminateLease       Action = "terminate_lease"
	ActionApproveMaintenance   Action = "approve_maintenance"
	ActionCompleteMaintenance  Action = "complete_maintenance"
	ActionCreateMaintenance    Action = "create_maintenance"
	ActionManageStaff          Action = "manage_staff"
	ActionMessageTenants       Action = "message_tenants"
	ActionRecordPayments       Action = "record_payments"
	ActionViewReports          Action = "view_reports"
)

// matrix is the baseline grant per role. Staff permission flags widen or
// narrow the MANAGER/CLERK rows via Allowed.
var matrix = map[models.UserType]map[Action]bool{
	models.UserTypeAdmin: {
		ActionManageProperties:    true,
		ActionAddUnits:            true,
		ActionEditUnits:           true,
		ActionDeleteUnits:         true,
		ActionViewFinancialData:   true,
		ActionManageTenants:       true,
		ActionManageLeases:        true,
		ActionTransferLease:       true,
		ActionTerminateLease:      true,
		ActionApproveMaintenance:  true,
		ActionCompleteMaintenance: true,
		ActionCreateMaintenance:   true,
		ActionManageStaff:         true,
		ActionMessageTenants:      true,
		ActionRecordPayments:      true,
		ActionViewReports:         true,
	},
	models.UserTypeManager: {
		ActionManageTenants:       true,
		ActionManageLeases:        true,
		ActionTransferLease:       true,
		ActionTerminateLease:      true,
		ActionApproveMaintenance:  true,
		ActionCompleteMaintenance: true,
		ActionCreateMaintenance:   true,
		ActionManageStaff:         true,
		ActionMessageTenants:      true,
		ActionRecordPayments:      true,
		ActionViewReports:         true,
	},
	models.UserTypeClerk: {
		ActionManageTenants:     true,
		ActionCreateMaintenance: true,
	},
	models.UserTypeTenant: {
		ActionCreateMaintenance:   true,
		ActionCompleteMaintenance: true,
	},
}

// flagged maps the server's permission flags onto the actions they unlock.
var flagged = map[Action]func(models.Permissions) bool{
	ActionManageProperties:  func(p models.Permissions) bool { return p.CanManageProperties },
	ActionAddUnits:          func(p models.Permissions) bool { return p.CanAddUnits },
	ActionEditUnits:         func(p models.Permissions) bool { return p.CanEditUnits },
	ActionDeleteUnits:       func(p models.Permissions) bool { return p.CanDeleteUnits },
	ActionViewFinancialData: func(p models.Permissions) bool { return p.CanViewFinancialData },
}

// Can reports the baseline grant for role, ignoring per-staff flags.
func Can(role models.UserType, action Action) bool {
	return matrix[role][action]
}

// Allowed applies the staff permission-flag overlay on top of the role
// baseline: a flag-controlled action follows the flag for managers and
// clerks, while admins keep everything and tenants gain nothing.
func Allowed(role models.UserType, perms models.Permissions, action Action) bool {
	if role == models.UserTypeAdmin {
		return Can(role, action)
	}
	if check, ok := flagged[action]; ok {
		if role == models.UserTypeTenant {
			return false
		}
		return check(perms)
	}
	return Can(role, action)
}
