// Package maintenance models the request lifecycle the console enforces
// before dispatching an action: PENDING may be approved or rejected,
// APPROVED may be completed, and the two end states accept nothing further.
package maintenance

import (
	"errors"
	"fmt"

	"github.com/CodeDreamers777/assettone-console/internal/models"
)

// WorkflowAction is a user-triggerable transition on a maintenance request.
type WorkflowAction string

const (
	ActionApprove  WorkflowAction = "approve"
	ActionReject   WorkflowAction = "reject"
	ActionComplete WorkflowAction = "complete"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in current status")
	ErrRepairCost        = errors.New("repair cost must be greater than zero")
)

var transitions = map[models.MaintenanceStatus]map[WorkflowAction]models.MaintenanceStatus{
	models.MaintenancePending: {
		ActionApprove: models.MaintenanceApproved,
		ActionReject:  models.MaintenanceRejected,
	},
	models.MaintenanceApproved: {
		ActionComplete: models.MaintenanceCompleted,
	},
}

// AllowedActions lists the actions a screen should enable for a request in
// the given status. Terminal statuses return nothing.
func AllowedActions(status models.MaintenanceStatus) []WorkflowAction {
	switch status {
	case models.MaintenancePending:
		return []WorkflowAction{ActionApprove, ActionReject}
	case models.MaintenanceApproved:
		return []WorkflowAction{ActionComplete}
	default:
		return nil
	}
}

// CanTransition reports whether action is valid for a request in status.
func CanTransition(status models.MaintenanceStatus, action WorkflowAction) bool {
	_, ok := transitions[status][action]
	return ok
}

// Next returns the status a request moves to when action fires.
func Next(status models.MaintenanceStatus, action WorkflowAction) (models.MaintenanceStatus, error) {
	next, ok := transitions[status][action]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, status)
	}
	return next, nil
}

// ValidateComplete checks the extra completion requirement: a positive
// repair cost must accompany the action.
func ValidateComplete(status models.MaintenanceStatus, repairCost float64) error {
	if !CanTransition(status, ActionComplete) {
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, status)
	}
	if repairCost <= 0 {
		return ErrRepairCost
	}
	return nil
}

// IsTerminal reports whether no action can ever fire again.
func IsTerminal(status models.MaintenanceStatus) bool {
	return len(AllowedActions(status)) == 0
}
