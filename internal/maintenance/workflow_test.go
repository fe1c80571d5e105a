package maintenance

import (
	"testing"

	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []WorkflowAction{ActionApprove, ActionReject}, AllowedActions(models.MaintenancePending))
	assert.Equal(t, []WorkflowAction{ActionComplete}, AllowedActions(models.MaintenanceApproved))
	assert.Nil(t, AllowedActions(models.MaintenanceRejected))
	assert.Nil(t, AllowedActions(models.MaintenanceCompleted))
}

func TestNext(t *testing.T) {
	next, err := Next(models.MaintenancePending, ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceApproved, next)

	next, err = Next(models.MaintenancePending, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceRejected, next)

	next, err = Next(models.MaintenanceApproved, ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceCompleted, next)
}

func TestNext_InvalidTransitions(t *testing.T) {
	cases := []struct {
		status models.MaintenanceStatus
		action WorkflowAction
	}{
		{models.MaintenancePending, ActionComplete},
		{models.MaintenanceApproved, ActionApprove},
		{models.MaintenanceApproved, ActionReject},
		{models.MaintenanceRejected, ActionApprove},
		{models.MaintenanceRejected, ActionComplete},
		{models.MaintenanceCompleted, ActionReject},
		{models.MaintenanceCompleted, ActionComplete},
	}
	for _, tc := range cases {
		_, err := Next(tc.status, tc.action)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", tc.action, tc.status)
		assert.False(t, CanTransition(tc.status, tc.action))
	}
}

func TestValidateComplete(t *testing.T) {
	// Completion needs an approved request and a positive repair cost.
	assert.NoError(t, ValidateComplete(models.MaintenanceApproved, 150))
	assert.ErrorIs(t, ValidateComplete(models.MaintenanceApproved, 0), ErrRepairCost)
	assert.ErrorIs(t, ValidateComplete(models.MaintenanceApproved, -5), ErrRepairCost)
	assert.ErrorIs(t, ValidateComplete(models.MaintenancePending, 150), ErrInvalidTransition)
	assert.ErrorIs(t, ValidateComplete(models.MaintenanceCompleted, 150), ErrInvalidTransition)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.MaintenancePending))
	assert.False(t, IsTerminal(models.MaintenanceApproved))
	assert.True(t, IsTerminal(models.MaintenanceRejected))
	assert.True(t, IsTerminal(models.MaintenanceCompleted))
}
