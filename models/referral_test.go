package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, stage := range Stages {
		assert.True(t, ValidStatus(stage))
	}
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus("archived"))
}

func TestActionHistoryAppendPreservesOrder(t *testing.T) {
	var history ActionHistory
	history = history.Append("created", "")
	history = history.Append("stage_changed", "pending -> contacted")

	require.Len(t, history, 2)
	assert.Equal(t, "created", history[0].Action)
	assert.Equal(t, "stage_changed", history[1].Action)
	assert.Equal(t, "pending -> contacted", history[1].Notes)
	assert.False(t, history[1].Timestamp.Before(history[0].Timestamp))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleClinician))
	assert.True(t, ValidRole(RoleRecruiter))
	assert.True(t, ValidRole(RoleLeadership))
	assert.False(t, ValidRole("admin"))
}
