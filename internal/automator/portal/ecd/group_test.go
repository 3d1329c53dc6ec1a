package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
)

func TestGroupPlan_LeadPlusOneDependent(t *testing.T) {
	f := &form.ApplicantForm{
		FullName: "JOHN MICHAEL DOE",
		FamilyMembers: []form.FamilyMember{
			{FullName: "JANE ANN DOE", HasVisa: true, VisaNumber: "V123"},
		},
	}

	plan := groupPlan(f)

	// Exactly lead + 1, in order; the final submission is not part of the
	// per-traveller plan and happens once regardless of traveller count.
	require.Len(t, plan, 2)

	assert.True(t, plan[0].Lead)
	assert.Equal(t, 0, plan[0].Index)
	assert.Equal(t, "JOHN MICHAEL DOE", plan[0].Name)
	assert.Nil(t, plan[0].Member)

	assert.False(t, plan[1].Lead)
	assert.Equal(t, 1, plan[1].Index)
	assert.Equal(t, "JANE ANN DOE", plan[1].Name)
	require.NotNil(t, plan[1].Member)
	assert.Equal(t, "V123", plan[1].Member.VisaNumber)
}

func TestGroupPlan_NoDependents(t *testing.T) {
	f := &form.ApplicantForm{FullName: "SOLO TRAVELLER"}

	plan := groupPlan(f)

	require.Len(t, plan, 1)
	assert.True(t, plan[0].Lead)
}

func TestGroupPlan_PreservesDependentOrder(t *testing.T) {
	f := &form.ApplicantForm{
		FullName: "LEAD",
		FamilyMembers: []form.FamilyMember{
			{FullName: "FIRST"},
			{FullName: "SECOND"},
			{FullName: "THIRD"},
		},
	}

	plan := groupPlan(f)

	require.Len(t, plan, 4)
	names := []string{plan[1].Name, plan[2].Name, plan[3].Name}
	assert.Equal(t, []string{"FIRST", "SECOND", "THIRD"}, names)
	for i, step := range plan {
		assert.Equal(t, i, step.Index)
	}
}
