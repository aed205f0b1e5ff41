package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCampaignStatus_Derived(t *testing.T) {
	cmp := &Campaign{ID: uuid.New(), Requirements: []string{"req"}}

	assert.Equal(t, CampaignStatusDraft, cmp.Status(nil))

	active := NewParticipation(cmp, uuid.New())
	assert.Equal(t, CampaignStatusActive, cmp.Status([]*Participation{active}))

	done := NewParticipation(cmp, uuid.New())
	done.Phase = PhaseCompleted
	rejected := NewParticipation(cmp, uuid.New())
	rejected.Phase = PhaseRejectedProposal
	assert.Equal(t, CampaignStatusCompleted, cmp.Status([]*Participation{done, rejected}))

	// one live participation keeps the campaign active
	assert.Equal(t, CampaignStatusActive, cmp.Status([]*Participation{done, active}))
}

func TestPhaseTerminal(t *testing.T) {
	assert.True(t, PhaseCompleted.Terminal())
	assert.True(t, PhaseRejectedProposal.Terminal())
	assert.True(t, PhaseRejectedContent.Terminal())
	assert.False(t, PhaseProposal.Terminal())
	assert.False(t, PhasePayment.Terminal())
}

func TestResetChecklist(t *testing.T) {
	cmp := &Campaign{ID: uuid.New(), Requirements: []string{"a", "b"}}
	p := NewParticipation(cmp, uuid.New())
	p.RequirementChecklist["a"] = true
	p.RequirementChecklist["b"] = true

	p.ResetChecklist(cmp.Requirements)

	assert.Len(t, p.RequirementChecklist, 2)
	assert.False(t, p.RequirementChecklist["a"])
	assert.False(t, p.RequirementChecklist["b"])
}
