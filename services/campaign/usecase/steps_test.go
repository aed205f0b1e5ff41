package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

func projectionFor(t *testing.T, phase models.ParticipationPhase) (*models.Campaign, *models.StepProjection) {
	t.Helper()
	cmp := testCampaign()
	p := testParticipation(cmp, phase)
	return cmp, ProjectSteps(cmp, p)
}

func stepStatuses(projection *models.StepProjection) []models.StepStatus {
	statuses := make([]models.StepStatus, 0, len(projection.Steps))
	for _, s := range projection.Steps {
		statuses = append(statuses, s.Status)
	}
	return statuses
}

func TestProjectSteps_Proposal(t *testing.T) {
	_, projection := projectionFor(t, models.PhaseProposal)

	assert.Equal(t, "proposal", projection.CurrentStepID)
	assert.False(t, projection.Rejected)
	assert.Equal(t, []models.StepStatus{
		models.StepStatusCurrent,
		models.StepStatusUpcoming,
		models.StepStatusUpcoming,
		models.StepStatusUpcoming,
		models.StepStatusUpcoming,
	}, stepStatuses(projection))
	assert.Equal(t, "Responder à proposta", projection.NextAction.Title)
}

func TestProjectSteps_Validation(t *testing.T) {
	_, projection := projectionFor(t, models.PhaseValidation)

	assert.Equal(t, "validation", projection.CurrentStepID)
	assert.Equal(t, []models.StepStatus{
		models.StepStatusCompleted,
		models.StepStatusCompleted,
		models.StepStatusCompleted,
		models.StepStatusCurrent,
		models.StepStatusUpcoming,
	}, stepStatuses(projection))
	assert.Equal(t, "Aguardando validação", projection.NextAction.Title)
}

func TestProjectSteps_Completed(t *testing.T) {
	_, projection := projectionFor(t, models.PhaseCompleted)

	assert.Equal(t, "completed", projection.CurrentStepID)
	assert.False(t, projection.Rejected)
	for _, s := range projection.Steps {
		assert.Equal(t, models.StepStatusCompleted, s.Status)
	}
	assert.Equal(t, "Campanha concluída", projection.NextAction.Title)
}

func TestProjectSteps_RejectedProposal(t *testing.T) {
	_, projection := projectionFor(t, models.PhaseRejectedProposal)

	assert.True(t, projection.Rejected)
	assert.Equal(t, "proposal", projection.CurrentStepID)
	assert.Equal(t, models.StepStatusCurrent, projection.Steps[0].Status)
	assert.Equal(t, "Proposta recusada", projection.NextAction.Title)
}

func TestProjectSteps_RejectedContent(t *testing.T) {
	cmp := testCampaign()
	p := testParticipation(cmp, models.PhaseRejectedContent)
	p.Feedback = "fora do briefing"

	projection := ProjectSteps(cmp, p)

	assert.True(t, projection.Rejected)
	assert.Equal(t, "validation", projection.CurrentStepID)
	assert.Equal(t, "Conteúdo recusado", projection.NextAction.Title)
	assert.Contains(t, projection.NextAction.Description, "fora do briefing")
}

func TestProjectSteps_DeliveryUsesPlatformInstructions(t *testing.T) {
	cmp := testCampaign()
	cmp.Platform = models.PlatformYouTube
	p := testParticipation(cmp, models.PhaseDelivery)

	projection := ProjectSteps(cmp, p)

	assert.Equal(t, "delivery", projection.CurrentStepID)
	assert.Equal(t, "Publish on YouTube", projection.NextAction.Title)
}

func TestProjectSteps_DoesNotMutateInputs(t *testing.T) {
	cmp := testCampaign()
	p := testParticipation(cmp, models.PhaseProduction)
	versionBefore := p.Version
	phaseBefore := p.Phase

	_ = ProjectSteps(cmp, p)

	assert.Equal(t, versionBefore, p.Version)
	assert.Equal(t, phaseBefore, p.Phase)
}

func TestStepTitles(t *testing.T) {
	_, projection := projectionFor(t, models.PhaseProposal)

	titles := make([]string, 0, len(projection.Steps))
	for _, s := range projection.Steps {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Proposta",
		"Produção de conteúdo",
		"Entrega",
		"Validação",
		"Pagamento",
	}, titles)
}
