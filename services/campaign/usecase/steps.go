package usecase

import (
	"fmt"
	"strings"

	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// stepDef fixes the order and titles of the lifecycle steps shown to
// influencers. The projection is derived from this list plus the
// participation phase; it is never stored.
type stepDef struct {
	id    string
	title string
	phase models.ParticipationPhase
}

var lifecycleSteps = []stepDef{
	{id: "proposal", title: "Proposta", phase: models.PhaseProposal},
	{id: "production", title: "Produção de conteúdo", phase: models.PhaseProduction},
	{id: "delivery", title: "Entrega", phase: models.PhaseDelivery},
	{id: "validation", title: "Validação", phase: models.PhaseValidation},
	{id: "payment", title: "Pagamento", phase: models.PhasePayment},
}

// stepIndex maps a phase to its position in the step list. Terminal phases
// map to the step they ended on.
func stepIndex(phase models.ParticipationPhase) int {
	switch phase {
	case models.PhaseProposal, models.PhaseRejectedProposal:
		return 0
	case models.PhaseProduction:
		return 1
	case models.PhaseDelivery:
		return 2
	case models.PhaseValidation, models.PhaseRejectedContent:
		return 3
	case models.PhasePayment:
		return 4
	case models.PhaseCompleted:
		return len(lifecycleSteps)
	}
	return 0
}

// ProjectSteps derives the read-only step list, current step and next action
// for one participation. It never mutates its inputs.
func ProjectSteps(cmp *models.Campaign, p *models.Participation) *models.StepProjection {
	current := stepIndex(p.Phase)
	rejected := p.Phase == models.PhaseRejectedProposal || p.Phase == models.PhaseRejectedContent

	steps := make([]models.Step, 0, len(lifecycleSteps))
	for i, def := range lifecycleSteps {
		// on rejection the step the participation ended on stays current so
		// the UI can mark it as the terminal point
		status := models.StepStatusUpcoming
		if i < current {
			status = models.StepStatusCompleted
		} else if i == current {
			status = models.StepStatusCurrent
		}
		steps = append(steps, models.Step{ID: def.id, Title: def.title, Status: status})
	}

	projection := &models.StepProjection{
		Steps:    steps,
		Rejected: rejected,
	}
	if current < len(lifecycleSteps) {
		projection.CurrentStepID = lifecycleSteps[current].id
	} else {
		projection.CurrentStepID = "completed"
	}
	projection.NextAction = nextAction(cmp, p)

	return projection
}

func nextAction(cmp *models.Campaign, p *models.Participation) *models.NextAction {
	instr := models.InstructionsFor(cmp.Platform)

	switch p.Phase {
	case models.PhaseProposal:
		return &models.NextAction{
			Title:       "Responder à proposta",
			Description: fmt.Sprintf("Revise os termos da campanha %q e aceite ou recuse a proposta.", cmp.Title),
		}
	case models.PhaseProduction:
		return &models.NextAction{
			Title:       "Produzir o conteúdo",
			Description: fmt.Sprintf("Produza o conteúdo seguindo os requisitos: %s.", strings.Join(cmp.Requirements, "; ")),
		}
	case models.PhaseDelivery:
		return &models.NextAction{
			Title:       instr.Title,
			Description: strings.Join(instr.DeliverySteps, " "),
		}
	case models.PhaseValidation:
		return &models.NextAction{
			Title:       "Aguardando validação",
			Description: "O anunciante está validando o conteúdo entregue.",
		}
	case models.PhasePayment:
		return &models.NextAction{
			Title:       "Aguardando pagamento",
			Description: "O pagamento da campanha está sendo processado.",
		}
	case models.PhaseCompleted:
		return &models.NextAction{
			Title:       "Campanha concluída",
			Description: "Pagamento liberado. Nenhuma ação pendente.",
		}
	case models.PhaseRejectedProposal:
		return &models.NextAction{
			Title:       "Proposta recusada",
			Description: "A participação foi encerrada na fase de proposta.",
		}
	case models.PhaseRejectedContent:
		return &models.NextAction{
			Title:       "Conteúdo recusado",
			Description: fmt.Sprintf("O conteúdo foi recusado: %s", p.Feedback),
		}
	}
	return nil
}
