package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/campaign/mocks"
)

func newContext(t *testing.T, method, body string, campaignID, influencerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId", "influencerId")
	c.SetParamValues(campaignID.String(), influencerID.String())
	return c, rec
}

func TestAcceptProposalHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()

	mockUC.EXPECT().
		AcceptProposal(gomock.Any(), campaignID, influencerID, true).
		Return(&models.Participation{
			CampaignID:   campaignID,
			InfluencerID: influencerID,
			Phase:        models.PhaseProduction,
		}, nil)

	h := NewParticipationHandler(mockUC)
	c, rec := newContext(t, nethttp.MethodPost, `{"terms_accepted":true}`, campaignID, influencerID)

	assert.NoError(t, h.AcceptProposal(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestAcceptProposalHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	h := NewParticipationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId", "influencerId")
	c.SetParamValues("not-a-uuid", uuid.New().String())

	assert.NoError(t, h.AcceptProposal(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestAcceptProposalHandler_WrongPhaseMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()

	mockUC.EXPECT().
		AcceptProposal(gomock.Any(), campaignID, influencerID, true).
		Return(nil, apperrors.NewInvalidStateTransition("acceptProposal", "COMPLETED"))

	h := NewParticipationHandler(mockUC)
	c, rec := newContext(t, nethttp.MethodPost, `{"terms_accepted":true}`, campaignID, influencerID)

	assert.NoError(t, h.AcceptProposal(c))
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestSubmitDeliveryHandler_UnmetRequirementsMapsTo422(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()

	mockUC.EXPECT().
		SubmitDelivery(gomock.Any(), campaignID, influencerID, "https://instagram.com/p/abc", gomock.Any()).
		Return(nil, apperrors.NewUnmetRequirements([]string{"usar a hashtag oficial"}))

	h := NewParticipationHandler(mockUC)
	body := `{"post_url":"https://instagram.com/p/abc","checklist":{"usar a hashtag oficial":false}}`
	c, rec := newContext(t, nethttp.MethodPost, body, campaignID, influencerID)

	assert.NoError(t, h.SubmitDelivery(c))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "usar a hashtag oficial")
}

func TestGetParticipationHandler_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()

	mockUC.EXPECT().
		GetParticipation(gomock.Any(), campaignID, influencerID).
		Return(nil, apperrors.ErrNotFound)

	h := NewParticipationHandler(mockUC)
	c, rec := newContext(t, nethttp.MethodGet, "", campaignID, influencerID)

	assert.NoError(t, h.GetParticipation(c))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestProcessPaymentHandler_ProviderFailureMapsTo502(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()
	methodID := uuid.New()

	mockUC.EXPECT().
		ProcessPayment(gomock.Any(), campaignID, influencerID, methodID).
		Return(nil, apperrors.NewPaymentFailed("card declined", nil))

	h := NewParticipationHandler(mockUC)
	body := `{"method_id":"` + methodID.String() + `"}`
	c, rec := newContext(t, nethttp.MethodPost, body, campaignID, influencerID)

	assert.NoError(t, h.ProcessPayment(c))
	assert.Equal(t, nethttp.StatusBadGateway, rec.Code)
}

func TestProcessPaymentHandler_MissingMethodID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)

	h := NewParticipationHandler(mockUC)
	c, rec := newContext(t, nethttp.MethodPost, `{}`, uuid.New(), uuid.New())

	assert.NoError(t, h.ProcessPayment(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestGetStepsHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockParticipationUC(ctrl)
	campaignID := uuid.New()
	influencerID := uuid.New()

	mockUC.EXPECT().
		ProjectSteps(gomock.Any(), campaignID, influencerID).
		Return(&models.StepProjection{
			CurrentStepID: "production",
			Steps: []models.Step{
				{ID: "proposal", Title: "Proposta", Status: models.StepStatusCompleted},
				{ID: "production", Title: "Produção de conteúdo", Status: models.StepStatusCurrent},
			},
		}, nil)

	h := NewParticipationHandler(mockUC)
	c, rec := newContext(t, nethttp.MethodGet, "", campaignID, influencerID)

	assert.NoError(t, h.GetSteps(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_step_id":"production"`)
}
