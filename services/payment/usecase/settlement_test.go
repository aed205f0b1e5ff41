package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/payment/mocks"
)

func settlementConfig() *models.Config {
	return &models.Config{
		Payment: models.PaymentConfig{Currency: "BRL", LockTTLSeconds: 30},
	}
}

func TestProcessCampaignPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	methodID := uuid.New()
	amount := decimal.NewFromInt(3500)
	method := &models.PaymentMethod{ID: methodID, OwnerID: uuid.New(), Last4: "4242"}

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().GetMethod(gomock.Any(), methodID).Return(method, nil)
	mockRepo.EXPECT().
		CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.PaymentRecord) error {
			assert.Equal(t, participationID, record.ParticipationID)
			assert.Equal(t, models.PaymentStatusPending, record.Status)
			assert.True(t, record.Amount.Equal(amount))
			return nil
		})
	// one update to processing, one to completed
	mockRepo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockCharger.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResponse, error) {
			assert.Equal(t, methodID, req.MethodID)
			assert.Equal(t, "BRL", req.Currency)
			assert.True(t, req.Amount.Equal(amount))
			return &models.ChargeResponse{ProviderRef: "ch_123", Approved: true}, nil
		})
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), "payment.settled", gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, methodID, amount)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, record.Status)
	assert.NotNil(t, record.ReleaseDate)
}

func TestProcessCampaignPayment_IdempotentOnCompletedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	completed := &models.PaymentRecord{
		ID:              uuid.New(),
		ParticipationID: participationID,
		Status:          models.PaymentStatusCompleted,
	}

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(completed, nil)
	// no GetMethod, no Charge, no record writes

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, uuid.New(), decimal.NewFromInt(3500))

	assert.NoError(t, err)
	assert.Equal(t, completed, record)
}

func TestProcessCampaignPayment_LockNotAcquired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(false, nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, uuid.New(), decimal.NewFromInt(100))

	assert.Nil(t, record)
	assert.True(t, apperrors.IsPaymentFailed(err))
}

func TestProcessCampaignPayment_ProviderDeclines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	methodID := uuid.New()
	method := &models.PaymentMethod{ID: methodID}

	var persisted *models.PaymentRecord
	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().GetMethod(gomock.Any(), methodID).Return(method, nil)
	mockRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		UpdateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.PaymentRecord) error {
			persisted = record
			return nil
		}).Times(2)
	mockCharger.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResponse{Approved: false, Reason: "insufficient funds"}, nil)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), "payment.failed", gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, methodID, decimal.NewFromInt(3500))

	assert.Nil(t, record)
	assert.True(t, apperrors.IsPaymentFailed(err))
	assert.Equal(t, models.PaymentStatusFailed, persisted.Status)
	assert.Equal(t, "insufficient funds", persisted.FailureReason)
}

func TestProcessCampaignPayment_RetryReusesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	retryMethodID := uuid.New()
	existing := &models.PaymentRecord{
		ID:              uuid.New(),
		ParticipationID: participationID,
		MethodID:        uuid.New(),
		Status:          models.PaymentStatusFailed,
		FailureReason:   "insufficient funds",
	}

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(existing, nil)
	mockRepo.EXPECT().GetMethod(gomock.Any(), retryMethodID).Return(&models.PaymentMethod{ID: retryMethodID}, nil)
	// no CreateRecord: the failed record is reused, exactly one charge issued
	mockRepo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockCharger.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResponse, error) {
			assert.Equal(t, existing.ID.String(), req.ReferenceID)
			assert.Equal(t, retryMethodID, req.MethodID)
			return &models.ChargeResponse{ProviderRef: "ch_456", Approved: true}, nil
		})
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), "payment.settled", gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, retryMethodID, decimal.NewFromInt(3500))

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, record.ID)
	assert.Equal(t, models.PaymentStatusCompleted, record.Status)
	assert.Equal(t, retryMethodID, record.MethodID)
	assert.Empty(t, record.FailureReason)
}

func TestProcessCampaignPayment_ResumesProcessingRecordWithSameReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	methodID := uuid.New()
	// crashed before the final status write, the record is stuck processing
	existing := &models.PaymentRecord{
		ID:              uuid.New(),
		ParticipationID: participationID,
		MethodID:        methodID,
		Status:          models.PaymentStatusProcessing,
	}

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(existing, nil)
	mockRepo.EXPECT().GetMethod(gomock.Any(), methodID).Return(&models.PaymentMethod{ID: methodID}, nil)
	// no CreateRecord: the stuck record is resumed, and the charge carries
	// its ID so the provider can collapse it with the earlier attempt
	mockRepo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockCharger.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResponse, error) {
			assert.Equal(t, existing.ID.String(), req.ReferenceID)
			return &models.ChargeResponse{ProviderRef: "ch_789", Approved: true}, nil
		})
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), "payment.settled", gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, methodID, decimal.NewFromInt(3500))

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, record.ID)
	assert.Equal(t, models.PaymentStatusCompleted, record.Status)
}

func TestProcessCampaignPayment_ProviderUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	methodID := uuid.New()

	mockRepo.EXPECT().AcquireSettlementLock(gomock.Any(), participationID).Return(true, nil)
	mockRepo.EXPECT().ReleaseSettlementLock(gomock.Any(), participationID).Return(nil)
	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().GetMethod(gomock.Any(), methodID).Return(&models.PaymentMethod{ID: methodID}, nil)
	mockRepo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockCharger.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection timeout"))
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), "payment.failed", gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ProcessCampaignPayment(context.Background(), participationID, methodID, decimal.NewFromInt(3500))

	assert.Nil(t, record)
	assert.True(t, apperrors.IsPaymentFailed(err))
}

func TestReleaseCampaignPayment_RequiresCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	pending := &models.PaymentRecord{ID: uuid.New(), ParticipationID: participationID, Status: models.PaymentStatusPending}

	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(pending, nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.ReleaseCampaignPayment(context.Background(), participationID)

	assert.Nil(t, record)
	assert.True(t, apperrors.IsPreconditionFailed(err))
}

func TestRefundCampaignPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	participationID := uuid.New()
	completed := &models.PaymentRecord{
		ID:              uuid.New(),
		ParticipationID: participationID,
		Status:          models.PaymentStatusCompleted,
	}

	mockRepo.EXPECT().GetRecordByParticipation(gomock.Any(), participationID).Return(completed, nil)
	mockCharger.EXPECT().
		Refund(gomock.Any(), completed.ID.String(), "disputa do anunciante").
		Return(&models.ChargeResponse{Approved: true}, nil)
	mockRepo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.RefundCampaignPayment(context.Background(), participationID, "disputa do anunciante")

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, record.Status)
}

func TestRefundCampaignPayment_RequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(settlementConfig(), mockRepo, mockCharger, mockGW)

	record, err := uc.RefundCampaignPayment(context.Background(), uuid.New(), "")

	assert.Nil(t, record)
	assert.True(t, apperrors.IsPreconditionFailed(err))
}
