package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/payment/mocks"
)

func validAddRequest() *models.AddPaymentMethodRequest {
	return &models.AddPaymentMethodRequest{
		CardNumber: "4242424242424242",
		Brand:      "visa",
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
		HolderName: "Maria Silva",
	}
}

func TestAddMethod_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	ownerID := uuid.New()

	mockRepo.EXPECT().
		CreateMethod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, method *models.PaymentMethod) error {
			assert.Equal(t, ownerID, method.OwnerID)
			assert.Equal(t, "4242", method.Last4)
			assert.Equal(t, "Maria Silva", method.HolderName)
			return nil
		})

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockCharger, mockGW)

	method, err := uc.AddMethod(context.Background(), ownerID, validAddRequest())

	assert.NoError(t, err)
	assert.Equal(t, "4242", method.Last4)
	assert.NotEqual(t, uuid.Nil, method.ID)
}

func TestAddMethod_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockCharger, mockGW)

	tests := []struct {
		name   string
		mutate func(req *models.AddPaymentMethodRequest)
	}{
		{"month too low", func(req *models.AddPaymentMethodRequest) { req.ExpMonth = 0 }},
		{"month too high", func(req *models.AddPaymentMethodRequest) { req.ExpMonth = 13 }},
		{"expired year", func(req *models.AddPaymentMethodRequest) { req.ExpYear = time.Now().Year() - 1 }},
		{"cvc too short", func(req *models.AddPaymentMethodRequest) { req.CVC = "12" }},
		{"cvc too long", func(req *models.AddPaymentMethodRequest) { req.CVC = "12345" }},
		{"missing holder name", func(req *models.AddPaymentMethodRequest) { req.HolderName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAddRequest()
			tt.mutate(req)

			method, err := uc.AddMethod(context.Background(), uuid.New(), req)

			assert.Nil(t, method)
			assert.True(t, apperrors.IsPreconditionFailed(err))
		})
	}
}

func TestRemoveMethod_DefaultConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	ownerID := uuid.New()
	methodID := uuid.New()

	mockRepo.EXPECT().
		RemoveMethod(gomock.Any(), ownerID, methodID).
		Return(apperrors.ErrConflictingDefaultPaymentMethod)

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockCharger, mockGW)

	err := uc.RemoveMethod(context.Background(), ownerID, methodID)

	assert.ErrorIs(t, err, apperrors.ErrConflictingDefaultPaymentMethod)
}

func TestSetDefaultMethod_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	ownerID := uuid.New()
	methodID := uuid.New()

	mockRepo.EXPECT().SetDefaultMethod(gomock.Any(), ownerID, methodID).Return(nil)

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockCharger, mockGW)

	assert.NoError(t, uc.SetDefaultMethod(context.Background(), ownerID, methodID))
}

func TestListMethods_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockCharger := mocks.NewMockChargerGW(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	ownerID := uuid.New()
	methods := []*models.PaymentMethod{
		{ID: uuid.New(), OwnerID: ownerID, Last4: "4242", IsDefault: true},
		{ID: uuid.New(), OwnerID: ownerID, Last4: "1881"},
	}

	mockRepo.EXPECT().ListMethods(gomock.Any(), ownerID).Return(methods, nil)

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockCharger, mockGW)

	result, err := uc.ListMethods(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.True(t, result[0].IsDefault)
}
