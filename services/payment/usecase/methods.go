package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/payment"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	cfg     *models.Config
	repo    payment.PaymentRepo
	charger payment.ChargerGW
	gw      payment.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payment.PaymentRepo,
	charger payment.ChargerGW,
	gw payment.PaymentGW,
) payment.PaymentUC {
	return &paymentUC{
		cfg:     cfg,
		repo:    repo,
		charger: charger,
		gw:      gw,
	}
}

// ListMethods returns the owner's stored payment methods
func (uc *paymentUC) ListMethods(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentMethod, error) {
	return uc.repo.ListMethods(ctx, ownerID)
}

// AddMethod validates and stores a new card. The first card an owner adds
// becomes the default automatically. The CVC is validated and discarded.
func (uc *paymentUC) AddMethod(ctx context.Context, ownerID uuid.UUID, req *models.AddPaymentMethodRequest) (*models.PaymentMethod, error) {
	if err := validateCard(req); err != nil {
		return nil, err
	}

	now := models.Now()
	method := &models.PaymentMethod{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Brand:      req.Brand,
		Last4:      last4(req.CardNumber),
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		HolderName: req.HolderName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.repo.CreateMethod(ctx, method); err != nil {
		return nil, err
	}

	return method, nil
}

// SetDefaultMethod flips the owner's default to the given method atomically
func (uc *paymentUC) SetDefaultMethod(ctx context.Context, ownerID, methodID uuid.UUID) error {
	return uc.repo.SetDefaultMethod(ctx, ownerID, methodID)
}

// RemoveMethod deletes a stored method. Removing the default while other
// methods exist fails; the caller must reassign the default first. Removing
// the sole remaining method succeeds and leaves the owner with no default.
func (uc *paymentUC) RemoveMethod(ctx context.Context, ownerID, methodID uuid.UUID) error {
	return uc.repo.RemoveMethod(ctx, ownerID, methodID)
}

func validateCard(req *models.AddPaymentMethodRequest) error {
	if req.ExpMonth < 1 || req.ExpMonth > 12 {
		return apperrors.NewPreconditionFailed("expiration month must be between 1 and 12")
	}
	if req.ExpYear < time.Now().Year() {
		return apperrors.NewPreconditionFailed("card is expired")
	}
	if len(req.CVC) < 3 || len(req.CVC) > 4 {
		return apperrors.NewPreconditionFailed("cvc must be 3 or 4 digits")
	}
	if req.HolderName == "" {
		return apperrors.NewPreconditionFailed("holder name is required")
	}
	return nil
}

func last4(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
