package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vitrine-app/vitrine/services/payment PaymentRepo

// PaymentRepo persists payment methods and payment records. Default-flag
// flips happen inside a single transaction so no reader ever observes zero
// or two defaults for an owner with methods.
type PaymentRepo interface {
	ListMethods(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentMethod, error)
	GetMethod(ctx context.Context, methodID uuid.UUID) (*models.PaymentMethod, error)
	// CreateMethod inserts the method, marking it default when it is the
	// owner's first.
	CreateMethod(ctx context.Context, method *models.PaymentMethod) error
	SetDefaultMethod(ctx context.Context, ownerID, methodID uuid.UUID) error
	// RemoveMethod deletes the method, failing with
	// apperrors.ErrConflictingDefaultPaymentMethod when it is the default
	// and other methods remain.
	RemoveMethod(ctx context.Context, ownerID, methodID uuid.UUID) error

	GetRecordByParticipation(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error)
	CreateRecord(ctx context.Context, record *models.PaymentRecord) error
	UpdateRecord(ctx context.Context, record *models.PaymentRecord) error

	// AcquireSettlementLock serializes settlement attempts per participation
	AcquireSettlementLock(ctx context.Context, participationID uuid.UUID) (bool, error)
	ReleaseSettlementLock(ctx context.Context, participationID uuid.UUID) error
}
