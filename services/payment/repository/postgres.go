package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vitrine-app/vitrine/internal/pkg/constants"
	"github.com/vitrine-app/vitrine/internal/pkg/database"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/payment"
)

// PaymentRepo implements payment.PaymentRepo backed by PostgreSQL and Redis
type PaymentRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) payment.PaymentRepo {
	return &PaymentRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// AcquireSettlementLock serializes settlement attempts per participation
func (r *PaymentRepo) AcquireSettlementLock(ctx context.Context, participationID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(constants.KeyPaymentLock, participationID)
	ttl := time.Duration(r.cfg.Payment.LockTTLSeconds) * time.Second
	return r.redisClient.AcquireLock(ctx, key, ttl)
}

// ReleaseSettlementLock removes a settlement lock
func (r *PaymentRepo) ReleaseSettlementLock(ctx context.Context, participationID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyPaymentLock, participationID)
	return r.redisClient.ReleaseLock(ctx, key)
}
