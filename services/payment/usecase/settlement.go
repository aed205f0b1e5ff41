package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/constants"
	"github.com/vitrine-app/vitrine/internal/pkg/logger"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// ProcessCampaignPayment settles the campaign budget for one participation.
// Idempotent: an already completed record is returned unchanged so retries
// and concurrent calls never charge twice. The settlement lock closes the
// window between the record check and the provider call. A record left
// processing by a crash is re-charged under its original ID, which the
// provider uses to deduplicate (see ChargerGW).
func (uc *paymentUC) ProcessCampaignPayment(ctx context.Context, participationID, methodID uuid.UUID, amount decimal.Decimal) (*models.PaymentRecord, error) {
	locked, err := uc.repo.AcquireSettlementLock(ctx, participationID)
	if err != nil {
		return nil, apperrors.NewPaymentFailed("failed to acquire settlement lock", err)
	}
	if !locked {
		return nil, apperrors.NewPaymentFailed("settlement already in progress for this participation", nil)
	}
	defer func() {
		if err := uc.repo.ReleaseSettlementLock(ctx, participationID); err != nil {
			logger.Warn("Failed to release settlement lock",
				logger.ErrorField(err),
				logger.String("participation_id", participationID.String()),
			)
		}
	}()

	record, err := uc.repo.GetRecordByParticipation(ctx, participationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if record != nil && record.Status == models.PaymentStatusCompleted {
		return record, nil
	}

	method, err := uc.repo.GetMethod(ctx, methodID)
	if err != nil {
		return nil, err
	}

	if record == nil {
		now := models.Now()
		record = &models.PaymentRecord{
			ID:              uuid.New(),
			ParticipationID: participationID,
			Amount:          amount,
			MethodID:        method.ID,
			Status:          models.PaymentStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.repo.CreateRecord(ctx, record); err != nil {
			return nil, err
		}
	} else {
		// retry with a possibly different method
		record.MethodID = method.ID
		record.Amount = amount
	}

	record.Status = models.PaymentStatusProcessing
	record.UpdatedAt = models.Now()
	if err := uc.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	resp, err := uc.charger.Charge(ctx, &models.ChargeRequest{
		ReferenceID: record.ID.String(),
		MethodID:    record.MethodID,
		Amount:      record.Amount,
		Currency:    uc.cfg.Payment.Currency,
		Description: fmt.Sprintf("campaign payment for participation %s", participationID),
	})
	if err != nil {
		uc.failRecord(ctx, record, err.Error())
		return nil, apperrors.NewPaymentFailed("charging provider unreachable", err)
	}
	if !resp.Approved {
		uc.failRecord(ctx, record, resp.Reason)
		return nil, apperrors.NewPaymentFailed(resp.Reason, nil)
	}

	record.MarkCompleted()
	if err := uc.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectPaymentSettled, record)
	return record, nil
}

// ReleaseCampaignPayment is an administrative compensation that restamps the
// release date of a completed settlement. Never called by the lifecycle.
func (uc *paymentUC) ReleaseCampaignPayment(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error) {
	record, err := uc.repo.GetRecordByParticipation(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.PaymentStatusCompleted {
		return nil, apperrors.NewPreconditionFailed("only a completed payment can be released")
	}

	now := models.Now()
	record.ReleaseDate = &now
	record.UpdatedAt = now
	if err := uc.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectPaymentSettled, record)
	return record, nil
}

// RefundCampaignPayment is an administrative compensation used for disputes.
// Never called by the lifecycle.
func (uc *paymentUC) RefundCampaignPayment(ctx context.Context, participationID uuid.UUID, reason string) (*models.PaymentRecord, error) {
	if reason == "" {
		return nil, apperrors.NewPreconditionFailed("refund reason is required")
	}

	record, err := uc.repo.GetRecordByParticipation(ctx, participationID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.PaymentStatusCompleted {
		return nil, apperrors.NewPreconditionFailed("only a completed payment can be refunded")
	}

	resp, err := uc.charger.Refund(ctx, record.ID.String(), reason)
	if err != nil {
		return nil, apperrors.NewPaymentFailed("charging provider unreachable", err)
	}
	if !resp.Approved {
		return nil, apperrors.NewPaymentFailed(resp.Reason, nil)
	}

	record.Status = models.PaymentStatusRefunded
	record.FailureReason = reason
	record.UpdatedAt = models.Now()
	if err := uc.repo.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetPaymentRecord returns the settlement record of a participation
func (uc *paymentUC) GetPaymentRecord(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error) {
	return uc.repo.GetRecordByParticipation(ctx, participationID)
}

func (uc *paymentUC) failRecord(ctx context.Context, record *models.PaymentRecord, reason string) {
	record.MarkFailed(reason)
	if err := uc.repo.UpdateRecord(ctx, record); err != nil {
		logger.Error("Failed to persist failed payment record",
			logger.ErrorField(err),
			logger.String("payment_record_id", record.ID.String()),
		)
	}
	uc.publishEvent(ctx, constants.SubjectPaymentFailed, record)
}

func (uc *paymentUC) publishEvent(ctx context.Context, subject string, record *models.PaymentRecord) {
	event := &models.PaymentEvent{
		PaymentRecordID: record.ID,
		ParticipationID: record.ParticipationID,
		Amount:          record.Amount,
		Status:          record.Status,
		Timestamp:       models.Now(),
	}

	if err := uc.gw.PublishPaymentEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish payment event",
			logger.ErrorField(err),
			logger.String("subject", subject),
			logger.String("payment_record_id", record.ID.String()),
		)
	}
}
