package constants

// NATS subjects for participation lifecycle events
const (
	SubjectParticipationAccepted  = "participation.accepted"
	SubjectParticipationRejected  = "participation.rejected"
	SubjectParticipationDelivered = "participation.delivered"
	SubjectParticipationApproved  = "participation.approved"
	SubjectParticipationRevision  = "participation.revision_requested"
	SubjectParticipationCompleted = "participation.completed"

	SubjectPaymentSettled = "payment.settled"
	SubjectPaymentFailed  = "payment.failed"
)
