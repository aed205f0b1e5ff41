package constants

// Redis key patterns
const (
	// KeyPaymentLock serializes settlement attempts per participation,
	// formatted with the participation ID.
	KeyPaymentLock = "payment:lock:%s"
)
