package interfaces

// ICompletionScheduler triggers the asynchronous completion of a processing
// payment. The in-repo implementation fires after a short delay as a stand-in
// for a payment-gateway webhook; production wiring can replace it with a real
// webhook handler without touching transition logic.

type ICompletionScheduler interface {
	SchedulePaymentCompletion(paymentID string)
}
