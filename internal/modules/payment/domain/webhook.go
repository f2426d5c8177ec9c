package domain

// WebhookHeaders carry PayPal's transmission signature for a webhook delivery.
type WebhookHeaders struct {
	TransmissionID   string
	TransmissionTime string
	TransmissionSig  string
	CertURL          string
	AuthAlgo         string
}

// Webhook event types that drive order status transitions. Anything else is
// acknowledged and ignored.
const (
	EventOrderApproved   = "CHECKOUT.ORDER.APPROVED"
	EventCaptureComplete = "PAYMENT.CAPTURE.COMPLETED"
	EventCaptureDenied   = "PAYMENT.CAPTURE.DENIED"
)
