package email

import "time"

// OrderConfirmation is the data rendered into the purchase email.
type OrderConfirmation struct {
	ProjectTitle string
	Amount       float64
	OrderID      string
	PurchasedAt  time.Time
}

// Provider sends transactional mail. The SMTP implementation is used
// when an SMTP host is configured; otherwise the log-only provider
// keeps the pipeline observable in development.
type Provider interface {
	SendOrderConfirmation(to, name string, data OrderConfirmation) error
}
