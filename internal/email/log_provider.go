package email

import "inovitaz_backend/internal/logger"

// LogProvider is the development fallback: no mail leaves the process.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendOrderConfirmation(to, name string, data OrderConfirmation) error {
	logger.Info("order confirmation email (not sent, SMTP unconfigured)",
		"to", to,
		"project", data.ProjectTitle,
		"order_id", data.OrderID,
	)
	return nil
}
