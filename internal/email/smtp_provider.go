package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) SendOrderConfirmation(to, name string, data OrderConfirmation) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your purchase: %s", data.ProjectTitle))
	m.SetBody("text/html", renderOrderConfirmation(name, data))

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send order confirmation to %s: %w", to, err)
	}
	return nil
}

func renderOrderConfirmation(name string, data OrderConfirmation) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for your purchase of <strong>%s</strong>.</p>
<p>Order ID: %s<br>Amount paid: &#8377;%.2f<br>Date: %s</p>
<p>Your download is available from the dashboard. Downloads are limited per order, so keep a local copy.</p>
<p>&mdash; Inovitaz</p>`,
		name,
		data.ProjectTitle,
		data.OrderID,
		data.Amount,
		data.PurchasedAt.Format("02 Jan 2006"),
	)
}
