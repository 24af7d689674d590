package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Config is SMTP mailer configuration.
type Config struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@monitorapreco.com"`
	FromName string `env:"FROM_NAME" envDefault:"MonitoraPreco"`
}

// Sender sends composed emails.
//
//go:generate mockery --name Sender --filename sender.go
type Sender interface {
	DialAndSend(messages ...*gomail.Message) error
}

// SMTPMailer sends price alert emails.
// Sending failures are logged and never returned to the caller.
type SMTPMailer struct {
	sender   Sender
	from     string
	fromName string
	logger   *zerolog.Logger
}

// NewSMTPSender returns gomail dialer for config. It returns nil when SMTP host is not configured.
func NewSMTPSender(cfg Config) Sender {
	if cfg.Host == "" {
		return nil
	}
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

// NewSMTPMailer returns new SMTPMailer. Nil sender disables sending.
func NewSMTPMailer(sender Sender, cfg Config, logger *zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		sender:   sender,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

// SendPriceDrop sends price drop alert.
func (m *SMTPMailer) SendPriceDrop(ctx context.Context, email, productName, productURL string, oldPrice, newPrice float64) {
	subject := fmt.Sprintf("🔻 Price drop: %s", productName)
	m.send(ctx, email, subject, priceAlertBody("dropped", productName, productURL, oldPrice, newPrice))
}

// SendPriceIncrease sends price increase alert.
func (m *SMTPMailer) SendPriceIncrease(ctx context.Context, email, productName, productURL string, oldPrice, newPrice float64) {
	subject := fmt.Sprintf("📈 Price increase: %s", productName)
	m.send(ctx, email, subject, priceAlertBody("rose", productName, productURL, oldPrice, newPrice))
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) {
	logger := m.logger.With().Str("to", to).Str("subject", subject).Logger()

	if m.sender == nil {
		logger.Warn().Msg("smtp is not configured, email not sent")
		return
	}

	if err := ctx.Err(); err != nil {
		logger.Warn().Err(err).Msg("email not sent")
		return
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		logger.Error().Err(err).Msg("can't send email")
		return
	}

	logger.Info().Msg("email sent")
}

func priceAlertBody(verb, productName, productURL string, oldPrice, newPrice float64) string {
	return fmt.Sprintf(
		"The price of %q %s from R$ %.2f to R$ %.2f.\n\nSee the product: %s\n",
		productName, verb, oldPrice, newPrice, productURL,
	)
}
