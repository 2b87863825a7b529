package mailer

import (
	"context"
	"fmt"

	"github.com/reusemart/consignment-service/config"
	circuitbreaker "github.com/reusemart/consignment-service/internal/infrastructure/circuit-breaker"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/gomail.v2"
)

const verificationSubject = "Verifikasi Email ReuseMart"

type Mailer struct {
	config  config.SMTPConfig
	breaker *gobreaker.CircuitBreaker[struct{}]
	send    func(message *gomail.Message) error
}

func CreateMailer(config config.SMTPConfig) *Mailer {
	m := &Mailer{
		config:  config,
		breaker: circuitbreaker.CreateCircuitBreaker[struct{}]("smtp"),
	}
	m.send = func(message *gomail.Message) error {
		return SendEmail(message, config.Sender, config.Password, config.Host, config.Port)
	}

	return m
}

// SendVerificationEmail mails the verification link to the new pembeli.
func (m *Mailer) SendVerificationEmail(ctx context.Context, to string, link string) error {
	if m.config.Host == "" {
		log.Ctx(ctx).Warn().Str("component", "SendVerificationEmail").Str("to", to).Msg("SMTP is not configured, email skipped")
		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.Sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", verificationSubject)
	message.SetBody("text/html", fmt.Sprintf(
		`<p>Terima kasih telah mendaftar di ReuseMart.</p><p>Klik <a href="%s">tautan ini</a> untuk memverifikasi email Anda. Tautan berlaku selama 24 jam.</p>`,
		link,
	))

	_, err := m.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, m.send(message)
	})
	if err != nil {
		log.Error().Err(err).Str("component", "SendVerificationEmail").Msg("")
		return err
	}

	return nil
}

func SendEmail(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error {
	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
