package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/johnaymann1/st-mary-gifts-api/config"
)

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendWelcome delivers the signup email in the background. Email failures
// never block or fail the signup flow; they are logged and dropped.
func (m *Mailer) SendWelcome(to, name string) {
	go func() {
		if err := m.send(to, "Welcome to St. Mary Gift Shop",
			fmt.Sprintf("Hi %s,\n\nYour account is ready. Happy gifting!\n\nSt. Mary Gift Shop", name)); err != nil {
			log.Printf("⚠️ welcome email to %s failed: %v", to, err)
		}
	}()
}

func (m *Mailer) send(to, subject, body string) error {
	if m == nil || m.cfg.Host == "" {
		log.Printf("SMTP not configured, skipping email to %s", to)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	return d.DialAndSend(msg)
}
