package mailer

import (
	"time"

	"github.com/stayvista/stayvista-api/pkg/logger"
)

// DevMailer prints mail to the log instead of sending it, so the API runs
// without any mail provider configured.
type DevMailer struct{}

func NewDevMailer() *DevMailer { return &DevMailer{} }

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	logger.Info("mail (dev mode)",
		"to", toEmail,
		"name", toName,
		"subject", subject,
		"text", text,
	)
	return "dev", nil
}

func (d *DevMailer) SendBookingConfirmation(toEmail, toName, roomTitle string, totalPrice float64, when time.Time) error {
	subject, text, _ := bookingConfirmationBody(toName, roomTitle, totalPrice, when)
	_, err := d.Send(toEmail, toName, subject, text, "")
	return err
}
