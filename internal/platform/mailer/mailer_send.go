package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type Mailer struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	Enabled bool
}

func NewMailer(apiKey, fromName, fromEmail string) *Mailer {
	m := &Mailer{
		Enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
	if m.Enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *Mailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	if !m.Enabled {
		return "", errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAIL_FROM)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	// MailerSend uses X-Message-Id
	return res.Header.Get("X-Message-Id"), nil
}

func (m *Mailer) SendBookingConfirmation(toEmail, toName, roomTitle string, totalPrice float64, when time.Time) error {
	subject, text, html := bookingConfirmationBody(toName, roomTitle, totalPrice, when)
	_, err := m.Send(toEmail, toName, subject, text, html)
	return err
}

func bookingConfirmationBody(name, roomTitle string, totalPrice float64, when time.Time) (subject, text, html string) {
	subject = "Your StayVista booking is confirmed"
	stamp := when.Format("Jan 2, 2006")
	text = fmt.Sprintf("Hi %s, your booking of %q on %s is confirmed. Total: $%.2f.", name, roomTitle, stamp, totalPrice)
	html = fmt.Sprintf(`<p>Hi %s,</p><p>Your booking of <b>%s</b> on %s is confirmed.</p><p>Total: <b>$%.2f</b></p>`,
		name, roomTitle, stamp, totalPrice)
	return subject, text, html
}
