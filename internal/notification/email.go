package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

const maxSendAttempts = 2

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier sends booking confirmation mail over SMTP. A failed send is
// retried once before giving up; the error is returned for logging only.
type EmailNotifier struct {
	dialer  sender
	from    string
	loggerf func(format string, args ...interface{})
}

func NewEmailNotifier(host string, port int, user, pass, from string, loggerf func(format string, args ...interface{})) *EmailNotifier {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &EmailNotifier{
		dialer:  gomail.NewDialer(host, port, user, pass),
		from:    from,
		loggerf: loggerf,
	}
}

func (e *EmailNotifier) BookingConfirmed(ctx context.Context, n BookingConfirmation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", fmt.Sprintf("Booking Confirmed: %s", n.RoomName))
	m.SetBody("text/html", confirmationBody(n))

	var err error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = e.dialer.DialAndSend(m); err == nil {
			return nil
		}
		e.loggerf("level=error msg=confirmation email send failed attempt=%d to=%s err=%v", attempt, n.To, err)
	}
	return err
}

func confirmationBody(n BookingConfirmation) string {
	name := n.UserName
	if name == "" {
		name = "Guest"
	}
	return fmt.Sprintf(`<h2>Booking Confirmed!</h2>
<p>Dear %s,</p>
<p>Your booking for <strong>%s</strong> (%s) is confirmed.</p>
<ul>
  <li><strong>Check-in:</strong> %s</li>
  <li><strong>Check-out:</strong> %s</li>
  <li><strong>Guests:</strong> %d</li>
  <li><strong>Total Paid:</strong> %.2f</li>
</ul>
<p>Thank you for booking with Stayelo</p>`,
		name,
		n.RoomName,
		n.RoomType,
		n.CheckIn.Format("Mon, 02 Jan 2006"),
		n.CheckOut.Format("Mon, 02 Jan 2006"),
		n.Guests,
		n.Amount,
	)
}
