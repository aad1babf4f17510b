// Package mail delivers the outbound emails of the back office. Delivery is
// an external collaborator; this adapter only hands messages to SMTP.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends mail through a plain SMTP relay via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds the mailer from config.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendResetPassword emails the single-use reset token to the user.
func (m *SMTPMailer) SendResetPassword(to, fullName, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Đặt lại mật khẩu")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Xin chào %s,\n\n"+
			"Mã đặt lại mật khẩu của bạn là: %s\n"+
			"Mã chỉ dùng một lần và sẽ hết hạn sau ít phút.\n\n"+
			"Nếu bạn không yêu cầu đặt lại mật khẩu, hãy bỏ qua email này.",
		fullName, token,
	))
	return m.dialer.DialAndSend(msg)
}
