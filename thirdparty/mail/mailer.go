package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var verifyTemplate = template.Must(template.ParseFS(templateFS, "templates/verify_email.html"))

const verifySubject = "Verify Email"

// VerificationEmail is the data rendered into the verification template.
type VerificationEmail struct {
	To               string
	UserName         string
	VerificationLink string
}

type Mailer interface {
	SendVerification(ctx context.Context, msg VerificationEmail) error
}

// Sender abstracts the SMTP transport so rendering can be tested without a server.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	sender   Sender
	from     string
	fromName string
}

func NewSMTPMailer(host string, port int, username, password, fromName string) *SMTPMailer {
	return NewMailer(gomail.NewDialer(host, port, username, password), username, fromName)
}

func NewMailer(sender Sender, from, fromName string) *SMTPMailer {
	return &SMTPMailer{sender: sender, from: from, fromName: fromName}
}

func (m *SMTPMailer) SendVerification(ctx context.Context, msg VerificationEmail) error {
	html, err := RenderVerification(msg)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.from, m.fromName)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", verifySubject)
	message.SetBody("text/html", html)

	if err := m.sender.DialAndSend(message); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

func RenderVerification(msg VerificationEmail) (string, error) {
	var buf bytes.Buffer
	if err := verifyTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("render verification email: %w", err)
	}
	return buf.String(), nil
}
