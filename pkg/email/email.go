package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

// SMTPTransport sends contact notifications through an SMTP relay. It
// implements domain.MailTransport. A connection is made per call; nothing is
// pooled or shared, so concurrent requests never contend.
type SMTPTransport struct {
	host        string
	port        string
	username    string
	password    string
	dialTimeout time.Duration
}

// NewSMTPTransport creates a transport from the configured mail account.
func NewSMTPTransport(cfg *config.Config) *SMTPTransport {
	return &SMTPTransport{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.EmailUser,
		password:    cfg.EmailPass,
		dialTimeout: 30 * time.Second,
	}
}

// IsConfigured checks if the transport has credentials to attempt a send
func (t *SMTPTransport) IsConfigured() bool {
	return t.host != "" && t.username != "" && t.password != ""
}

func (t *SMTPTransport) addr() string {
	return net.JoinHostPort(t.host, t.port)
}

// connect dials the relay, upgrades to TLS when offered and authenticates.
// Provider error text is preserved for diagnosability.
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := net.Dialer{Timeout: t.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr())
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", t.addr(), err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake: %w", err)
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: t.host}); err != nil {
			client.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}
	if err := client.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
		client.Close()
		return nil, fmt.Errorf("smtp auth: %w", err)
	}
	return client, nil
}

// Verify performs the credential handshake without sending a message.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.connect(ctx)
	if err != nil {
		return err
	}
	return client.Quit()
}

// Send dispatches one message and returns its generated Message-ID.
func (t *SMTPTransport) Send(ctx context.Context, payload *domain.MailPayload) (string, error) {
	client, err := t.connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), t.host)
	msg := buildMessage(payload, messageID)

	// Envelope sender must be the bare account address, not the display form
	if err := client.Mail(t.username); err != nil {
		return "", fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := client.Rcpt(payload.To); err != nil {
		return "", fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing message: %w", err)
	}
	if err := client.Quit(); err != nil {
		return "", fmt.Errorf("QUIT: %w", err)
	}
	return messageID, nil
}

func buildMessage(payload *domain.MailPayload, messageID string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"Message-ID: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		payload.From,
		payload.To,
		payload.ReplyTo,
		payload.Subject,
		messageID,
		payload.HTMLBody,
	))
}
