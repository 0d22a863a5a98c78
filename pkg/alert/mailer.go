package alert

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/solvarsaurus/agriculture-programs/config"
)

var (
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrSTARTTLSUnsupported = errors.New("smtp server does not offer STARTTLS")
	ErrNoCredentials       = errors.New("smtp user and password are required")
)

// Message is a single plain-text email.
type Message struct {
	ID        string
	Subject   string
	Body      string
	Recipient string
}

// Mailer delivers one message per SMTP session: STARTTLS, PLAIN auth, send, quit.
// It never retries.
type Mailer struct {
	cfg       config.SMTPConfig
	tlsConfig *tls.Config
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, tlsConfig: &tls.Config{ServerName: cfg.Host}}
}

// NewMessage assigns a fresh ID.
func NewMessage(subject, body, recipient string) Message {
	return Message{ID: uuid.NewString(), Subject: subject, Body: body, Recipient: recipient}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	rcpt, err := mail.ParseAddress(msg.Recipient)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidRecipient, msg.Recipient, err)
	}
	if m.cfg.User == "" || m.cfg.Password == "" {
		return ErrNoCredentials
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	d := net.Dialer{Timeout: time.Duration(m.cfg.TimeoutSec) * time.Second}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return ErrSTARTTLSUnsupported
	}
	if err := c.StartTLS(m.tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Mail(m.cfg.Sender); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(rcpt.Address); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(m.compose(msg, rcpt, time.Now())); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	// the message is accepted once DATA completes
	if err := c.Quit(); err != nil {
		log.Printf("[alert] quit after %s: %v", msg.ID, err)
	}
	return nil
}

func (m *Mailer) compose(msg Message, rcpt *mail.Address, now time.Time) []byte {
	var b bytes.Buffer
	hdr := func(k, v string) { fmt.Fprintf(&b, "%s: %s\r\n", k, v) }
	hdr("From", m.cfg.Sender)
	hdr("To", rcpt.String())
	hdr("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	hdr("Date", now.Format(time.RFC1123Z))
	hdr("Message-ID", "<"+msg.ID+"@"+m.cfg.Host+">")
	hdr("MIME-Version", "1.0")
	hdr("Content-Type", `text/plain; charset="utf-8"`)
	hdr("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return b.Bytes()
}
