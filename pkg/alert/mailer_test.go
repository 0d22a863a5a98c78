package alert

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/http/httptest"
	"net/mail"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvarsaurus/agriculture-programs/config"
)

type session struct {
	cmds []string
	auth string // decoded AUTH PLAIN credentials
	data string
}

// smtpServer accepts one session and records the commands it sees. With
// starttls it advertises STARTTLS and upgrades using the httptest certificate.
func smtpServer(t *testing.T, starttls bool, quitReply string) (int, <-chan session) {
	t.Helper()
	ts := httptest.NewUnstartedServer(nil)
	ts.StartTLS()
	cert := ts.TLS.Certificates[0]
	ts.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	done := make(chan session, 1)
	go func() {
		var s session
		defer func() { done <- s }()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer func() { conn.Close() }()
		conn.SetDeadline(time.Now().Add(5 * time.Second))
		r := bufio.NewReader(conn)
		reply := func(lines ...string) {
			for _, l := range lines {
				fmt.Fprintf(conn, "%s\r\n", l)
			}
		}
		tlsOn := false
		reply("220 localhost ESMTP test")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\r\n")
			verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])
			switch verb {
			case "AUTH":
				s.cmds = append(s.cmds, "AUTH PLAIN")
				parts := strings.Fields(line)
				if len(parts) == 3 {
					b, _ := base64.StdEncoding.DecodeString(parts[2])
					s.auth = string(b)
				}
			default:
				s.cmds = append(s.cmds, line)
			}
			switch verb {
			case "EHLO":
				if starttls && !tlsOn {
					reply("250-localhost", "250-STARTTLS", "250 AUTH PLAIN")
				} else {
					reply("250-localhost", "250 AUTH PLAIN")
				}
			case "STARTTLS":
				reply("220 ready")
				tc := tls.Server(conn, &tls.Config{Certificates: []tls.Certificate{cert}})
				if err := tc.Handshake(); err != nil {
					return
				}
				conn, r, tlsOn = tc, bufio.NewReader(tc), true
			case "AUTH":
				reply("235 2.7.0 accepted")
			case "MAIL", "RCPT":
				reply("250 ok")
			case "DATA":
				reply("354 go ahead")
				var b strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					b.WriteString(l)
				}
				s.data = b.String()
				reply("250 queued")
			case "QUIT":
				reply(quitReply)
				return
			default:
				reply("502 not implemented")
			}
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port, done
}

func wait(t *testing.T, done <-chan session) session {
	t.Helper()
	select {
	case s := <-done:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("smtp session did not finish")
		return session{}
	}
}

func tlsMailer(port int) *Mailer {
	m := NewMailer(testConfig("127.0.0.1", port))
	m.tlsConfig = &tls.Config{InsecureSkipVerify: true}
	return m
}

func testConfig(host string, port int) config.SMTPConfig {
	return config.SMTPConfig{Host: host, Port: port, Sender: "agriculture_alerts@example.com", User: "u", Password: "p", TimeoutSec: 2}
}

func TestSendSession(t *testing.T) {
	port, done := smtpServer(t, true, "221 bye")
	msg := NewMessage("High Temperature Alert", "Consider irrigation.", "farmer@example.com")
	require.NoError(t, tlsMailer(port).Send(context.Background(), msg))

	s := wait(t, done)
	assert.Equal(t, []string{
		"EHLO localhost",
		"STARTTLS",
		"EHLO localhost",
		"AUTH PLAIN",
		"MAIL FROM:<agriculture_alerts@example.com>",
		"RCPT TO:<farmer@example.com>",
		"DATA",
		"QUIT",
	}, s.cmds)
	assert.Equal(t, "\x00u\x00p", s.auth)
	assert.Contains(t, s.data, "From: agriculture_alerts@example.com\r\n")
	assert.Contains(t, s.data, "To: <farmer@example.com>\r\n")
	assert.Contains(t, s.data, "Subject: High Temperature Alert\r\n")
	assert.Contains(t, s.data, "Message-ID: <"+msg.ID+"@127.0.0.1>\r\n")
	assert.Contains(t, s.data, "\r\n\r\nConsider irrigation.")
}

func TestSendDisplayNameRecipient(t *testing.T) {
	port, done := smtpServer(t, true, "221 bye")
	err := tlsMailer(port).Send(context.Background(), NewMessage("s", "b", "Farmer <farmer@example.com>"))
	require.NoError(t, err)

	s := wait(t, done)
	assert.Contains(t, s.cmds, "RCPT TO:<farmer@example.com>")
	assert.Contains(t, s.data, `To: "Farmer" <farmer@example.com>`+"\r\n")
}

func TestSendQuitErrorAfterDelivery(t *testing.T) {
	port, done := smtpServer(t, true, "500 quit failed")
	err := tlsMailer(port).Send(context.Background(), NewMessage("s", "b", "farmer@example.com"))
	assert.NoError(t, err)
	assert.NotEmpty(t, wait(t, done).data)
}

func TestSendRequiresSTARTTLS(t *testing.T) {
	port, done := smtpServer(t, false, "221 bye")
	err := tlsMailer(port).Send(context.Background(), NewMessage("High Temperature Alert", "hot", "farmer@example.com"))
	assert.ErrorIs(t, err, ErrSTARTTLSUnsupported)
	s := wait(t, done)
	assert.NotContains(t, s.cmds, "AUTH PLAIN")
	assert.Empty(t, s.data)
}

func TestSendRequiresCredentials(t *testing.T) {
	for _, cfg := range []config.SMTPConfig{
		{Host: "127.0.0.1", Port: 1, Sender: "a@example.com", Password: "p"},
		{Host: "127.0.0.1", Port: 1, Sender: "a@example.com", User: "u"},
	} {
		err := NewMailer(cfg).Send(context.Background(), NewMessage("s", "b", "farmer@example.com"))
		assert.ErrorIs(t, err, ErrNoCredentials)
	}
}

func TestSendInvalidRecipient(t *testing.T) {
	m := NewMailer(testConfig("127.0.0.1", 1))
	err := m.Send(context.Background(), NewMessage("s", "b", "not an address"))
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendDialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	m := NewMailer(testConfig("127.0.0.1", port))
	err = m.Send(context.Background(), NewMessage("s", "b", "farmer@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial 127.0.0.1:"+strconv.Itoa(port))
}

func TestCompose(t *testing.T) {
	m := NewMailer(testConfig("smtp.example.com", 587))
	msg := Message{ID: "abc", Subject: "High Temperature Alert", Body: "Consider irrigation.", Recipient: "farmer@example.com"}
	rcpt, err := mail.ParseAddress(msg.Recipient)
	require.NoError(t, err)
	raw := string(m.compose(msg, rcpt, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	head, body, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)
	assert.Equal(t, "Consider irrigation.", body)
	assert.Contains(t, head, "From: agriculture_alerts@example.com\r\n")
	assert.Contains(t, head, "To: <farmer@example.com>\r\n")
	assert.Contains(t, head, "Subject: High Temperature Alert\r\n")
	assert.Contains(t, head, "Message-ID: <abc@smtp.example.com>\r\n")
	assert.Contains(t, head, `Content-Type: text/plain; charset="utf-8"`)
}

func TestNewMessageIDs(t *testing.T) {
	a, b := NewMessage("s", "b", "r@example.com"), NewMessage("s", "b", "r@example.com")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPlainText(t *testing.T) {
	html := `<html><head><style>p{}</style></head><body>
<h1>Heat warning</h1><p>Temperature reached 38C.</p>
<ul><li>Irrigate north block</li><li>Check pumps</li></ul></body></html>`
	txt, err := PlainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Heat warning\nTemperature reached 38C.\n- Irrigate north block\n- Check pumps", txt)

	txt, err = PlainText("just <b>bold</b> text")
	require.NoError(t, err)
	assert.Equal(t, "just bold text", txt)
}
