package mailer_test

import (
	"bufio"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stayvista/stayvista-api/internal/platform/mailer"
)

// startFakeSMTP serves one plaintext SMTP session and delivers the body
// of the first accepted message on the returned channel.
func startFakeSMTP(t *testing.T) (host string, port int, messages chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	messages = make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		br := bufio.NewReader(conn)
		write := func(s string) { conn.Write([]byte(s + "\r\n")) }
		write("220 fake ESMTP")

		var body strings.Builder
		inData := false
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\r\n")
			if inData {
				if line == "." {
					inData = false
					messages <- body.String()
					write("250 accepted")
					continue
				}
				body.WriteString(line + "\n")
				continue
			}
			switch {
			case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
				write("250 fake")
			case strings.HasPrefix(line, "MAIL"), strings.HasPrefix(line, "RCPT"):
				write("250 OK")
			case line == "DATA":
				write("354 send it")
				inData = true
			case line == "QUIT":
				write("221 bye")
				return
			default:
				write("250 OK")
			}
		}
	}()

	hostStr, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	p, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	return hostStr, p, messages
}

func TestSMTPMailer_SendDeliversMessage(t *testing.T) {
	host, port, messages := startFakeSMTP(t)

	m := mailer.NewSMTPMailer(host, port, "noreply@stayvista.test", "", "", false)
	if _, err := m.Send("guest@example.com", "Guest", "Booking confirmed", "text body", "<b>html</b>"); err != nil {
		t.Fatalf("Failed to send: %v", err)
	}

	select {
	case msg := <-messages:
		if !strings.Contains(msg, "Subject: Booking confirmed") {
			t.Fatalf("Expected subject header in message, got:\n%s", msg)
		}
		if !strings.Contains(msg, "To: guest@example.com") {
			t.Fatalf("Expected recipient header in message, got:\n%s", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected message delivery")
	}
}

func TestSMTPMailer_UnreachableServer_ReturnsError(t *testing.T) {
	// Grab a free port, then close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	ln.Close()
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}

	m := mailer.NewSMTPMailer("127.0.0.1", port, "noreply@stayvista.test", "", "", false)
	start := time.Now()
	if _, err := m.Send("guest@example.com", "Guest", "subject", "text", "html"); err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if elapsed := time.Since(start); elapsed > 15*time.Second {
		t.Fatalf("Expected send to fail within the deadline, took %s", elapsed)
	}

	if _, err := m.Send("", "", "subject", "text", "html"); err == nil {
		t.Fatal("Expected error for empty recipient")
	}
}
