// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

// Package mail delivers transactional email over SMTP. Its only message
// type today is the one-time verification code sent after signup.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"gopkg.in/gomail.v2"
)

// Sender delivers one-time verification codes to users.
type Sender interface {
	// SendOTP sends the verification code to the given address. The
	// returned error is opaque to callers; delivery failures are
	// reported, not classified.
	SendOTP(ctx context.Context, to string, name string, code string) error
}

// dialer abstracts the SMTP connection so tests can intercept outgoing
// messages. *gomail.Dialer satisfies it.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// otpBody is the HTML body of the verification message. The code is
// rendered prominently; the expiry notice matches the server-side TTL.
const otpBody = `<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Notes API</h2>
  <p>Hello {{.Name}},</p>
  <p>Your verification code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">{{.Code}}</p>
  <p>The code expires in {{.TTLMinutes}} minutes. If you did not request it, ignore this message.</p>
</div>`

var otpTemplate = template.Must(template.New("otp").Parse(otpBody))

// smtpSender is the production [Sender] backed by gomail.
type smtpSender struct {
	dialer     dialer
	from       string
	ttlMinutes int
	logger     *logger.Logger
}

// NewSMTPSender constructs a [Sender] that delivers mail through the
// configured SMTP relay. ttlMinutes is only used for the expiry notice in
// the message body; the authoritative TTL lives in the service layer.
func NewSMTPSender(cfg config.SMTP, ttlMinutes int, log *logger.Logger) Sender {
	log.Debug().Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp mail sender")
	return &smtpSender{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:       cfg.From,
		ttlMinutes: ttlMinutes,
		logger:     log,
	}
}

func (s *smtpSender) SendOTP(ctx context.Context, to string, name string, code string) error {
	log := logger.FromContext(ctx)

	body, err := renderOTPBody(name, code, s.ttlMinutes)
	if err != nil {
		log.Err(err).Str("func", "*smtpSender.SendOTP").Msg("error rendering otp message body")
		return fmt.Errorf("rendering otp message: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Err(err).Str("func", "*smtpSender.SendOTP").Msg("error sending otp message")
		return fmt.Errorf("sending otp message: %w", err)
	}

	log.Info().Str("func", "*smtpSender.SendOTP").Msg("otp message sent")
	return nil
}

func renderOTPBody(name, code string, ttlMinutes int) (string, error) {
	buf := new(bytes.Buffer)
	err := otpTemplate.Execute(buf, struct {
		Name       string
		Code       string
		TTLMinutes int
	}{Name: name, Code: code, TTLMinutes: ttlMinutes})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
