// Package email sends analysis reports over SMTP.
package email

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/hassan/resume-analyzer/internal/config"
	"github.com/hassan/resume-analyzer/internal/db"
	"github.com/hassan/resume-analyzer/internal/report"
)

// Sender delivers report emails through a configured SMTP account.
type Sender struct {
	cfg  config.Config
	send func(m ...*gomail.Message) error
}

// ErrNotConfigured is returned when SMTP settings are incomplete.
var ErrNotConfigured = fmt.Errorf("email is not configured")

// NewSender builds a Sender from server configuration.
func NewSender(cfg config.Config) *Sender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	return &Sender{cfg: cfg, send: dialer.DialAndSend}
}

// SendReport emails the analysis summary to recipient, attaching the PDF
// report when one was rendered.
func (s *Sender) SendReport(recipient string, a *db.Analysis, pdf []byte) error {
	if !s.cfg.EmailConfigured() {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SenderEmail)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subjectFor(a))
	m.SetBody("text/plain", bodyFor(a))

	if len(pdf) > 0 {
		name := fmt.Sprintf("analysis_%s.pdf", a.UID)
		m.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}

func subjectFor(a *db.Analysis) string {
	return fmt.Sprintf("Resume Analysis Report - Score: %d/100", a.Score)
}

func bodyFor(a *db.Analysis) string {
	return fmt.Sprintf(
		"Hi,\n\nYour resume analysis for %q is ready.\n\n"+
			"Overall score: %d/100 (%s)\n"+
			"Keyword match: %d\nSkills match: %d\nFormatting: %d\n\n"+
			"The full report is attached as a PDF.\n",
		a.Filename, a.Score, report.ScoreBand(a.Score),
		a.KeywordScore, a.SkillsScore, a.FormatScore,
	)
}
