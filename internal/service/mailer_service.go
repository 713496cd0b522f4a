package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/imilab/chartme/config"
)

// Mailer delivers the transactional emails of the platform. Every send is
// best-effort: callers log failures and move on, a lost email never fails the
// operation that triggered it.
type Mailer interface {
	SendSubmissionNotification(toEmail, candidateName, testTitle string, score, total, percent int) error
	SendCandidateConfirmation(toEmail, candidateName, testTitle string, score, total, percent int) error
	SendTrainingPathSchedule(toEmail, candidateName, testTitle, testURL string, positionnement, evaluation time.Time) error
	SendOrganizationInvite(toEmail, organizationName, inviteURL string) error
}

// NewMailer returns the SendGrid mailer, or a console mailer that only logs
// when no API key is configured so local development works without SendGrid.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendGrid.ApiKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY is not set, emails will be logged instead of sent")
		return &consoleMailer{}
	}
	return &sendgridMailer{cfg: cfg, client: sendgrid.NewSendClient(cfg.SendGrid.ApiKey)}
}

type sendgridMailer struct {
	cfg    *config.Config
	client *sendgrid.Client
}

func (m *sendgridMailer) send(toEmail, subject, plain, html string) error {
	from := mail.NewEmail(m.cfg.SendGrid.FromName, m.cfg.SendGrid.FromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d, body %s", resp.StatusCode, resp.Body)
	}
	log.Debug().Str("to", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}

func (m *sendgridMailer) SendSubmissionNotification(toEmail, candidateName, testTitle string, score, total, percent int) error {
	subject := fmt.Sprintf("Nouvelle soumission : %s", testTitle)
	plain := fmt.Sprintf("%s a terminé le test « %s » avec un score de %d/%d (%d%%).",
		candidateName, testTitle, score, total, percent)
	html := fmt.Sprintf("<p><strong>%s</strong> a terminé le test « %s ».</p><p>Score : <strong>%d/%d (%d%%)</strong></p>",
		candidateName, testTitle, score, total, percent)
	return m.send(toEmail, subject, plain, html)
}

func (m *sendgridMailer) SendCandidateConfirmation(toEmail, candidateName, testTitle string, score, total, percent int) error {
	subject := fmt.Sprintf("Votre résultat : %s", testTitle)
	plain := fmt.Sprintf("Bonjour %s,\n\nVotre test « %s » a bien été soumis. Score : %d/%d (%d%%).\n\nMerci !",
		candidateName, testTitle, score, total, percent)
	html := fmt.Sprintf("<p>Bonjour %s,</p><p>Votre test « %s » a bien été soumis.</p><p>Score : <strong>%d/%d (%d%%)</strong></p>",
		candidateName, testTitle, score, total, percent)
	return m.send(toEmail, subject, plain, html)
}

func (m *sendgridMailer) SendTrainingPathSchedule(toEmail, candidateName, testTitle, testURL string, positionnement, evaluation time.Time) error {
	subject := fmt.Sprintf("Votre parcours de formation : %s", testTitle)
	plain := fmt.Sprintf("Bonjour %s,\n\nUn parcours a été planifié pour vous sur le test « %s ».\nPositionnement : %s\nÉvaluation : %s\n\nLien du test : %s",
		candidateName, testTitle,
		positionnement.Format("02/01/2006"), evaluation.Format("02/01/2006"), testURL)
	html := fmt.Sprintf("<p>Bonjour %s,</p><p>Un parcours a été planifié pour vous sur le test « %s ».</p><ul><li>Positionnement : %s</li><li>Évaluation : %s</li></ul><p><a href=%q>Accéder au test</a></p>",
		candidateName, testTitle,
		positionnement.Format("02/01/2006"), evaluation.Format("02/01/2006"), testURL)
	return m.send(toEmail, subject, plain, html)
}

func (m *sendgridMailer) SendOrganizationInvite(toEmail, organizationName, inviteURL string) error {
	subject := fmt.Sprintf("Invitation à rejoindre %s", organizationName)
	plain := fmt.Sprintf("Vous avez été invité à rejoindre l'organisation %s.\n\nAcceptez l'invitation : %s",
		organizationName, inviteURL)
	html := fmt.Sprintf("<p>Vous avez été invité à rejoindre l'organisation <strong>%s</strong>.</p><p><a href=%q>Accepter l'invitation</a></p>",
		organizationName, inviteURL)
	return m.send(toEmail, subject, plain, html)
}

// consoleMailer logs what would have been sent.
type consoleMailer struct{}

func (m *consoleMailer) SendSubmissionNotification(toEmail, candidateName, testTitle string, score, total, percent int) error {
	log.Info().Str("to", toEmail).Str("test", testTitle).Str("candidate", candidateName).
		Int("score", score).Int("total", total).Msg("[console mailer] submission notification")
	return nil
}

func (m *consoleMailer) SendCandidateConfirmation(toEmail, candidateName, testTitle string, score, total, percent int) error {
	log.Info().Str("to", toEmail).Str("test", testTitle).
		Int("score", score).Int("total", total).Msg("[console mailer] candidate confirmation")
	return nil
}

func (m *consoleMailer) SendTrainingPathSchedule(toEmail, candidateName, testTitle, testURL string, positionnement, evaluation time.Time) error {
	log.Info().Str("to", toEmail).Str("test", testTitle).Str("url", testURL).
		Time("positionnement", positionnement).Time("evaluation", evaluation).
		Msg("[console mailer] training path schedule")
	return nil
}

func (m *consoleMailer) SendOrganizationInvite(toEmail, organizationName, inviteURL string) error {
	log.Info().Str("to", toEmail).Str("organization", organizationName).Str("url", inviteURL).
		Msg("[console mailer] organization invite")
	return nil
}
