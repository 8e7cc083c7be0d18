package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendExpertInvite(toEmail, scenarioTitle string) error
	SendDisputeAlert(toEmail, scenarioTitle string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendExpertInvite(toEmail, scenarioTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "A training scenario is waiting for your review")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New scenario to review</h2>
			<p>The scenario <b>%s</b> has been assigned to you for expert review.</p>
			<a href="%s/review" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Review Panel</a>
		</div>
	`, scenarioTitle, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invite to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Invite sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendDisputeAlert(toEmail, scenarioTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Expert reviews diverged on a scenario")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Dispute flagged</h2>
			<p>Expert responses for the scenario <b>%s</b> disagree and the scenario has been marked as disputed.</p>
			<p>Please schedule a discussion round.</p>
			<a href="%s/review" style="background-color: #DC3545; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Scenario</a>
		</div>
	`, scenarioTitle, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send dispute alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Dispute alert sent to %s\n", toEmail)
	return nil
}
