package email

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"

	"github.com/starkspartacus/job-sub000/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	send      func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// WelcomeEmailData holds the data for the post-registration email
type WelcomeEmailData struct {
	Name         string
	IsEmployer   bool
	DashboardURL string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		send:      smtp.SendMail,
	}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Bienvenue</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #b5651d; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #fdf8f3; }
        .button { display: inline-block; padding: 10px 18px; background: #b5651d; color: white; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Bienvenue {{.Name}} !</h1>
        </div>
        <div class="content">
            {{if .IsEmployer}}
            <p>Votre espace recruteur est prêt. Publiez vos offres et trouvez les meilleurs talents de l'hôtellerie et de la restauration.</p>
            {{else}}
            <p>Votre profil candidat est créé. Complétez vos expériences et vos compétences pour être repéré par les recruteurs.</p>
            {{end}}
            <p><a class="button" href="{{.DashboardURL}}">Accéder à mon tableau de bord</a></p>
        </div>
        <div class="footer">
            <p>Vous recevez cet email suite à votre inscription.</p>
        </div>
    </div>
</body>
</html>`))

// SendWelcomeEmail sends the registration confirmation to a new user.
func (s *EmailService) SendWelcomeEmail(to string, data WelcomeEmailData) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := mime.QEncoding.Encode("UTF-8", "Bienvenue sur la plateforme emploi hôtellerie")
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
