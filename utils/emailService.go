package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email to", strings.Join(to, ","))
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LMS <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #F5F5F5; margin: 0; padding: 20px;">
		<div style="max-width: 600px; margin: auto; background: #FFFFFF; border-radius: 8px; overflow: hidden;">
			<div style="background: #2C3E50; color: #FFFFFF; padding: 20px; text-align: center;">
				<h1>Learning Portal</h1>
			</div>
			<div style="padding: 20px;">
				<h2>%s</h2>
				%s
			</div>
			<div style="padding: 15px; text-align: center; color: #999999; font-size: 12px;">
				&copy; 2026 Learning Portal. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendCertificateEmail notifies a student that they earned a course
// certificate. Delivery happens off the request path.
func SendCertificateEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Certificate Earned: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have passed the quiz for <strong>%s</strong> and earned your certificate.</p>
		<p>Your certificate number is <strong>%s</strong>.</p>
		<p>You can view your certificate from your dashboard at any time.</p>
	`, name, courseTitle, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Congratulations!", body))
}
