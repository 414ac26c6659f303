package utils

import (
	"dojo/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: DevDojo <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A202C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A202C; line-height: 1.6; }
			.content h2 { color: #1A202C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4299E1; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>DEVDOJO</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 DevDojo. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered student.
func SendWelcomeEmail(email, name string) error {
	subject := "Welcome to DevDojo"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>DevDojo</strong>! Your account has been created.</p>
		<p>Browse the published roadmaps, join one, and start working through its nodes. Pass each quiz and get your project upvoted by fellow students to unlock the next step.</p>
	`, name)

	return SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendWeeklyDigestEmail delivers platform numbers to an admin.
func SendWeeklyDigestEmail(email, name string, digest WeeklyDigest) error {
	subject := fmt.Sprintf("Weekly Digest: %s - %s", digest.WeekStart.Format("Jan 2"), digest.WeekEnd.Format("Jan 2"))
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Here is the platform activity for the past week.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>New students:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>New enrollments:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>Quizzes passed:</strong> %d</li>
				<li><strong>Projects submitted:</strong> %d</li>
			</ul>
		</div>
	`, name, digest.NewStudents, digest.NewEnrollments, digest.QuizzesPassed, digest.ProjectsSubmitted)

	return SendEmail([]string{email}, subject, getEmailTemplate("Weekly Activity Digest", body))
}
