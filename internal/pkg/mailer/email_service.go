package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendResetToken(toEmail, token string) error
	SendEnrollmentReceipt(toEmail, fullName, packageName string, finalPrice int64, courseURL string) error
	SendCertificate(toEmail, fullName, courseTitle, certificateNumber string) error
	SendLeadResource(toEmail, fullName, productName, fileURL string) error
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

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to SkillRas!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #E53935; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)
	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #E53935; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)
	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendEnrollmentReceipt(toEmail, fullName, packageName string, finalPrice int64, courseURL string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your enrollment in the <b>%s</b> package is confirmed. Amount paid: <b>Rs. %d</b>.</p>
			<p>Your courses are unlocked here:</p>
			<a href="%s" style="background-color: #E53935; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Learning</a>
		</div>
	`, fullName, packageName, finalPrice, courseURL)
	return s.send(toEmail, "Your SkillRas Enrollment is Confirmed", body)
}

func (s *emailService) SendCertificate(toEmail, fullName, courseTitle, certificateNumber string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>You completed <b>%s</b>.</p>
			<p>Your certificate number is <b>%s</b>. You can view and share it from your dashboard.</p>
		</div>
	`, fullName, courseTitle, certificateNumber)
	return s.send(toEmail, "Your Course Certificate", body)
}

func (s *emailService) SendLeadResource(toEmail, fullName, productName, fileURL string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Here's your download</h2>
			<p>Hi %s,</p>
			<p>Thanks for your interest in <b>%s</b>. Grab your copy below:</p>
			<a href="%s" style="background-color: #E53935; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Download</a>
		</div>
	`, fullName, productName, fileURL)
	return s.send(toEmail, productName+" - Your Download", body)
}
