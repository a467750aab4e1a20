package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendJoinRequestDecision(ctx context.Context, email, familyName, decision string) error {
	subject := fmt.Sprintf("Your request to join %s", familyName)
	body := fmt.Sprintf("Hello,\n\nYour request to join the family \"%s\" has been %s.\n\nThe Souvenaria Team", familyName, decision)
	return s.send(email, subject, body)
}

func (s *emailService) SendEventReminder(ctx context.Context, email, eventName, eventDate, eventType string) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow", eventName)
	body := fmt.Sprintf("Hello,\n\nA reminder that \"%s\" (%s) takes place on %s.\n\nThe Souvenaria Team", eventName, eventType, eventDate)
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
