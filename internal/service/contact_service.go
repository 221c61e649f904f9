package service

import (
	"context"
	"fmt"
	"log"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/mail"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error)
	ListMessages(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactMessageRepository
	mailer      mail.Mailer
	// operatorEmail receives a notification for every submission.
	operatorEmail string
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactMessageRepository, mailer mail.Mailer, operatorEmail string) ContactService {
	return &contactService{
		contactRepo:   contactRepo,
		mailer:        mailer,
		operatorEmail: operatorEmail,
	}
}

// Submit persists a contact message and notifies the operator by email.
// Delivery is fire-and-forget: a mail failure is logged but never blocks or
// fails the confirmation. An empty message body persists nothing.
func (s *contactService) Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	if message == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	go func() {
		subject := fmt.Sprintf("New message from %s", name)
		body := fmt.Sprintf("Sender: %s\n\nMessage:\n%s", email, message)
		if err := s.mailer.Send(s.operatorEmail, subject, body); err != nil {
			log.Printf("contact notification mail: %v", err)
		}
	}()

	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}
