package domain

import "context"

// ContactRequest represents a contact form submission. ProjectType, Timeline
// and Budget come from the extended form variant; they are rendered into the
// notification email when present but never required.
type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Topic       string `json:"topic" validate:"required"`
	Message     string `json:"message" validate:"required,min=10"`
	ProjectType string `json:"projectType"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
}

// MailPayload is the outbound notification email derived from a submission.
// It lives for a single request; nothing is persisted.
type MailPayload struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// MailTransport wraps the external mail-sending provider.
type MailTransport interface {
	// Verify performs a credential handshake without sending a message.
	Verify(ctx context.Context) error
	// Send dispatches one message and returns the provider message ID.
	Send(ctx context.Context, payload *MailPayload) (string, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the submission and sends the notification email
	SubmitContact(ctx context.Context, req *ContactRequest) error
}
