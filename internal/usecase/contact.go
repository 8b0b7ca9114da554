package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"reflect"
	"strings"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	cfg       *config.Config
	transport domain.MailTransport
	validate  *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(cfg *config.Config, transport domain.MailTransport, validate *validator.Validate) domain.ContactUsecase {
	// Report field names as they appear on the wire (json tags)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &contactUsecase{
		cfg:       cfg,
		transport: transport,
		validate:  validate,
	}
}

// SubmitContact validates the submission, verifies the mail transport and
// sends the notification email. The whole call is synchronous; a failed send
// is surfaced to the caller, never queued or retried.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Topic = strings.TrimSpace(req.Topic)
	req.Message = strings.TrimSpace(req.Message)
	req.ProjectType = strings.TrimSpace(req.ProjectType)
	req.Timeline = strings.TrimSpace(req.Timeline)
	req.Budget = strings.TrimSpace(req.Budget)

	if err := uc.validateRequest(req); err != nil {
		return err
	}

	if uc.cfg.EmailUser == "" || uc.cfg.EmailPass == "" {
		return &domain.ConfigurationError{
			Setting: "EMAIL_USER/EMAIL_PASS",
			Message: "email service is not configured",
		}
	}
	if uc.cfg.EmailTo == "" {
		return &domain.ConfigurationError{
			Setting: "EMAIL_TO",
			Message: "contact recipient is not configured",
		}
	}

	if err := uc.transport.Verify(ctx); err != nil {
		return &domain.TransportError{Err: err}
	}

	payload, err := buildMailPayload(uc.cfg, req)
	if err != nil {
		return fmt.Errorf("building mail payload: %w", err)
	}

	id, err := uc.transport.Send(ctx, payload)
	if err != nil {
		return &domain.SendError{Err: err}
	}

	logger.Log.Info("contact email sent", "message_id", id, "topic", req.Topic)
	return nil
}

// validateRequest collects every blank required field before looking at shape
// problems, so the caller gets the full list in one response.
func (uc *contactUsecase) validateRequest(req *domain.ContactRequest) error {
	err := uc.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{MissingFields: missing}
	}

	for _, fe := range verrs {
		if fe.Field() == "email" {
			return &domain.ValidationError{Field: "email", Reason: "Invalid email address"}
		}
	}
	for _, fe := range verrs {
		if fe.Field() == "message" {
			return &domain.ValidationError{Field: "message", Reason: "Message must be at least 10 characters"}
		}
	}
	return &domain.ValidationError{Reason: "Invalid request"}
}

var mailBodyTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #555; margin-top: 0;">Contact Information</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>

    <h3 style="color: #555; margin-top: 25px;">Project Details</h3>
    <p><strong>Service:</strong> {{.Topic}}</p>
    {{if .ProjectType}}<p><strong>Project Type:</strong> {{.ProjectType}}</p>{{end}}
    {{if .Timeline}}<p><strong>Timeline:</strong> {{.Timeline}}</p>{{end}}
    {{if .Budget}}<p><strong>Budget Range:</strong> {{.Budget}}</p>{{end}}

    <h3 style="color: #555; margin-top: 25px;">Message</h3>
    <div style="background-color: white; padding: 15px; border-radius: 5px; margin-top: 10px;">
      {{.Message}}
    </div>
  </div>
  <p style="color: #666; font-size: 14px;">This message was sent from the portfolio contact form.</p>
</div>`))

type mailBodyData struct {
	Name        string
	Email       string
	Topic       string
	ProjectType string
	Timeline    string
	Budget      string
	Message     template.HTML
}

func buildMailPayload(cfg *config.Config, req *domain.ContactRequest) (*domain.MailPayload, error) {
	// User input is escaped before the newline conversion so the only raw
	// HTML reaching the body is the <br> tags themselves.
	escaped := template.HTMLEscapeString(req.Message)
	message := template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))

	var body bytes.Buffer
	err := mailBodyTemplate.Execute(&body, mailBodyData{
		Name:        req.Name,
		Email:       req.Email,
		Topic:       req.Topic,
		ProjectType: req.ProjectType,
		Timeline:    req.Timeline,
		Budget:      req.Budget,
		Message:     message,
	})
	if err != nil {
		return nil, fmt.Errorf("executing mail template: %w", err)
	}

	return &domain.MailPayload{
		From:     fmt.Sprintf("\"Portfolio Contact\" <%s>", cfg.EmailUser),
		To:       cfg.EmailTo,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Contact Form Message from %s - %s", req.Name, req.Topic),
		HTMLBody: body.String(),
	}, nil
}
