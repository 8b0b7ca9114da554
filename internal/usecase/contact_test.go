package usecase_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init(true)
}

// Mock Transport
type MockMailTransport struct {
	mock.Mock
}

func (m *MockMailTransport) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMailTransport) Send(ctx context.Context, payload *domain.MailPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func mailConfig() *config.Config {
	return &config.Config{
		EmailUser: "portfolio@example.com",
		EmailPass: "app-password",
		EmailTo:   "team@example.com",
	}
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Topic:   "AI Consulting",
		Message: "We need help automating invoices.",
	}
}

func TestContactValidation(t *testing.T) {
	t.Run("Should list every missing field in declaration order", func(t *testing.T) {
		transport := new(MockMailTransport)
		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())

		err := uc.SubmitContact(context.Background(), &domain.ContactRequest{})
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"name", "email", "topic", "message"}, verr.MissingFields)
		transport.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("Should treat whitespace-only fields as missing", func(t *testing.T) {
		transport := new(MockMailTransport)
		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())

		req := validRequest()
		req.Name = "   "
		req.Topic = "\t\n"
		err := uc.SubmitContact(context.Background(), req)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"name", "topic"}, verr.MissingFields)
	})

	t.Run("Should reject a malformed email regardless of other fields", func(t *testing.T) {
		transport := new(MockMailTransport)
		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())

		req := validRequest()
		req.Email = "not-an-email"
		err := uc.SubmitContact(context.Background(), req)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
		assert.Contains(t, err.Error(), "Invalid email address")
		transport.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("Should reject a message shorter than 10 characters", func(t *testing.T) {
		transport := new(MockMailTransport)
		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())

		req := validRequest()
		req.Message = "too short"
		err := uc.SubmitContact(context.Background(), req)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "message", verr.Field)
	})
}

func TestContactConfiguration(t *testing.T) {
	t.Run("Should fail before verifying when credentials are absent", func(t *testing.T) {
		transport := new(MockMailTransport)
		cfg := mailConfig()
		cfg.EmailPass = ""
		uc := usecase.NewContactUsecase(cfg, transport, validator.New())

		err := uc.SubmitContact(context.Background(), validRequest())

		var cerr *domain.ConfigurationError
		require.ErrorAs(t, err, &cerr)
		transport.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("Should fail when the recipient is absent", func(t *testing.T) {
		transport := new(MockMailTransport)
		cfg := mailConfig()
		cfg.EmailTo = ""
		uc := usecase.NewContactUsecase(cfg, transport, validator.New())

		err := uc.SubmitContact(context.Background(), validRequest())

		var cerr *domain.ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "EMAIL_TO", cerr.Setting)
	})
}

func TestContactSend(t *testing.T) {
	t.Run("Should verify then send exactly once with reply-to set", func(t *testing.T) {
		transport := new(MockMailTransport)
		transport.On("Verify", mock.Anything).Return(nil)

		var sent *domain.MailPayload
		transport.On("Send", mock.Anything, mock.AnythingOfType("*domain.MailPayload")).
			Return("<id-1@smtp.gmail.com>", nil).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(*domain.MailPayload)
			})

		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())
		err := uc.SubmitContact(context.Background(), validRequest())

		require.NoError(t, err)
		transport.AssertNumberOfCalls(t, "Send", 1)
		require.NotNil(t, sent)
		assert.Equal(t, "jane@x.com", sent.ReplyTo)
		assert.Equal(t, "team@example.com", sent.To)
		assert.Contains(t, sent.Subject, "Jane")
		assert.Contains(t, sent.Subject, "AI Consulting")
	})

	t.Run("Should escape user HTML and convert newlines in the body", func(t *testing.T) {
		transport := new(MockMailTransport)
		transport.On("Verify", mock.Anything).Return(nil)

		var sent *domain.MailPayload
		transport.On("Send", mock.Anything, mock.Anything).
			Return("<id-2@smtp.gmail.com>", nil).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(*domain.MailPayload)
			})

		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())
		req := validRequest()
		req.Name = "<script>alert(1)</script>"
		req.Message = "line one\nline two <b>bold</b>"
		err := uc.SubmitContact(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.NotContains(t, sent.HTMLBody, "<script>")
		assert.Contains(t, sent.HTMLBody, "&lt;script&gt;")
		assert.Contains(t, sent.HTMLBody, "line one<br>line two")
		assert.NotContains(t, sent.HTMLBody, "<b>bold</b>")
	})

	t.Run("Should render optional project fields only when present", func(t *testing.T) {
		transport := new(MockMailTransport)
		transport.On("Verify", mock.Anything).Return(nil)

		var sent *domain.MailPayload
		transport.On("Send", mock.Anything, mock.Anything).
			Return("<id-3@smtp.gmail.com>", nil).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(*domain.MailPayload)
			})

		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())
		req := validRequest()
		req.ProjectType = "New Build"
		err := uc.SubmitContact(context.Background(), req)

		require.NoError(t, err)
		assert.Contains(t, sent.HTMLBody, "New Build")
		assert.NotContains(t, sent.HTMLBody, "Budget Range")
	})

	t.Run("Should surface verification failure without sending", func(t *testing.T) {
		transport := new(MockMailTransport)
		transport.On("Verify", mock.Anything).Return(errors.New("535 auth rejected"))

		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())
		err := uc.SubmitContact(context.Background(), validRequest())

		var terr *domain.TransportError
		require.ErrorAs(t, err, &terr)
		assert.Contains(t, err.Error(), "535 auth rejected")
		transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Should surface send failure with the provider diagnostic", func(t *testing.T) {
		transport := new(MockMailTransport)
		transport.On("Verify", mock.Anything).Return(nil)
		transport.On("Send", mock.Anything, mock.Anything).Return("", errors.New("452 mailbox full"))

		uc := usecase.NewContactUsecase(mailConfig(), transport, validator.New())
		err := uc.SubmitContact(context.Background(), validRequest())

		var serr *domain.SendError
		require.ErrorAs(t, err, &serr)
		assert.Contains(t, err.Error(), "452 mailbox full")
	})
}
