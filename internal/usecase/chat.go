package usecase

import (
	"context"
	"strings"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

// chatSystemPrompt fixes the assistant persona, allowed topics, tone and
// refusal policy for every session.
const chatSystemPrompt = `You are the AI Assistant for Pragmatic Labs AI, a company specializing in making AI approachable, intuitive, and powerful for businesses.
Your goal is to help visitors understand our services and how we can help them achieve their business goals.

Our Core Services:
1. Intelligent Document Processing: Automating data extraction from invoices, contracts, and forms to reduce manual entry and errors.
2. Conversational AI & Chatbots: 24/7 intelligent customer support agents that understand context and nuance.
3. Automated Reporting: Turning raw data into executive-ready reports automatically, saving hours of manual work.
4. Intelligent Analysis: AI-powered analytics that allow users to ask questions about their data in natural language.
5. Marketing Content Creation: Scaling content production (blogs, social, email) while maintaining brand voice.
6. Document Summarization: Getting concise summaries of long reports, meetings, and research.

Guidelines:
- Tone: Professional, helpful, concise, and approachable. Avoid overly complex jargon.
- Length: Keep answers short and easy to read (2-3 sentences usually).
- Technical Depth: Explain concepts at a high level (business value). If a user asks for specific code implementations, deep technical architecture, or "how to build this myself", politely decline and suggest they contact us for a consultation.
- Call to Action: If a user seems interested in a service, encourage them to use the "Contact Us" form or "Let's Talk" button to schedule a discussion.
- Identity: You are an AI assistant, not a human. You do not have a personal name, just "Pragmatic Labs Assistant".

If you don't know the answer, say: "I'm not sure about that specific detail. It would be best to contact our team directly for more information."`

type chatUsecase struct {
	cfg      *config.Config
	provider domain.ChatProvider
}

// NewChatUsecase creates a new chat relay usecase
func NewChatUsecase(cfg *config.Config, provider domain.ChatProvider) domain.ChatUsecase {
	return &chatUsecase{
		cfg:      cfg,
		provider: provider,
	}
}

// RelayChat projects the raw conversation into provider shape, asks for one
// completion and returns the reply. Provider failures are logged here with
// full detail; callers only ever see the fixed fallback message.
func (uc *chatUsecase) RelayChat(ctx context.Context, message string, history []domain.ChatTurn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &domain.ValidationError{Field: "message", Reason: "Message is required"}
	}

	if uc.cfg.GeminiAPIKey == "" {
		return "", &domain.ConfigurationError{
			Setting: "GEMINI_API_KEY",
			Message: "Chat service not configured",
		}
	}

	session := uc.provider.StartSession(chatSystemPrompt, normalizeHistory(history, message))

	reply, err := session.Send(ctx, message)
	if err != nil {
		logger.Log.Error("chat provider call failed", "error", err)
		return "", &domain.ProviderError{Err: err}
	}
	return reply, nil
}

// normalizeHistory reshapes the incoming conversation into what the provider
// session accepts: the just-typed user message is dropped from the tail (it
// travels separately as the current message), assistant turns are renamed to
// model turns, and any leading run of model turns is stripped so the history
// starts user-authored. An empty result is a fresh conversation.
func normalizeHistory(history []domain.ChatTurn, current string) []domain.ChatTurn {
	if n := len(history); n > 0 {
		last := history[n-1]
		if last.Role == domain.ChatRoleUser && last.Content == current {
			history = history[:n-1]
		}
	}

	out := make([]domain.ChatTurn, 0, len(history))
	for _, turn := range history {
		role := domain.ChatRoleUser
		if turn.Role == domain.ChatRoleAssistant || turn.Role == domain.ChatRoleModel {
			role = domain.ChatRoleModel
		}
		out = append(out, domain.ChatTurn{Role: role, Content: turn.Content})
	}

	for len(out) > 0 && out[0].Role == domain.ChatRoleModel {
		out = out[1:]
	}
	return out
}
