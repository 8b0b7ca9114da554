package domain

import "context"

// Roles used on the wire. The front end speaks user/assistant; the provider
// session API speaks user/model.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleModel     = "model"
)

// ChatFallbackMessage is what callers see when the provider call fails.
// Full diagnostics stay in the server logs.
const ChatFallbackMessage = "I apologize, but I'm having trouble connecting right now. Please try again later or use our contact form."

// ChatTurn is one message of a conversation, oldest first. The caller resends
// the full history on every call; there is no server-side session store.
type ChatTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// ChatSession is a provider conversation seeded with prior turns.
type ChatSession interface {
	Send(ctx context.Context, message string) (string, error)
}

// ChatProvider wraps the external generative-text service. A fresh session is
// started per relay call.
type ChatProvider interface {
	StartSession(systemPrompt string, history []ChatTurn) ChatSession
}

// ChatUsecase defines the interface for the chat relay
type ChatUsecase interface {
	// RelayChat normalizes the history, asks the provider and returns the reply
	RelayChat(ctx context.Context, message string, history []ChatTurn) (string, error)
}
