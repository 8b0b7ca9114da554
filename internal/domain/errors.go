package domain

import "strings"

// ValidationError reports an incomplete or malformed payload. When
// MissingFields is non-empty it lists every blank required field in
// declaration order; otherwise Field/Reason name the single invalid field.
// Always a caller fault, never logged as a server error.
type ValidationError struct {
	MissingFields []string
	Field         string
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "Missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return e.Reason
}

// ConfigurationError means a required server-side setting is absent. A
// deployment fault: logged at error level, reported to callers generically.
// Setting names the variable; secret values are never included.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// TransportError means the mail provider rejected the credential handshake.
// No send was attempted.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "email transport verification failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// SendError means the mail provider rejected the dispatch itself.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return "email send failed: " + e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }

// ProviderError means the language-model provider call failed.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "chat provider call failed: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }
