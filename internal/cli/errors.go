package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/heartmarshall/contactbook/internal/domain"
)

const (
	msgSessionExpired = "Session expired. Please log in again."
	msgNotSignedIn    = "Not authenticated. Run \"contacts login\" first."
	msgNotFound       = "Contact not found."
	msgUnreachable    = "Something went wrong. Please try again."
	msgStale          = "Your session changed while the request was running. Nothing was applied."
	msgCanceled       = "Canceled."
)

// Message turns an error into the text shown to the user.
func Message(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		var b strings.Builder
		b.WriteString("Invalid input:")
		for _, fe := range ve.Errors {
			b.WriteString("\n  - ")
			b.WriteString(fe.Field)
			b.WriteString(": ")
			b.WriteString(fe.Message)
		}
		return b.String()
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return msgSessionExpired
	case errors.Is(err, domain.ErrUnauthorized):
		return msgNotSignedIn
	case errors.Is(err, domain.ErrNotFound):
		return msgNotFound
	case errors.Is(err, domain.ErrStaleResponse):
		return msgStale
	case errors.Is(err, domain.ErrUnreachable):
		return msgUnreachable
	case errors.Is(err, context.Canceled):
		return msgCanceled
	}
	return err.Error()
}
