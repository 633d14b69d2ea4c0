package ports

import (
	"context"

	"omnikassa-status/internal/features/status/domain"
)

// StatusProvider retrieves order status documents from the payment gateway.
// This is a Secondary Port (Driven Port).
type StatusProvider interface {
	// FetchStatus performs one authenticated request using the notification token.
	FetchStatus(ctx context.Context, token string) (domain.StatusDocument, error)
}
