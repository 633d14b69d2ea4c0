package service

import (
	"context"
	"fmt"

	"omnikassa-status/internal/features/status/domain"
	"omnikassa-status/internal/features/status/ports"
)

// StatusChecker answers whether the order behind one notification token has completed.
// A checker is not safe for concurrent use; create one per token.
type StatusChecker struct {
	provider ports.StatusProvider
	token    string
	// document is the last successfully fetched response, nil until then.
	document domain.StatusDocument
}

// NewStatusChecker creates a StatusChecker for the given notification token.
// The token is used verbatim and is not validated.
func NewStatusChecker(provider ports.StatusProvider, token string) *StatusChecker {
	return &StatusChecker{
		provider: provider,
		token:    token,
	}
}

// FetchStatus performs one status request and keeps the decoded document.
// On failure the previously fetched document, if any, is left untouched.
func (c *StatusChecker) FetchStatus(ctx context.Context) (domain.StatusDocument, error) {
	doc, err := c.provider.FetchStatus(ctx, c.token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order status: %w", err)
	}

	c.document = doc
	return doc, nil
}

// OrderStatus returns the order status from the last fetched document.
func (c *StatusChecker) OrderStatus() (domain.OrderStatus, error) {
	if c.document == nil {
		return "", domain.ErrNotFetched
	}
	return c.document.OrderStatus()
}

// IsCompleted reports whether the last fetched status is exactly COMPLETED.
func (c *StatusChecker) IsCompleted() (bool, error) {
	status, err := c.OrderStatus()
	if err != nil {
		return false, err
	}
	return status == domain.OrderStatusCompleted, nil
}

// Check fetches the status once and reports it together with the completion flag.
func (c *StatusChecker) Check(ctx context.Context) (*domain.StatusResult, error) {
	if _, err := c.FetchStatus(ctx); err != nil {
		return nil, err
	}

	status, err := c.OrderStatus()
	if err != nil {
		return nil, err
	}

	return &domain.StatusResult{
		OrderStatus: status,
		Completed:   status == domain.OrderStatusCompleted,
	}, nil
}
