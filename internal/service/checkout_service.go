package service

import (
	"context"
	"fmt"

	"shopfront/internal/errors"
	"shopfront/internal/repository"
)

// CheckoutService triggers the atomic checkout procedure. Stock validation,
// inventory decrement, order creation and cart clearing happen as one unit
// inside the procedure; on failure nothing is compensated here and the caller
// must assume no side effect occurred.
type CheckoutService interface {
	Checkout(ctx context.Context, username string) error
}

type checkoutService struct {
	orderRepo repository.OrderRepository
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(orderRepo repository.OrderRepository) CheckoutService {
	return &checkoutService{orderRepo: orderRepo}
}

func (s *checkoutService) Checkout(ctx context.Context, username string) error {
	if username == "" {
		return errors.ErrMissingUsername
	}
	if err := s.orderRepo.Checkout(ctx, username); err != nil {
		return fmt.Errorf("checkout for %q: %w", username, err)
	}
	return nil
}
