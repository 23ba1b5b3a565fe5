package service

import (
	"context"
	"fmt"

	"shopfront/internal/errors"
	"shopfront/internal/model"
	"shopfront/internal/repository"
)

// AddItemInput carries the full variant identity plus quantity for an
// add-to-cart request.
type AddItemInput struct {
	Username  string
	Model     string
	Size      string
	ColorCode string
	Gender    string
	Quantity  int
}

// CartService validates cart requests before delegating to the repository.
// The stored procedures own conflict resolution and stock enforcement; this
// layer rejects malformed input before any data-store call.
type CartService interface {
	List(ctx context.Context, username string) ([]model.CartLine, error)
	Stock(ctx context.Context, username string) ([]model.CartStock, error)
	Add(ctx context.Context, in AddItemInput) error
	UpdateQuantity(ctx context.Context, username string, sequence, newQuantity int) error
	Remove(ctx context.Context, username string, sequence int) error
}

type cartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) List(ctx context.Context, username string) ([]model.CartLine, error) {
	if username == "" {
		return nil, errors.ErrMissingUsername
	}
	lines, err := s.cartRepo.ListForUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list cart for %q: %w", username, err)
	}
	return lines, nil
}

func (s *cartService) Stock(ctx context.Context, username string) ([]model.CartStock, error) {
	if username == "" {
		return nil, errors.ErrMissingUsername
	}
	stock, err := s.cartRepo.StockForUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("cart stock for %q: %w", username, err)
	}
	return stock, nil
}

func (s *cartService) Add(ctx context.Context, in AddItemInput) error {
	if in.Username == "" {
		return errors.ErrMissingUsername
	}
	if in.Model == "" || in.Size == "" || in.ColorCode == "" || in.Gender == "" {
		return errors.ErrMissingVariant
	}
	if in.Quantity <= 0 {
		return errors.ErrInvalidQuantity
	}
	return s.cartRepo.Add(ctx, in.Username, in.Model, in.Size, in.ColorCode, in.Gender, in.Quantity)
}

func (s *cartService) UpdateQuantity(ctx context.Context, username string, sequence, newQuantity int) error {
	if username == "" {
		return errors.ErrMissingUsername
	}
	if sequence <= 0 {
		return errors.ErrInvalidSequence
	}
	if newQuantity < 0 {
		return errors.ErrNegativeQuantity
	}
	return s.cartRepo.UpdateQuantity(ctx, username, sequence, newQuantity)
}

func (s *cartService) Remove(ctx context.Context, username string, sequence int) error {
	if username == "" {
		return errors.ErrMissingUsername
	}
	if sequence <= 0 {
		return errors.ErrInvalidSequence
	}
	return s.cartRepo.Remove(ctx, username, sequence)
}
