package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// OrderRepository invokes the atomic checkout procedure. The procedure is the
// sole owner of transactional atomicity: as one unit it validates stock,
// decrements inventory, creates the order and clears the user's cart. This
// layer only invokes and propagates.
type OrderRepository interface {
	Checkout(ctx context.Context, username string) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Checkout(ctx context.Context, username string) error {
	if err := r.db.WithContext(ctx).Exec("CALL transaction_checkout(?)", username).Error; err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	return nil
}
