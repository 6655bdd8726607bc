package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shopManagement/internal/errs"
	"shopManagement/models"
	"shopManagement/repository"
)

// CartService handles per-user cart lines and order placement.
type CartService struct {
	products *repository.ProductRepository
	carts    *repository.CartRepository
	orders   *repository.OrderRepository
}

func NewCartService(products *repository.ProductRepository, carts *repository.CartRepository, orders *repository.OrderRepository) *CartService {
	return &CartService{products: products, carts: carts, orders: orders}
}

// AddToCart adds quantity of a product to the user's cart. An existing line
// for the same product is incremented, never duplicated.
func (s *CartService) AddToCart(ctx context.Context, userID, productID, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", errs.ErrInvalidInput)
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: product %d", errs.ErrNotFound, productID)
	}
	return s.carts.AddQuantity(ctx, userID, productID, quantity)
}

// ViewCart returns the user's cart joined against current product data.
// An empty cart is an empty slice, not an error.
func (s *CartService) ViewCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	return s.carts.LinesForUser(ctx, userID)
}

// PlaceOrder converts the cart into an immutable order, snapshotting prices,
// and clears the cart. All writes share one transaction. An empty cart is
// ErrEmptyCart and creates nothing.
func (s *CartService) PlaceOrder(ctx context.Context, userID int64) (*models.Order, error) {
	return s.orders.CreateFromCart(ctx, userID, uuid.NewString())
}

// ListOrders returns the user's placed orders, newest first.
func (s *CartService) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	list, err := s.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

// GetOrder returns one of the user's orders. Another user's order is
// ErrNotFound rather than a permission hint.
func (s *CartService) GetOrder(ctx context.Context, userID, orderID int64) (*models.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, errs.ErrNotFound
	}
	return o, nil
}
