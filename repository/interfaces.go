package repository

import (
	"context"

	"shopManagement/models"
)

// UserRepositoryI defines operations on User rows.
type UserRepositoryI interface {
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
}

// ProductRepositoryI defines operations on Product rows.
type ProductRepositoryI interface {
	Create(ctx context.Context, name, description string, price float64) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

// CartRepositoryI defines operations on a user's cart rows.
type CartRepositoryI interface {
	AddQuantity(ctx context.Context, userID, productID, quantity int64) error
	LinesForUser(ctx context.Context, userID int64) ([]models.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

// OrderRepositoryI defines operations on Order rows.
type OrderRepositoryI interface {
	CreateFromCart(ctx context.Context, userID int64, reference string) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Order, error)
}
