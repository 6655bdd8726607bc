package repository

import (
	"context"
	"database/sql"
	"time"

	"shopManagement/models"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddQuantity upserts a cart line for (user, product). An existing line has
// its quantity incremented; otherwise a new row is inserted. The composite
// primary key guarantees at most one row per pair.
func (r *CartRepository) AddQuantity(ctx context.Context, userID, productID, quantity int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)
ON CONFLICT(user_id, product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		userID, productID, quantity)
	return err
}

// LinesForUser returns the user's cart joined against current product rows,
// ordered by product id. An empty cart yields an empty slice.
func (r *CartRepository) LinesForUser(ctx context.Context, userID int64) ([]models.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.name, p.description, p.price, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = ?
ORDER BY p.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.Product.ID, &l.Product.Name, &l.Product.Description, &l.Product.Price, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Clear removes every cart row for the user.
func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
