package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shopManagement/internal/errs"
	"shopManagement/models"
	"shopManagement/repository"
)

// CatalogService handles product reads and admin-gated mutations.
type CatalogService struct {
	products *repository.ProductRepository
}

func NewCatalogService(products *repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func requireAdmin(acting *models.User) error {
	if acting == nil || !acting.IsAdmin {
		return errs.ErrPermissionDenied
	}
	return nil
}

func validateProduct(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is required", errs.ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", errs.ErrInvalidInput)
	}
	return nil
}

// AddProduct creates a catalog row. Admin only.
func (s *CatalogService) AddProduct(ctx context.Context, acting *models.User, name, description string, price float64) (*models.Product, error) {
	if err := requireAdmin(acting); err != nil {
		return nil, err
	}
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, strings.TrimSpace(name), description, price)
}

// EditProduct overwrites the mutable fields of a product. Admin only;
// a missing id is ErrNotFound.
func (s *CatalogService) EditProduct(ctx context.Context, acting *models.User, id int64, name, description string, price float64) (*models.Product, error) {
	if err := requireAdmin(acting); err != nil {
		return nil, err
	}
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}
	p := &models.Product{ID: id, Name: strings.TrimSpace(name), Description: description, Price: price}
	if err := s.products.Update(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// RemoveProduct deletes a catalog row. Admin only; a missing id is ErrNotFound.
func (s *CatalogService) RemoveProduct(ctx context.Context, acting *models.User, id int64) error {
	if err := requireAdmin(acting); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

// ViewProducts returns the catalog snapshot ordered by id ascending.
// Unrestricted read.
func (s *CatalogService) ViewProducts(ctx context.Context) ([]models.Product, error) {
	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Product{}
	}
	return list, nil
}

// GetProduct returns a single product. Unrestricted read.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errs.ErrNotFound
	}
	return p, nil
}
