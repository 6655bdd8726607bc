// Package service implements the business layer of the shop: account
// management, catalog administration, and cart/order handling. Validation and
// permission gating happen here, before anything reaches the repositories;
// failures come from the closed taxonomy in internal/errs.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shopManagement/internal/errs"
	"shopManagement/internal/password"
	"shopManagement/models"
	"shopManagement/repository"
)

// UserService handles registration, login and credential changes.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates an account with a hashed password. Usernames are unique;
// a collision yields ErrDuplicateUsername.
func (s *UserService) Register(ctx context.Context, username, plainPassword string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || plainPassword == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrInvalidInput)
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateUsername
	}
	digest, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	// The UNIQUE constraint backstops the pre-check.
	return s.users.Create(ctx, username, digest, false)
}

// Login verifies credentials and returns the user projection. Unknown
// username and wrong password are deliberately the same error.
func (s *UserService) Login(ctx context.Context, username, plainPassword string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(plainPassword, u.PasswordHash) {
		return nil, errs.ErrAuthenticationFailed
	}
	return u, nil
}

// ChangePassword replaces the stored digest after verifying the old password.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", errs.ErrInvalidInput)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return errs.ErrNotFound
	}
	if !password.Verify(oldPassword, u.PasswordHash) {
		return errs.ErrAuthenticationFailed
	}
	digest, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, userID, digest)
}

// PromoteToAdmin flips the admin flag on the target account. Only an existing
// admin may call it; the first admin is seeded outside this service.
func (s *UserService) PromoteToAdmin(ctx context.Context, acting *models.User, targetID int64) error {
	if acting == nil || !acting.IsAdmin {
		return errs.ErrPermissionDenied
	}
	if err := s.users.SetAdmin(ctx, targetID, true); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

// GetUser returns the user projection for an id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errs.ErrNotFound
	}
	return u, nil
}
