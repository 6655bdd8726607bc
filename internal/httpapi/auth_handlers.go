package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/auth"
	"shopManagement/models"
	"shopManagement/service"
)

// AuthHandler serves registration, login and account operations.
type AuthHandler struct {
	users  *service.UserService
	issuer *auth.Issuer
}

func NewAuthHandler(users *service.UserService, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

// acting resolves the authenticated caller to a fresh user row. The DB is
// authoritative for the admin flag, not the token claim.
func (h *AuthHandler) acting(c *fiber.Ctx) (*models.User, error) {
	p, err := auth.FromCtx(c)
	if err != nil {
		return nil, err
	}
	return h.users.GetUser(c.UserContext(), p.UserID)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userBody(u *models.User) fiber.Map {
	return fiber.Map{"id": u.ID, "username": u.Username, "is_admin": u.IsAdmin}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u, err := h.users.Register(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, userBody(u))
}

// Login handles POST /auth/login and returns a bearer token on success.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u, err := h.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	token, err := h.issuer.Issue(auth.Principal{UserID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, fiber.Map{"token": token, "user": userBody(u)})
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword handles POST /auth/password for the authenticated user.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.users.ChangePassword(c.UserContext(), p.UserID, req.OldPassword, req.NewPassword); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Promote handles POST /users/:id/promote. Only admins reach the service
// check with a passing acting user.
func (h *AuthHandler) Promote(c *fiber.Ctx) error {
	actingUser, err := h.acting(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid user id")
	}
	if err := h.users.PromoteToAdmin(c.UserContext(), actingUser, int64(id)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
