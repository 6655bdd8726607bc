package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/auth"
	"shopManagement/models"
	"shopManagement/service"
)

// ProductHandler serves catalog reads and admin-gated mutations.
type ProductHandler struct {
	catalog *service.CatalogService
	users   *service.UserService
}

func NewProductHandler(catalog *service.CatalogService, users *service.UserService) *ProductHandler {
	return &ProductHandler{catalog: catalog, users: users}
}

func (h *ProductHandler) acting(c *fiber.Ctx) (*models.User, error) {
	p, err := auth.FromCtx(c)
	if err != nil {
		return nil, err
	}
	return h.users.GetUser(c.UserContext(), p.UserID)
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// List handles GET /products. Public.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.catalog.ViewProducts(c.UserContext())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, list)
}

// Get handles GET /products/:id. Public.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}
	p, err := h.catalog.GetProduct(c.UserContext(), int64(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, p)
}

// Create handles POST /products. Admin only.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	actingUser, err := h.acting(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.catalog.AddProduct(c.UserContext(), actingUser, req.Name, req.Description, req.Price)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, p)
}

// Update handles PUT /products/:id. Admin only.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	actingUser, err := h.acting(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.catalog.EditProduct(c.UserContext(), actingUser, int64(id), req.Name, req.Description, req.Price)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, p)
}

// Delete handles DELETE /products/:id. Admin only.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	actingUser, err := h.acting(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid product id")
	}
	if err := h.catalog.RemoveProduct(c.UserContext(), actingUser, int64(id)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
