package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"kasir/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/available", h.HandleListAvailableProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// ProductRequest is the body of product create and update.
type ProductRequest struct {
	Name       string           `json:"name" validate:"required,max=100"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	Stock      *int             `json:"stock" validate:"required,gte=0"`
	CategoryID uint             `json:"category_id" validate:"required"`
}

func (r ProductRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:       r.Name,
		Price:      *r.Price,
		Stock:      *r.Stock,
		CategoryID: r.CategoryID,
	}
}

// HandleListProducts lists every product with its category name.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		return respondError(c, "retrieve products", err)
	}
	return success(c, "Products retrieved successfully.", products)
}

// HandleListAvailableProducts lists products that are in stock, for the register.
func (h *ProductHandler) HandleListAvailableProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAvailableProducts(c.UserContext())
	if err != nil {
		return respondError(c, "retrieve products", err)
	}
	return success(c, "Products retrieved successfully.", products)
}

// HandleGetProduct retrieves a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid product ID")
	}
	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, "retrieve product", err)
	}
	return success(c, "Product retrieved successfully.", product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if reqErr := bindRequest(c, h.validate, &req); reqErr != nil {
		return reqErr.send(c)
	}
	product, err := h.service.CreateProduct(c.UserContext(), req.input())
	if err != nil {
		return respondError(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Product created successfully.",
		"data":    product,
	})
}

// HandleUpdateProduct replaces the editable fields of a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid product ID")
	}
	var req ProductRequest
	if reqErr := bindRequest(c, h.validate, &req); reqErr != nil {
		return reqErr.send(c)
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, req.input())
	if err != nil {
		return respondError(c, "update product", err)
	}
	return success(c, "Product updated successfully.", product)
}

// HandleDeleteProduct deletes a product that was never sold.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid product ID")
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, "delete product", err)
	}
	return success(c, "Product deleted successfully.", nil)
}
